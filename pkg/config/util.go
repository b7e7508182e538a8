package config

import (
	"os"

	"github.com/pkg/errors"
)

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
