//go:build syncx_spin && syncx_async

package syncx

import (
	"os"

	"go.uber.org/zap"

	"syncpoint/pkg/logger"
)

// ConfigConflict is true if more than one backend tag was set.
const ConfigConflict = true

func init() {
	warnConflict(logger.New(logger.WithWriter(os.Stderr),
		logger.WithFields(zap.String("component", "syncx"))))
}
