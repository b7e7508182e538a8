package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var pointNameCompile = regexp.MustCompile(`^[A-Za-z][0-9A-Za-z_]{0,63}$`)

// PointName accepts sync point names: a letter, then letters, digits or
// underscores, 64 characters at most.
func PointName(fl validator.FieldLevel) bool {
	valid, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return pointNameCompile.MatchString(valid)
}
