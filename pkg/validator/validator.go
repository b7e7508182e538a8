// Package validator checks tagged structs and turns failures into readable
// errors.
package validator

import (
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validator validates structs tagged with `validate`.
type Validator interface {
	ValidateStruct(obj interface{}) error
	Engine() interface{}
}

// New returns a validator with English messages and the point_name rule
// registered.
func New() (Validator, error) {
	v := &defaultValidator{Validate: validator.New()}
	v.Validate.SetTagName("validate")
	v.translator, _ = ut.New(en.New()).GetTranslator("en")
	if err := translations.RegisterDefaultTranslations(v.Validate, v.translator); err != nil {
		return nil, err
	}
	if err := RegisterValidation(v, "point_name", PointName); err != nil {
		return nil, err
	}
	return v, nil
}

type defaultValidator struct {
	Validate   *validator.Validate
	translator ut.Translator
}

// ValidateStruct validates a struct, a pointer to one or a slice of them.
// Every failed field becomes one error of the returned multierr.
func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	err := v.defaultValidateStruct(obj)
	if err == nil {
		return nil
	}
	return v.Translate(err)
}

func (v *defaultValidator) Translate(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	var errs error
	for _, fe := range vErrs {
		errs = multierr.Append(errs, errors.New(fe.Translate(v.translator)))
	}
	return errs
}

func (v *defaultValidator) Engine() interface{} {
	return v.Validate
}

func (v *defaultValidator) defaultValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() { // nolint:exhaustive
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.defaultValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return v.Validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		var errs error
		for i := 0; i < value.Len(); i++ {
			errs = multierr.Append(errs, v.defaultValidateStruct(value.Index(i).Interface()))
		}
		return errs
	default:
		return nil
	}
}

func RegisterValidation(v Validator, tag string, fn validator.Func, callValidationEvenIfNull ...bool) error {
	validate, ok := v.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validate.RegisterValidation(tag, fn, callValidationEvenIfNull...)
}

func Var(v Validator, field interface{}, tag string) error {
	validate, ok := v.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validate.Var(field, tag)
}
