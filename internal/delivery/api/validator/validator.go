// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"accounts/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs by their `validate` struct tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "form", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors maps each failing field to the rule it broke. It returns nil for
// errors that did not come from Validate.
func FieldErrors(err error) map[string]string {
	verrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}

	return fields
}
