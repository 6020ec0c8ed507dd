// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "sapphire/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one failed rule using the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON tag names instead of struct field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	return &Validator{validate: v}
}

// Validate returns ErrValidationFailed carrying the failed fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	return &ValidationError{Fields: toFieldErrors(validationErrs)}
}

func toFieldErrors(errs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return fields
}

// ValidationError is returned by Validate; it renders as a 400 VALIDATION_FAILED.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+":"+f.Rule)
	}

	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) HTTPCode() int     { return domainerrors.ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return domainerrors.ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return domainerrors.ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return e.Error() }
