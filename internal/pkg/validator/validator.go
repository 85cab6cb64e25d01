// Package validator wraps go-playground/validator with a process-wide
// instance and readable multi-errors.
//
// Field errors are reported under the name a user actually types: the
// envconfig key for configuration structs, the json key for payloads and the
// Go field name otherwise.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads every error chain returned for invalid input.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)
}

// fieldName returns the envconfig key, then the json key, then the Go name.
func fieldName(f reflect.StructField) string {
	if name := f.Tag.Get("envconfig"); name != "" {
		return name
	}

	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report err
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(pages, "min=1").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
