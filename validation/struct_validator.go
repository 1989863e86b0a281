package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/svcerrors/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Engine returns the shared validator instance. It reports json tag names
// as field names, so issue paths match the wire format.
func Engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri", "header", "cookie"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})
	})
	return validate
}

// Validate validates a struct using struct tags such as
// `validate:"required,email,max=255"`. Failures are reported as a
// RequestDataValidationError located in ctx.
func Validate(s any, ctx errors.Context) error {
	return FromValidator(Engine().Struct(s), ctx)
}

// FromValidator converts validator.ValidationErrors, including those
// returned by gin binding, into a RequestDataValidationError located in
// ctx. Other errors are returned unchanged.
func FromValidator(err error, ctx errors.Context) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}

	issues := make([]errors.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, errors.Issue{
			Message: fe.Field() + " " + formatValidationError(fe),
			Path:    namespacePath(fe.Namespace()),
		})
	}
	return errors.RequestDataValidation(issues, ctx)
}

// formatValidationError creates a human-readable message for one rule.
func formatValidationError(e validator.FieldError) string {
	unit := ""
	switch e.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch e.Tag() {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be at least " + e.Param() + unit
	case "max", "lte":
		return "must be at most " + e.Param() + unit
	case "gt":
		return "must be greater than " + e.Param() + unit
	case "lt":
		return "must be less than " + e.Param() + unit
	case "len":
		return "must be exactly " + e.Param() + unit
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "numeric", "number":
		return "must be numeric"
	case "alphanum":
		return "must contain only letters and digits"
	case "datetime":
		return fmt.Sprintf("must be a date matching %q", e.Param())
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
