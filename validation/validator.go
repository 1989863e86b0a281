package validation

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kbukum/svcerrors/errors"
)

// Validator collects validation issues.
type Validator struct {
	issues []errors.Issue
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		issues: make([]errors.Issue, 0),
	}
}

// AddIssue records message against field. The field may be a dotted
// reference such as "items[0].sku".
func (v *Validator) AddIssue(field, message string) {
	v.issues = append(v.issues, errors.Issue{
		Message: message,
		Path:    ParsePath(field),
	})
}

func (v *Validator) fail(field, format string, args ...any) {
	v.AddIssue(field, field+" "+fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are validation issues.
func (v *Validator) HasErrors() bool {
	return len(v.issues) > 0
}

// Issues returns the collected issues.
func (v *Validator) Issues() []errors.Issue {
	return v.issues
}

// Validate returns a RequestDataValidationError located in ctx when issues
// were collected, nil otherwise.
func (v *Validator) Validate(ctx errors.Context) *errors.RequestDataValidationError {
	if !v.HasErrors() {
		return nil
	}
	return errors.RequestDataValidation(v.issues, ctx)
}

// Err is Validate as a plain error, nil when there are no issues.
func (v *Validator) Err(ctx errors.Context) error {
	if err := v.Validate(ctx); err != nil {
		return err
	}
	return nil
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "is required")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.fail(field, "must be a valid UUID")
		return v
	}

	if parsed == uuid.Nil {
		v.fail(field, "must not be empty")
	}

	return v
}

// OptionalUUID checks if a non-empty string is a valid UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.fail(field, "must be a valid UUID")
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.fail(field, "must be %d characters or less", maxLen)
	}
	return v
}

// MinLength checks if a string meets minimum length.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if len(value) < minLen {
		v.fail(field, "must be at least %d characters", minLen)
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.fail(field, "must be between %d and %d", minVal, maxVal)
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.fail(field, "must be at least %d", minVal)
	}
	return v
}

// Max checks if a number is within max value.
func (v *Validator) Max(field string, value, maxVal int) *Validator {
	if value > maxVal {
		v.fail(field, "must be %d or less", maxVal)
	}
	return v
}

// Pattern checks if a string matches a regex pattern.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if value == "" {
		return v
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		v.fail(field, "does not match required format")
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" || slices.Contains(allowed, value) {
		return v
	}
	v.fail(field, "must be one of: %s", strings.Join(allowed, ", "))
	return v
}

// Email checks that a non-empty string is an email address.
func (v *Validator) Email(field, value string) *Validator {
	if value == "" {
		return v
	}
	if err := Engine().Var(value, "email"); err != nil {
		v.fail(field, "must be a valid email address")
	}
	return v
}

// Check runs a validator tag expression such as "gte=1,lte=10" against
// value. A malformed tag panics, as it does in the validator library.
func (v *Validator) Check(field string, value any, tag string) *Validator {
	var verrs validator.ValidationErrors
	if err := Engine().Var(value, tag); stderrors.As(err, &verrs) {
		for _, fe := range verrs {
			v.fail(field, "%s", formatValidationError(fe))
		}
	}
	return v
}

// Custom applies a custom validation condition; message is used verbatim.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddIssue(field, message)
	}
	return v
}

// Required validates a single required field.
func Required(field, value string, ctx errors.Context) error {
	return New().Required(field, value).Err(ctx)
}

// ParseUUID validates and parses a UUID string.
func ParseUUID(field, value string, ctx errors.Context) (uuid.UUID, error) {
	if err := New().RequiredUUID(field, value).Err(ctx); err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(value), nil
}
