// Package validation turns invalid request data into
// *errors.RequestDataValidationError values.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with issue collection. Every failed rule becomes
// one issue whose path points at the offending field.
//
// # Struct Tag Validation
//
//	type CreateOrder struct {
//	    Email string `json:"email" validate:"required,email"`
//	    Items []Item `json:"items" validate:"required,dive"`
//	}
//	err := validation.Validate(cmd, errors.ContextBody)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).MaxLength("name", name, 64)
//	if err := v.Validate(errors.ContextQuery); err != nil {
//	    return err
//	}
package validation
