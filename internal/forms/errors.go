// Package forms implements the per-section profile edit forms: local field state,
// validation, and normalization into dispatcher payloads.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects the field errors that block a submission.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Has reports whether field has at least one error.
func (ve *ValidationError) Has(field string) bool {
	for _, e := range ve.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (ve *ValidationError) add(field, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Message: message})
}

// errOrNil returns ve as an error only when it holds field errors.
func (ve *ValidationError) errOrNil() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

// fieldError builds a ValidationError carrying one field error.
func fieldError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// fromValidator converts validator/v10 output into a ValidationError.
func fromValidator(err error) *ValidationError {
	ve := &ValidationError{}
	if err == nil {
		return ve
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ve.add("(form)", err.Error())
		return ve
	}

	for _, fe := range verrs {
		ve.add(fe.Field(), describeTag(fe))
	}
	return ve
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain letters only"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
