package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error by who can act on it.
type Kind int

const (
	// KindValidation marks caller-correctable input errors; they carry
	// per-field messages and are never fatal.
	KindValidation Kind = iota
	// KindDataIntegrity marks caller bugs (a material without a linked
	// product, and the like). Proceeding would corrupt a monetary or
	// stock computation, so these fail loudly.
	KindDataIntegrity
	// KindConversion marks unit-conversion failures: unknown units or
	// conversions across unit families.
	KindConversion
)

func (k Kind) String() string {
	names := [...]string{"Validation", "DataIntegrity", "Conversion"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Validation"
	}
	return names[k]
}

// Error is a structured application error with a kind and, for validation
// errors, the offending fields.
type Error struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError attaches a validation message to a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %d invalid field(s)", e.Message, len(e.Fields))
	}
	return e.Message
}

// NewValidationError creates a validation error from field errors.
func NewValidationError(fieldErrors []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed",
		Fields:  fieldErrors,
	}
}

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, message string) *Error {
	return NewValidationError([]FieldError{{Field: field, Message: message}})
}

// NewDataIntegrityError creates a data-integrity error with a formatted message.
func NewDataIntegrityError(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindDataIntegrity,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewConversionError creates a conversion error with a formatted message.
func NewConversionError(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindConversion,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetError converts an error to *Error if possible.
func GetError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindDataIntegrity, Message: err.Error()}
}
