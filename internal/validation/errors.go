package validation

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of a validation failure
type ErrorKind int

const (
	// ErrKindEmptyField indicates a required field has no text
	ErrKindEmptyField ErrorKind = iota
	// ErrKindInvalidNameFormat indicates the name contains something other than letters and spaces
	ErrKindInvalidNameFormat
	// ErrKindNameTooShort indicates the name is shorter than MinNameLength
	ErrKindNameTooShort
	// ErrKindNonNumericAge indicates the age could not be parsed as an integer
	ErrKindNonNumericAge
	// ErrKindNegativeAge indicates the age is below MinAge
	ErrKindNegativeAge
	// ErrKindAgeOutOfRange indicates the age is above MaxAge
	ErrKindAgeOutOfRange
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindEmptyField:
		return "EmptyField"
	case ErrKindInvalidNameFormat:
		return "InvalidNameFormat"
	case ErrKindNameTooShort:
		return "NameTooShort"
	case ErrKindNonNumericAge:
		return "NonNumericAge"
	case ErrKindNegativeAge:
		return "NegativeAge"
	case ErrKindAgeOutOfRange:
		return "AgeOutOfRange"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Messages shown to the user for each failure
const (
	MsgEmptyField        = "Please fill in all fields."
	MsgInvalidNameFormat = "Name should contain only letters and spaces"
	MsgNameTooShort      = "Name should be at least 2 characters"
	MsgNonNumericAge     = "Please enter a valid number"
	MsgNegativeAge       = "Age cannot be negative"
	MsgAgeOutOfRange     = "Please enter a realistic age (0-120)"
)

// ValidationError describes why a field was rejected
type ValidationError struct {
	Field   FieldKind // Field that failed
	Kind    ErrorKind // Category of failure
	Message string    // User-facing message
	Err     error     // Underlying error (parse failures)
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field FieldKind, kind ErrorKind, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NewEmptyFieldError creates the error used when a field is blank at submit time
func NewEmptyFieldError(field FieldKind) *ValidationError {
	return newValidationError(field, ErrKindEmptyField, MsgEmptyField, nil)
}

// KindOf returns the ErrorKind of err and whether err is a ValidationError
func KindOf(err error) (ErrorKind, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr != nil {
		return vErr.Kind, true
	}
	return 0, false
}

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := KindOf(err)
	return ok
}

// IsEmptyField checks if an error is an EmptyField failure
func IsEmptyField(err error) bool {
	return isKind(err, ErrKindEmptyField)
}

// IsInvalidNameFormat checks if an error is an InvalidNameFormat failure
func IsInvalidNameFormat(err error) bool {
	return isKind(err, ErrKindInvalidNameFormat)
}

// IsNameTooShort checks if an error is a NameTooShort failure
func IsNameTooShort(err error) bool {
	return isKind(err, ErrKindNameTooShort)
}

// IsNonNumericAge checks if an error is a NonNumericAge failure
func IsNonNumericAge(err error) bool {
	return isKind(err, ErrKindNonNumericAge)
}

// IsNegativeAge checks if an error is a NegativeAge failure
func IsNegativeAge(err error) bool {
	return isKind(err, ErrKindNegativeAge)
}

// IsAgeOutOfRange checks if an error is an AgeOutOfRange failure
func IsAgeOutOfRange(err error) bool {
	return isKind(err, ErrKindAgeOutOfRange)
}

// UserMessage returns the message to show for err.
// Non-validation errors fall back to err.Error().
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr != nil {
		return vErr.Message
	}
	return err.Error()
}
