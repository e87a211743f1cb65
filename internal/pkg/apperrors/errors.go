package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Uniqueness conflicts reported by the store
	ErrDuplicateField = errors.New("duplicate field")
)

// Record errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)

// CustomError represents application-specific errors with a client-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewDuplicateFieldError creates a conflict error naming the colliding unique field
func NewDuplicateFieldError(field string) error {
	return &CustomError{
		Err:     ErrDuplicateField,
		Message: field + " already exists",
	}
}

// NewValidationError creates a validation error with a human-readable message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
