package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrEntityNotFound = errors.New("entity not found")
	ErrConflict       = errors.New("conflict")

	// Referential integrity errors
	ErrForeignKeyViolation = errors.New("referenced entity does not exist")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidParameter = errors.New("invalid parameter")

	// User errors
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// NewNotFoundError creates a new custom error for a missing entity with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrEntityNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for unique-constraint conflicts with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for malformed input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewInvalidParameterError creates a new custom error for out-of-allow-list request parameters
func NewInvalidParameterError(message string) error {
	return &CustomError{
		Err:     ErrInvalidParameter,
		Message: message,
	}
}

// NewForeignKeyError creates a new custom error for rejected foreign-key references
func NewForeignKeyError(message string) error {
	return &CustomError{
		Err:     ErrForeignKeyViolation,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
