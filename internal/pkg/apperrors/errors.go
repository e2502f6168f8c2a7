package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrObjectNotFound = errors.New("object not found")
	ErrEmptyPage      = errors.New("no objects match the given filters")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError carries an underlying sentinel plus a request-specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a descriptive message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrObjectNotFound, Message: message}
}

// NewEmptyPageError creates an empty-result error with a descriptive message.
func NewEmptyPageError(message string) error {
	return &CustomError{Err: ErrEmptyPage, Message: message}
}

// NewBadRequestError creates a bad-request error with a descriptive message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
