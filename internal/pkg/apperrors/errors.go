package apperrors

import "errors"

// Batch-fatal errors. Any of these aborts the whole import request.
var (
	ErrEmptyBatch              = errors.New("import batch contains no rows")
	ErrGroupNotFound           = errors.New("group not found")
	ErrCollaboratorUnavailable = errors.New("collaborator service unavailable")
)

// Resource errors
var (
	ErrFinalGradeNotFound = errors.New("final grade not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// NewCollaboratorError wraps a failed collaborator call as its own
// batch-fatal kind.
func NewCollaboratorError(message string) error {
	return &CustomError{
		Err:     ErrCollaboratorUnavailable,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
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

