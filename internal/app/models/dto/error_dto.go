package dto

// ErrorKey is a stable, caller-facing error identifier. The strings are
// part of the API contract and are not tied to HTTP status codes.
type ErrorKey string

const (
	ErrorKeyEmptyCSV                  ErrorKey = "emptyCSV"
	ErrorKeyGroupNotFound             ErrorKey = "groupNotFound"
	ErrorKeyStudentNotFound           ErrorKey = "studentNotFoundOrNotInGroup"
	ErrorKeyStudentDuplicated         ErrorKey = "studentDuplicatedInFile"
	ErrorKeyEvaluationTypeNotFound    ErrorKey = "evaluationTypeNotFound"
	ErrorKeyEvaluationItemNotFound    ErrorKey = "evaluationItemNotFound"
	ErrorKeyDuplicateItemInRow        ErrorKey = "duplicateItemInRow"
	ErrorKeyInvalidGradeValue         ErrorKey = "invalidGradeValue"
	ErrorKeyInvalidExtraordinaryGrade ErrorKey = "invalidExtraordinaryGrade"
	ErrorKeyNotFound                  ErrorKey = "notFound"
	ErrorKeyServerError               ErrorKey = "serverError"
	ErrorKeyCollaboratorUnavailable   ErrorKey = "collaboratorUnavailable"

	// Not part of the import vocabulary; used by the auth middleware only.
	ErrorKeyUnauthorized ErrorKey = "unauthorized"
)

// RowError reports a single failed import row. Data carries the offending
// value (the email, item name or raw grade, depending on the check).
type RowError struct {
	Line     int      `json:"line" example:"3"`
	Data     string   `json:"data" example:"a@x.com"`
	ErrorKey ErrorKey `json:"errorKey" example:"invalidGradeValue"`
}

// ErrorResponse is the envelope for request-fatal failures.
type ErrorResponse struct {
	Success  bool     `json:"success" example:"false"`
	ErrorKey ErrorKey `json:"errorKey" example:"groupNotFound"`
	Message  string   `json:"message,omitempty"`
}

// NewErrorResponse creates a request-fatal error envelope
func NewErrorResponse(key ErrorKey, message string) *ErrorResponse {
	return &ErrorResponse{
		Success:  false,
		ErrorKey: key,
		Message:  message,
	}
}
