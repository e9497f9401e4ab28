package apperror

import "net/http"

// Codes returned in the "code" field of an error envelope.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidState    = "INVALID_STATE"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Shared sentinels for failures that are not owned by a single feature.
var (
	ErrNotFound  = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrInternal  = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)

// RequiredField reports a missing request field by its display name.
func RequiredField(field string) *AppError {
	return New(CodeValidationError, field+" is required", http.StatusBadRequest)
}

// InvalidField reports a request field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeValidationError, field+" is invalid", http.StatusBadRequest)
}
