package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"

	// Service errors
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is the error value every store and service operation reports.
// It is rendered as-is in HTTP responses.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Is matches any APIError carrying the same code, so callers can write
// errors.Is(err, apierrors.ErrNotFound).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// StatusCode maps the error code to an HTTP status.
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NotFound builds a NOT_FOUND error
func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return NewAPIError(ErrCodeNotFound, message)
}

// Validation builds an INVALID_INPUT error. details is typically the
// per-field error map produced by ozzo-validation.
func Validation(message string, details interface{}) *APIError {
	if message == "" {
		message = "Invalid input"
	}
	return NewAPIErrorWithDetails(ErrCodeInvalidInput, message, details)
}

// Conflict builds a CONFLICT error
func Conflict(message string) *APIError {
	if message == "" {
		message = "Resource conflict"
	}
	return NewAPIError(ErrCodeConflict, message)
}

// Unavailable builds a SERVICE_UNAVAILABLE error
func Unavailable(message string) *APIError {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	return NewAPIError(ErrCodeServiceUnavailable, message)
}

// Predefined errors, mostly useful as errors.Is targets
var (
	ErrNotFound           = NotFound("")
	ErrInvalidInput       = Validation("", nil)
	ErrConflict           = Conflict("")
	ErrInternalError      = NewAPIError(ErrCodeInternalError, "Internal server error")
	ErrServiceUnavailable = Unavailable("")
)

// As extracts the APIError from err, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Respond renders err with the status its code maps to. Errors that are not
// APIErrors become a generic 500 so internal details are not leaked.
func Respond(c *gin.Context, err error) {
	if apiErr, ok := As(err); ok {
		RespondWithError(c, apiErr.StatusCode(), apiErr)
		return
	}
	RespondWithError(c, http.StatusInternalServerError, ErrInternalError)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}
