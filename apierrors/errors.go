// Package apierrors defines the structured error payloads the HTTP layer
// returns. Errors are scoped to the request that triggered them; a failing
// view never takes the session down.
package apierrors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/industash/industash/dataset"
)

// APIError is a structured API error response.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Message }

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates an APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message}
}

// NewWithDetails creates an APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message, Details: details}
}

// InvalidParameter reports a bad query parameter value.
func InvalidParameter(param, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_PARAMETER",
		fmt.Sprintf("invalid parameter %q", param), message)
}

// SchemaUnavailable maps a dataset.SchemaError to the recoverable per-view
// error: the affected chart is skipped, the rest of the dashboard works.
func SchemaUnavailable(err *dataset.SchemaError) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "SCHEMA_UNAVAILABLE",
		fmt.Sprintf("column %q is not available in this dataset", err.Column), err.Reason)
}

// Internal reports an unexpected failure without leaking internals.
func Internal(err error) *APIError {
	return NewWithDetails(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
		"internal server error", err.Error())
}

// NotFound reports a missing resource.
func NotFound(resource string) *APIError {
	return New(http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%s not found", resource))
}
