// Package dto holds the HTTP request and response shapes.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
)

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code such as "NOT_FOUND".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeConflict         = "CONFLICT"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeOutOfRange       = "OUT_OF_RANGE"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL_ERROR"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeBadRequest       = "BAD_REQUEST"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

const internalMessage = "an internal error occurred"

// NewErrorResponse creates an error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details
	return resp
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeOutOfRange, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeUnavailable, ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps err to a status code and envelope. A RangeError means
// the server computed a bad bound and maps to 500 like any unknown error.
func MapDomainError(err error) (int, *ErrorResponse) {
	var (
		validationErr *domain.ValidationError
		code          string
		message       = err.Error()
	)

	switch {
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsOutOfRange(err):
		code = ErrorCodeOutOfRange
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, message)
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}
		return http.StatusBadRequest, resp
	case domain.IsConflict(err):
		code = ErrorCodeConflict
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrorCodeTimeout
		message = "request timeout exceeded"
	default:
		code, message = ErrorCodeInternal, internalMessage
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, message)
}

// HandleError writes the envelope for err and logs server-side failures.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.Int("status", status),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCode aborts the chain with an adapter-level error code.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// requestIDKey mirrors middleware.ContextKeyRequestID without importing it.
const requestIDKey = "request_id"

// GetTraceID returns the active span's trace ID. Without a recording span it
// falls back to the request ID so clients always get a handle to quote.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return c.GetString(requestIDKey)
}
