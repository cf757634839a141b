// errors.go - Structured error handling for API responses
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/askrelay/backend/internal/ingest"
)

// APIError represents a structured API error response. Details never reach
// the client; they are logged server-side only.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldValidationError carries per-field validation failures, serialized as
// an object keyed by field name.
type FieldValidationError struct {
	Fields ingest.FieldErrors
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewLimitError maps a transport-limit violation to a 413 response.
func NewLimitError(v *ingest.LimitViolation) *APIError {
	return &APIError{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    v.Code,
		Message: v.Message,
	}
}

// NewFieldErrors wraps validation failures for the error handler.
func NewFieldErrors(fields ingest.FieldErrors) *FieldValidationError {
	return &FieldValidationError{Fields: fields}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// ErrorHandler is installed as e.HTTPErrorHandler. All server-side errors
// funnel through here; nothing escapes unhandled, and internal detail is
// logged rather than serialized.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch e := err.(type) {
	case *FieldValidationError:
		c.JSON(http.StatusBadRequest, e.Fields)
	case *APIError:
		if e.Status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"code", e.Code,
				"message", e.Message,
				"details", e.Details,
				"path", c.Request().URL.Path,
			)
			c.JSON(e.Status, map[string]string{"error": "internal server error"})
			return
		}
		c.JSON(e.Status, e)
	case *echo.HTTPError:
		if e.Code >= http.StatusInternalServerError {
			slog.Error("request failed", "error", err, "path", c.Request().URL.Path)
			c.JSON(e.Code, map[string]string{"error": "internal server error"})
			return
		}
		c.JSON(e.Code, map[string]string{"error": fmt.Sprintf("%v", e.Message)})
	default:
		slog.Error("unexpected error", "error", err, "path", c.Request().URL.Path)
		c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
