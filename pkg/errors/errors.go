package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMissingInput      ErrorType = "missing_input"
	ErrorTypeSizeLimitExceeded ErrorType = "size_limit_exceeded"
	ErrorTypeParseTimeout      ErrorType = "parse_timeout"
	ErrorTypeExtraction        ErrorType = "extraction_failure"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// GenericMessage is shown to clients whenever the specific cause must not leak.
const GenericMessage = "Failed to process PDF"

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMissingInputError is returned when a request carries no file.
func NewMissingInputError() *AppError {
	return &AppError{
		Type:       ErrorTypeMissingInput,
		Message:    "No file provided",
		StatusCode: http.StatusBadRequest,
	}
}

// NewSizeLimitError reports an upload over the limit. limit is the
// human-readable maximum and is surfaced to the client.
func NewSizeLimitError(limit string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeSizeLimitExceeded,
		Message:    fmt.Sprintf("File size exceeds %s limit", limit),
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewParseTimeoutError creates a new parse timeout error
func NewParseTimeoutError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeParseTimeout,
		Message:    GenericMessage,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewExtractionError wraps a failure of one of the PDF libraries.
func NewExtractionError(details string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtraction,
		Message:    GenericMessage,
		Details:    details,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewUnknownError creates a catch-all error
func NewUnknownError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUnknown,
		Message:    GenericMessage,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// ClientMessage returns the message that may be shown to a client.
// Only validation failures are specific; everything else is generic.
func ClientMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return GenericMessage
}

// Classify returns the ErrorType of err, or ErrorTypeUnknown for foreign errors.
func Classify(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}
