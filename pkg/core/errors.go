package core

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize errors for proper handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfiguration indicates a request could not be built because
	// a placeholder of its endpoint template was left unbound.
	ErrorTypeConfiguration
	// ErrorTypeArgumentBinding indicates data or params were assigned to a
	// request that does not accept them.
	ErrorTypeArgumentBinding
	// ErrorTypeStatusMismatch indicates a non-error status that differs from
	// the one the endpoint declares.
	ErrorTypeStatusMismatch
	// ErrorTypeNetwork indicates a transport-level failure.
	ErrorTypeNetwork
	// ErrorTypeBadRequest indicates the platform rejected the request.
	ErrorTypeBadRequest
	// ErrorTypeAuthentication indicates invalid or missing credentials.
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates the account or order does not exist.
	ErrorTypeNotFound
	// ErrorTypeRateLimit indicates the platform reported too many requests.
	ErrorTypeRateLimit
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	if t < ErrorTypeUnknown || t > ErrorTypeServerError {
		return "UNKNOWN"
	}
	return [...]string{
		"UNKNOWN",
		"CONFIGURATION",
		"ARGUMENT_BINDING",
		"STATUS_MISMATCH",
		"NETWORK",
		"BAD_REQUEST",
		"AUTHENTICATION",
		"NOT_FOUND",
		"RATE_LIMIT",
		"SERVER_ERROR",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrUnboundPlaceholder is wrapped by configuration errors.
	ErrUnboundPlaceholder = errors.New("unbound placeholder")
	// ErrAttributeNotSettable is wrapped by argument-binding errors.
	ErrAttributeNotSettable = errors.New("attribute not settable")
	// ErrUnknownOperation is returned when no endpoint is registered for an operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrSessionClosed is returned when attempting to use a closed session.
	ErrSessionClosed = errors.New("session is closed")
)

// APIError is the structured error surfaced by request construction,
// argument binding and status verification.
type APIError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status returned by the transport, zero when
	// the error happened before anything was sent.
	StatusCode int `json:"status_code,omitempty"`
	// ExpectedStatus is the status the endpoint declares.
	ExpectedStatus int `json:"expected_status,omitempty"`
	// Code is the platform or client error code.
	Code string `json:"code,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Endpoint names the operation the error belongs to.
	Endpoint string `json:"endpoint"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`

	err error
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("[%s] %s (%d/%s): %s", e.Endpoint, e.Type, e.StatusCode, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("[%s] %s (%d): %s", e.Endpoint, e.Type, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("[%s] %s: %s", e.Endpoint, e.Type, e.Message)
	}
}

// Unwrap returns the sentinel the error was built from, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// WithCode sets the error code and returns the error for chaining.
func (e *APIError) WithCode(code ErrorCode) *APIError {
	e.Code = string(code)
	return e
}

// NewAPIError creates a new APIError with the specified details.
// The timestamp is automatically set to the current time.
func NewAPIError(endpoint string, errorType ErrorType, statusCode int, message string) *APIError {
	return &APIError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Endpoint:   endpoint,
		Timestamp:  time.Now(),
	}
}

// NewConfigurationError reports a placeholder left unbound at construction.
func NewConfigurationError(endpoint, placeholder string) *APIError {
	e := NewAPIError(endpoint, ErrorTypeConfiguration, 0,
		fmt.Sprintf("placeholder {%s} is not bound", placeholder))
	e.err = ErrUnboundPlaceholder
	return e.WithCode(ErrCodeUnboundPlaceholder)
}

// NewArgumentBindingError reports an assignment to an attribute the
// endpoint does not accept.
func NewArgumentBindingError(endpoint string, attr Attribute) *APIError {
	e := NewAPIError(endpoint, ErrorTypeArgumentBinding, 0,
		fmt.Sprintf("%s cannot be set on this endpoint", attr))
	e.err = ErrAttributeNotSettable
	return e.WithCode(ErrCodeAttributeNotSettable)
}

// NewSessionClosedError reports a request attempted on a closed session.
func NewSessionClosedError(endpoint string) *APIError {
	e := NewAPIError(endpoint, ErrorTypeUnknown, 0, ErrSessionClosed.Error())
	e.err = ErrSessionClosed
	return e.WithCode(ErrCodeSessionClosed)
}

// NewStatusError reports a response whose status differs from the expected
// one. The error type is derived from the actual status.
func NewStatusError(endpoint string, expected, actual int, code, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("expected status %d, got %d", expected, actual)
	}
	e := NewAPIError(endpoint, StatusErrorType(actual), actual, message)
	e.ExpectedStatus = expected
	e.Code = code
	return e
}

// StatusErrorType maps an unexpected HTTP status to an ErrorType.
func StatusErrorType(statusCode int) ErrorType {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return ErrorTypeServerError
	case statusCode == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrorTypeAuthentication
	case statusCode == http.StatusBadRequest:
		return ErrorTypeBadRequest
	case statusCode == http.StatusNotFound:
		return ErrorTypeNotFound
	case statusCode > 0 && statusCode < http.StatusBadRequest:
		return ErrorTypeStatusMismatch
	default:
		return ErrorTypeUnknown
	}
}

func errorType(err error) (ErrorType, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type, true
	}
	return ErrorTypeUnknown, false
}

// IsConfigurationError returns true if a request could not be built because
// of an unbound placeholder.
func IsConfigurationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrorTypeConfiguration
}

// IsArgumentBindingError returns true if data or params were assigned to an
// endpoint that does not accept them.
func IsArgumentBindingError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrorTypeArgumentBinding
}

// IsStatusMismatch returns true if the error carries a response status that
// differs from the declared one, whatever its category.
func IsStatusMismatch(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ExpectedStatus != 0 && apiErr.StatusCode != apiErr.ExpectedStatus
	}
	return false
}

// IsNetworkError returns true if the error is a transport failure.
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrorTypeNetwork
}

// IsNotFoundError returns true if the account or order does not exist.
func IsNotFoundError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrorTypeNotFound
}

// IsAuthenticationError returns true if the error is an authentication failure.
// Authentication errors require a new access token and are not retryable.
func IsAuthenticationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrorTypeAuthentication
}
