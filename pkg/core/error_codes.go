package core

import "errors"

// ErrorCode represents a stable, machine-readable error identifier.
type ErrorCode string

// Client-side error codes. Platform codes (e.g. "NO_SUCH_ORDER") are carried
// verbatim in APIError.Code.
const (
	// ErrCodeUnboundPlaceholder indicates a template placeholder had no identifier.
	ErrCodeUnboundPlaceholder ErrorCode = "UNBOUND_PLACEHOLDER"
	// ErrCodeAttributeNotSettable indicates data or params were assigned to an endpoint that forbids them.
	ErrCodeAttributeNotSettable ErrorCode = "ATTRIBUTE_NOT_SETTABLE"
	// ErrCodeNetwork indicates a network connectivity failure.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeInvalidConfig indicates the client configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeSessionClosed indicates the session was used after Close.
	ErrCodeSessionClosed ErrorCode = "SESSION_CLOSED"
	// ErrCodeDecode indicates a response body could not be decoded.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
)

// IsErrorCode checks if the error matches the specified error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorCode(apiErr.Code) == code
	}
	return false
}
