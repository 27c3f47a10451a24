package core

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Response is what a transport returns for an issued request: the status
// code and the body exactly as received.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}

type platformError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}

// CheckStatus compares the response status with the one the request
// declares. A mismatch is returned as an *APIError carrying the platform's
// errorMessage and errorCode when the body has them. Nothing is retried.
func CheckStatus(req *Request, resp *Response) error {
	if resp.StatusCode == req.ExpectedStatus() {
		return nil
	}

	var pe platformError
	if len(resp.Body) > 0 {
		_ = sonic.Unmarshal(resp.Body, &pe)
	}
	return NewStatusError(req.Endpoint().Name(), req.ExpectedStatus(), resp.StatusCode, pe.ErrorCode, pe.ErrorMessage)
}
