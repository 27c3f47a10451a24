package core

import "maps"

// Params is a JSON-compatible key/value structure used for request bodies
// and query parameters.
type Params map[string]any

// PathParams binds template placeholders to identifiers.
type PathParams map[string]string

// Request binds one Endpoint to concrete identifiers. The path, method and
// expected status are fixed at construction; only the attribute the
// endpoint declares can be set afterwards.
type Request struct {
	endpoint Endpoint
	path     string
	data     Params
	params   Params
	headers  map[string]string
}

// NewRequest renders the endpoint template with ids. It fails with a
// configuration error when a placeholder cannot be bound. No network
// activity happens here.
func NewRequest(ep Endpoint, ids PathParams) (*Request, error) {
	path, err := ep.Render(ids)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	if ep.Attribute == AttrData {
		headers["Content-Type"] = "application/json"
	}

	return &Request{
		endpoint: ep,
		path:     path,
		headers:  headers,
	}, nil
}

// Endpoint returns a copy of the descriptor the request was built from.
func (r *Request) Endpoint() Endpoint {
	return r.endpoint
}

// Path returns the resolved URL path, relative to the API host.
func (r *Request) Path() string {
	return r.path
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.endpoint.Method
}

// ExpectedStatus returns the status code a successful call answers with.
func (r *Request) ExpectedStatus() int {
	return r.endpoint.ExpectedStatus
}

// SetData sets the request body. Only body-bearing endpoints accept it.
func (r *Request) SetData(data Params) error {
	if r.endpoint.Attribute != AttrData {
		return NewArgumentBindingError(r.endpoint.Name(), AttrData)
	}
	r.data = data
	return nil
}

// SetParams sets the query parameters. Only query-bearing endpoints accept them.
func (r *Request) SetParams(params Params) error {
	if r.endpoint.Attribute != AttrParams {
		return NewArgumentBindingError(r.endpoint.Name(), AttrParams)
	}
	r.params = params
	return nil
}

// Data returns the body set with SetData, or nil.
func (r *Request) Data() Params {
	return r.data
}

// Params returns the query parameters set with SetParams, or nil.
func (r *Request) Params() Params {
	return r.params
}

// Body returns the value to send as the request body, or nil when the
// request carries none.
func (r *Request) Body() any {
	if r.data == nil {
		return nil
	}
	return r.data
}

// SetHeader adds a header override and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	r.headers[key] = value
	return r
}

// Headers returns a copy of the request headers.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}
