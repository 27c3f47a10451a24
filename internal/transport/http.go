// Package transport issues core requests over HTTP.
package transport

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/hpsilva/oanda-api-v20/pkg/core"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Client wraps a resty HTTP client with logging and configuration.
// Requests are sent once; status handling is left to the caller.
type Client struct {
	mu     sync.RWMutex
	client *resty.Client
	logger zerolog.Logger
	closed bool
}

// NewClient creates a new HTTP client for the configured host. JSON is
// encoded and decoded with sonic and retries are disabled.
func NewClient(config *core.Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(config.Host())
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "application/json")
	if config.AccessToken != "" {
		client.SetAuthToken(config.AccessToken)
	}
	client.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

func paramsToStringMap(params core.Params) map[string]string {
	result := make(map[string]string, len(params))
	for k, v := range params {
		result[k] = formatParam(v)
	}
	return result
}

// formatParam renders a query value. Lists are comma-separated, the form
// the platform expects for ids.
func formatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ",")
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatParam(item)
		}
		return strings.Join(parts, ",")
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Do sends the request once and returns the status and body as received.
// Only transport failures are errors; a status different from the expected
// one is returned as a normal response.
func (c *Client) Do(ctx context.Context, req *core.Request) (*core.Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.NewAPIError(req.Endpoint().Name(), core.ErrorTypeNetwork, 0, "client is closed").
			WithCode(core.ErrCodeNetwork)
	}

	requestID := uuid.NewString()
	r := c.client.R().SetContext(ctx).SetHeader(RequestIDHeader, requestID)

	for k, v := range req.Headers() {
		r.SetHeader(k, v)
	}

	if params := req.Params(); params != nil {
		r.SetQueryParams(paramsToStringMap(params))
	}

	if body := req.Body(); body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(req.Method(), "/"+req.Path())
	if err != nil {
		c.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("method", req.Method()).
			Str("path", req.Path()).
			Msg("http request failed")
		apiErr := core.NewAPIError(req.Endpoint().Name(), core.ErrorTypeNetwork, 0, err.Error()).
			WithCode(core.ErrCodeNetwork)
		return nil, fmt.Errorf("http request: %w", apiErr)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method()).
		Str("path", req.Path()).
		Int("status", resp.StatusCode()).
		Int("expected", req.ExpectedStatus()).
		Int("size", len(resp.Bytes())).
		Msg("http response")

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headers,
	}, nil
}

// SetTimeout sets the request timeout duration.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.client.SetTimeout(timeout)
}

// Close releases the underlying HTTP client. Closing twice is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}
