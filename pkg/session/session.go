package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hpsilva/oanda-api-v20/internal/transport"
	"github.com/hpsilva/oanda-api-v20/pkg/core"
	"github.com/hpsilva/oanda-api-v20/pkg/endpoints/orders"
)

// State represents the lifecycle state of a Session.
type State int

const (
	// StateNew indicates a session that has not issued a request yet.
	StateNew State = iota
	// StateActive indicates a session that has issued at least one request.
	StateActive
	// StateClosed indicates a session that has been shut down and can no longer be used.
	StateClosed
)

// String returns the string representation of the State.
func (s State) String() string {
	return [...]string{"NEW", "ACTIVE", "CLOSED"}[s]
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used by the session and its transport.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session issues requests against the platform and verifies their status.
// Sessions are safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	config    *core.Config
	client    *transport.Client
	logger    zerolog.Logger
	state     State
	createdAt time.Time
	lastUsed  time.Time
}

// New creates a new Session with the provided configuration.
// The configuration is validated before the session is created.
func New(config *core.Config, opts ...Option) (*Session, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	if err := config.Validate(); err != nil {
		apiErr := core.NewAPIError("SESSION", core.ErrorTypeUnknown, 0, err.Error()).
			WithCode(core.ErrCodeInvalidConfig)
		return nil, fmt.Errorf("config validation: %w", apiErr)
	}

	s := &Session{
		config:    config,
		logger:    zerolog.Nop(),
		state:     StateNew,
		createdAt: time.Now(),
		lastUsed:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		s.logger = s.logger.Level(level)
	}

	s.client = transport.NewClient(config, s.logger)

	return s, nil
}

// Do issues the request once and returns the response when its status is
// the one the request declares. Any other status is returned as an
// *core.APIError together with the response; it is never retried.
func (s *Session) Do(ctx context.Context, req *core.Request) (*core.Response, error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil, core.NewSessionClosedError(req.Endpoint().Name())
	}
	s.state = StateActive
	s.lastUsed = time.Now()
	s.mu.Unlock()

	resp, err := s.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := core.CheckStatus(req, resp); err != nil {
		s.logger.Warn().
			Str("endpoint", req.Endpoint().Name()).
			Str("path", req.Path()).
			Int("status", resp.StatusCode).
			Int("expected", req.ExpectedStatus()).
			Msg("unexpected status")
		return resp, err
	}

	return resp, nil
}

// send holds the read lock for the whole exchange, so Close waits for
// in-flight requests and later ones see the closed state.
func (s *Session) send(ctx context.Context, req *core.Request) (*core.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == StateClosed {
		return nil, core.NewSessionClosedError(req.Endpoint().Name())
	}
	return s.client.Do(ctx, req)
}

func (s *Session) decode(ctx context.Context, req *core.Request, v any) error {
	resp, err := s.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := resp.Unmarshal(v); err != nil {
		apiErr := core.NewAPIError(req.Endpoint().Name(), core.ErrorTypeUnknown, resp.StatusCode, err.Error()).
			WithCode(core.ErrCodeDecode)
		return fmt.Errorf("decode response: %w", apiErr)
	}
	return nil
}

// Close shuts down the session and releases the HTTP client.
// It waits for in-flight requests; after closing, Do fails with
// core.ErrSessionClosed without sending anything.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	return s.client.Close()
}

// State returns the current lifecycle state of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Config returns the configuration used to create the session.
func (s *Session) Config() *core.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// CreatedAt returns the timestamp when the session was created.
func (s *Session) CreatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdAt
}

// LastUsed returns the timestamp of the last request issued by the session.
func (s *Session) LastUsed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUsed
}

// CreateOrder creates an order for an account. data holds the order request,
// usually under the "order" key.
func (s *Session) CreateOrder(ctx context.Context, accountID string, data core.Params) (core.Params, error) {
	req, err := orders.NewOrderCreate(accountID)
	if err != nil {
		return nil, err
	}
	if err := req.SetData(data); err != nil {
		return nil, err
	}
	var result core.Params
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListOrders lists the orders of an account. params may filter by ids,
// state, instrument, count or beforeID; nil lists with platform defaults.
func (s *Session) ListOrders(ctx context.Context, accountID string, params core.Params) (*core.OrderList, error) {
	req, err := orders.NewOrderList(accountID)
	if err != nil {
		return nil, err
	}
	if params != nil {
		if err := req.SetParams(params); err != nil {
			return nil, err
		}
	}
	var result core.OrderList
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPendingOrders lists the pending orders of an account.
func (s *Session) ListPendingOrders(ctx context.Context, accountID string) (*core.OrderList, error) {
	req, err := orders.NewOrdersPending(accountID)
	if err != nil {
		return nil, err
	}
	var result core.OrderList
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder fetches a single order.
func (s *Session) GetOrder(ctx context.Context, accountID, orderID string) (*core.OrderDetails, error) {
	req, err := orders.NewOrderDetails(accountID, orderID)
	if err != nil {
		return nil, err
	}
	var result core.OrderDetails
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReplaceOrder cancels an order and creates its replacement from data.
func (s *Session) ReplaceOrder(ctx context.Context, accountID, orderID string, data core.Params) (core.Params, error) {
	req, err := orders.NewOrderReplace(accountID, orderID)
	if err != nil {
		return nil, err
	}
	if err := req.SetData(data); err != nil {
		return nil, err
	}
	var result core.Params
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelOrder cancels a pending order.
func (s *Session) CancelOrder(ctx context.Context, accountID, orderID string) (core.Params, error) {
	req, err := orders.NewOrderCancel(accountID, orderID)
	if err != nil {
		return nil, err
	}
	var result core.Params
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateClientExtensions updates the client extensions of an order.
func (s *Session) UpdateClientExtensions(ctx context.Context, accountID, orderID string, data core.Params) (core.Params, error) {
	req, err := orders.NewOrderClientExtensions(accountID, orderID)
	if err != nil {
		return nil, err
	}
	if err := req.SetData(data); err != nil {
		return nil, err
	}
	var result core.Params
	if err := s.decode(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
