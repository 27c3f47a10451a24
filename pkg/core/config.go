package core

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment selects the trading platform host.
const (
	EnvironmentPractice = "practice"
	EnvironmentLive     = "live"
)

// Platform hosts per environment.
const (
	PracticeURL = "https://api-fxpractice.oanda.com"
	LiveURL     = "https://api-fxtrade.oanda.com"
)

// Environment variables that override values read from a config file.
const (
	EnvAccessToken = "OANDA_ACCESS_TOKEN"
	EnvAccountID   = "OANDA_ACCOUNT_ID"
)

// Config contains all configuration options for a client session.
type Config struct {
	Environment string `json:"environment" yaml:"environment" validate:"required,oneof=practice live"`
	// BaseURL overrides the host derived from Environment.
	BaseURL     string `json:"base_url" yaml:"base_url" validate:"omitempty,url"`
	AccessToken string `json:"-" yaml:"access_token"`
	// AccountID is the default account for examples and tools; requests
	// always take their account explicitly.
	AccountID string `json:"account_id" yaml:"account_id"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the given environment with a 10s
// timeout and info logging.
func DefaultConfig(environment string) *Config {
	return &Config{
		Environment: environment,
		Timeout:     10 * time.Second,
		LogLevel:    "info",
	}
}

var validate = validator.New()

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Environment == EnvironmentLive && c.AccessToken == "" {
		return errors.New("AccessToken is required for the live environment")
	}
	return nil
}

// Host returns BaseURL when set, otherwise the host of the environment.
func (c *Config) Host() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Environment == EnvironmentLive {
		return LiveURL
	}
	return PracticeURL
}

// WithAccessToken sets the bearer token and returns the config for chaining.
func (c *Config) WithAccessToken(token string) *Config {
	c.AccessToken = token
	return c
}

// WithAccountID sets the default account and returns the config for chaining.
func (c *Config) WithAccountID(accountID string) *Config {
	c.AccountID = accountID
	return c
}

// WithBaseURL overrides the platform host and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// LoadConfig reads a YAML config file, applies environment overrides and
// fills unset values with defaults. The result is validated.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := DefaultConfig(EnvironmentPractice)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if token := os.Getenv(EnvAccessToken); token != "" {
		config.AccessToken = token
	}
	if accountID := os.Getenv(EnvAccountID); accountID != "" {
		config.AccountID = accountID
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return config, nil
}
