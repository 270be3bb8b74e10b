// Package wallex is a typed client for the Wallex exchange REST API.
//
// Every operation performs exactly one HTTP request. Failures are returned as
// *Error values; the client never retries.
package wallex

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// BaseURL production API origin.
	BaseURL = "https://api.wallex.ir"
	// APIKeyHeader header carrying the API key on authenticated requests.
	APIKeyHeader = "x-api-key"

	defaultTimeout = 30 * time.Second
)

// Client talks to the Wallex REST API. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client. An empty apiKey is allowed; authenticated operations
// then fail with a MissingAPIKey error without touching the network.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HasAPIKey reports whether authenticated operations can be called.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

func (c *Client) requireAPIKey() error {
	if !c.HasAPIKey() {
		return NewMissingAPIKeyError()
	}
	return nil
}
