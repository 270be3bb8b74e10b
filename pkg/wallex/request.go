package wallex

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// envelope wraps every API response. Only Result is surfaced.
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

// query builds url.Values from key/value pairs, skipping empty values.
func query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		q.Set(kv[i], kv[i+1])
	}
	return q
}

// call performs r and decodes the envelope result into T.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var env envelope[T]
	if err := c.do(ctx, r, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Result, nil
}

// do performs r and decodes the response body into out when out is not nil.
// Every returned error is an *Error.
func (c *Client) do(ctx context.Context, r request, out any) error {
	if r.auth {
		if err := c.requireAPIKey(); err != nil {
			return err
		}
	}

	endpoint := c.baseURL + r.path

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return httpError(endpoint, nil, errors.Wrap(err, "failed to marshal request"))
		}
		body = bytes.NewReader(payload)
	}

	target := endpoint
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return httpError(endpoint, nil, errors.Wrap(err, "failed to create HTTP request"))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.auth {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	c.logger.Debug("wallex request",
		zap.String("method", r.method),
		zap.String("url", endpoint),
		zap.Bool("auth", r.auth))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(httpError(endpoint, nil, errors.Wrap(err, "HTTP request failed")))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return c.fail(httpError(endpoint, resp, nil))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(httpError(endpoint, resp, errors.Wrap(err, "failed to unmarshal response")))
	}

	return nil
}

func (c *Client) fail(e *Error) *Error {
	c.logger.Warn("wallex request failed",
		zap.String("kind", string(e.Kind)),
		zap.String("url", e.URL),
		zap.Int("status", e.ResponseStatus),
		zap.Error(e.cause))
	return e
}
