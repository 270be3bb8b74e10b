// Package retrier retries failed API calls with exponential backoff.
//
// The wallex client performs exactly one request per call and never retries
// on its own. Callers that want to ride out transient server failures wrap
// the call in a Retrier, usually with WithRetryIf(wallex.IsTemporary).
package retrier

import (
	"context"
	"math/rand"
	"time"
)

const (
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxInterval     = 10 * time.Second
	defaultMultiplier      = 2.0
	defaultMaxRetries      = 3
	defaultJitter          = 0.1
)

// Retrier retries a call with exponential backoff and jitter.
type Retrier struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
	maxRetries      int
	jitter          float64
	retryIf         func(error) bool
}

// Option configures a Retrier.
type Option func(*Retrier)

// WithInitialInterval sets the delay before the first retry.
func WithInitialInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.initialInterval = d
	}
}

// WithMaxInterval caps the delay between retries.
func WithMaxInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.maxInterval = d
	}
}

// WithMultiplier sets the backoff growth factor.
func WithMultiplier(m float64) Option {
	return func(r *Retrier) {
		r.multiplier = m
	}
}

// WithMaxRetries sets how many times a failed call is repeated.
func WithMaxRetries(n int) Option {
	return func(r *Retrier) {
		r.maxRetries = n
	}
}

// WithJitter sets the jitter factor (0.0 to 1.0).
func WithJitter(j float64) Option {
	return func(r *Retrier) {
		r.jitter = j
	}
}

// WithRetryIf restricts retries to errors for which fn returns true. Any
// other error is returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(r *Retrier) {
		r.retryIf = fn
	}
}

// New creates a Retrier.
func New(opts ...Option) *Retrier {
	r := &Retrier{
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
		multiplier:      defaultMultiplier,
		maxRetries:      defaultMaxRetries,
		jitter:          defaultJitter,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Delay returns the pause before retry number attempt (starting at 1),
// without jitter.
func (r *Retrier) Delay(attempt int) time.Duration {
	d := float64(r.initialInterval)
	for i := 1; i < attempt; i++ {
		d *= r.multiplier
		if d >= float64(r.maxInterval) {
			return r.maxInterval
		}
	}
	if time.Duration(d) > r.maxInterval {
		return r.maxInterval
	}
	return time.Duration(d)
}

func (r *Retrier) shouldRetry(err error) bool {
	return r.retryIf == nil || r.retryIf(err)
}

func (r *Retrier) sleep(ctx context.Context, attempt int) error {
	d := r.Delay(attempt)
	d += time.Duration((rand.Float64()*2 - 1) * r.jitter * float64(d))
	if d < 0 {
		d = 0
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do calls fn until it succeeds, returns a non-retryable error, or the retry
// budget is spent. The last error is returned.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	for attempt := 1; err != nil && attempt <= r.maxRetries; attempt++ {
		if !r.shouldRetry(err) {
			return err
		}
		if serr := r.sleep(ctx, attempt); serr != nil {
			return serr
		}
		err = fn(ctx)
	}

	return err
}

// DoWithData is Do for calls that return a value.
func DoWithData[T any](r *Retrier, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}
