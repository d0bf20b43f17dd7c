package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNetwork marks failures reaching a remote backend. Such failures are
// wrapped with [Retryable].
var ErrNetwork = errors.New("cache backend unreachable")

// RetryableError marks an error as transient.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// networkError wraps a driver error as a retryable [ErrNetwork].
func networkError(err error) error {
	return Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
}

// Backoff retries transient failures with exponentially growing delays.
type Backoff struct {
	// Attempts is the total number of calls, at least one.
	Attempts int
	// Delay precedes the second attempt and doubles after each retry.
	Delay time.Duration
	// Max caps a single delay. Zero means no cap.
	Max time.Duration
}

// DefaultBackoff is used by [RetryWithBackoff] when backends connect.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 500 * time.Millisecond, Max: 4 * time.Second}

// Retry calls fn until it succeeds, returns an error not marked with
// [Retryable], the attempts run out or ctx ends. The last error is returned.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	delay := b.Delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt >= b.Attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
}

// RetryWithBackoff retries fn with [DefaultBackoff].
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Retry(ctx, fn)
}
