package catalogue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog"
)

// Retry defaults
const (
	DefaultMaxAttempts = 4
	DefaultRetryDelay  = 500 * time.Millisecond
	DefaultMaxDelay    = 10 * time.Second
	DefaultMaxJitter   = 250 * time.Millisecond
)

// RetryPolicy describes the attempt budget and backoff applied around
// each request. Only the listed statuses trigger a retry; any other
// status, and any transport-level failure, terminates immediately.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts including the first.
	MaxAttempts uint
	// Delay is the base delay, doubled after each attempt.
	Delay time.Duration
	// MaxDelay caps the per-attempt delay. Zero means uncapped.
	MaxDelay time.Duration
	// MaxJitter is the upper bound of random jitter added to each delay.
	// Zero disables jitter.
	MaxJitter time.Duration
	// Statuses lists the transient status codes worth retrying.
	Statuses []int
}

// DefaultRetryPolicy returns the policy used when none is configured:
// four attempts, exponential backoff with jitter, retrying 429 and 503.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultRetryDelay,
		MaxDelay:    DefaultMaxDelay,
		MaxJitter:   DefaultMaxJitter,
		Statuses:    []int{429, 503},
	}
}

// retryable reports whether the status code is in the transient set.
func (p RetryPolicy) retryable(status int) bool {
	return slices.Contains(p.Statuses, status)
}

// options converts the policy into retry-go options for a single call.
func (p RetryPolicy) options(ctx context.Context, logger zerolog.Logger) []retry.Option {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	delayType := retry.DelayTypeFunc(retry.BackOffDelay)
	if p.MaxJitter > 0 {
		delayType = retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)
	}

	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(p.Delay),
		retry.MaxDelay(p.MaxDelay),
		retry.MaxJitter(p.MaxJitter),
		retry.DelayType(delayType),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var transient *transientStatusError
			return errors.As(err, &transient)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug().
				Uint("attempt", n+1).
				Err(err).
				Msg("Retrying transient catalogue response")
		}),
	}
}

// transientStatusError marks an attempt that ended in a retryable status.
// It never escapes the executor: on exhaustion the final response is
// surfaced as a normal terminal response.
type transientStatusError struct {
	status int
}

// Error implements the error interface
func (e *transientStatusError) Error() string {
	return fmt.Sprintf("transient status %d", e.status)
}
