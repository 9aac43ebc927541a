package api

import (
	"context"
	"math/rand"
	"time"
)

// RetryConfig configures backoff for rate-limited requests. Only HTTP 429
// responses are ever retried; every other failure is terminal.
type RetryConfig struct {
	// MaxRetries is the number of retry attempts after the first request,
	// so a call makes at most MaxRetries+1 attempts. Zero disables retries.
	MaxRetries int
	// InitialDelay is the backoff delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff delay.
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
	}
}

// Delay returns the equal-jitter backoff delay for the given zero-based
// attempt: half of the capped exponential delay plus a uniformly random
// share of the other half. The result always lies in [capped/2, capped],
// which avoids synchronized retries across clients without exceeding the
// configured ceiling.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	capped := r.cappedDelay(attempt)
	half := capped / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}

// cappedDelay computes min(InitialDelay * 2^attempt, MaxDelay). Doubling
// saturates at MaxDelay rather than overflowing, so arbitrarily large
// attempt counts are safe.
func (r *RetryConfig) cappedDelay(attempt int) time.Duration {
	delay := r.InitialDelay
	if delay <= 0 {
		return 0
	}
	if delay >= r.MaxDelay {
		return r.MaxDelay
	}
	for i := 0; i < attempt; i++ {
		delay <<= 1
		if delay >= r.MaxDelay || delay < 0 {
			return r.MaxDelay
		}
	}
	return delay
}

// Wait sleeps for the backoff delay before the next retry, returning early
// with the context's error if it is cancelled.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.Delay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
