package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// RetryPolicy wraps a call in bounded retries with exponential backoff.
//
// EXPONENTIAL BACKOFF means:
//   attempt 1 fails → wait BaseDelay
//   attempt 2 fails → wait BaseDelay * Multiplier
//   ...capped at MaxDelay.
//
// WHY? If the source site is rate-limiting you, hammering it again
// immediately makes it worse. Waiting longer each time gives it time
// to settle.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	Jitter      bool

	// Retryable decides whether an error is worth another attempt.
	// Nil means every error is retryable.
	Retryable func(error) bool

	// sleep is swappable so tests do not actually wait.
	sleep func(time.Duration)
}

// DefaultRetryPolicy mirrors the fetch policy used across the scraper:
// 3 total attempts, 1s base, doubling, capped at 10s.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		Multiplier:  2,
		MaxDelay:    10 * time.Second,
	}
}

// Backoff returns the wait before the given retry (attempt is 1-based,
// counting failed attempts so far).
func (p *RetryPolicy) Backoff(attempt int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= p.Multiplier
	}
	if limit := float64(p.MaxDelay); p.MaxDelay > 0 && d > limit {
		d = limit
	}
	if p.Jitter {
		d = rand.Float64() * d
	}
	return time.Duration(d)
}

// Do runs fn up to MaxAttempts times. It stops on the first success or
// the first non-retryable error, and returns the last error after all
// attempts are exhausted.
func (p *RetryPolicy) Do(fn func() error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt < p.MaxAttempts {
			wait := p.Backoff(attempt)
			Warn("Attempt %d/%d failed: %v — retrying in %v", attempt, p.MaxAttempts, lastErr, wait)
			sleep(wait)
		}
	}

	return fmt.Errorf("all %d attempts failed — last error: %w", p.MaxAttempts, lastErr)
}

// Retry is the short form for callers that only care about attempt count.
func Retry(maxAttempts int, fn func() error) error {
	p := DefaultRetryPolicy()
	p.MaxAttempts = maxAttempts
	return p.Do(fn)
}
