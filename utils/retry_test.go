package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleepPolicy() *RetryPolicy {
	p := DefaultRetryPolicy()
	p.sleep = func(time.Duration) {}
	return p
}

func TestRetryPolicy_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := noSleepPolicy().Do(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_RecoversAfterTwoFailures(t *testing.T) {
	calls := 0
	err := noSleepPolicy().Do(func() error {
		calls++
		if calls <= 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_ExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still down")
	err := noSleepPolicy().Do(func() error {
		calls++
		return sentinel
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "all 3 attempts failed")
}

func TestRetryPolicy_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("bad request")
	p := noSleepPolicy()
	p.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	err := p.Do(func() error {
		calls++
		return fatal
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, fatal)
}

func TestRetryPolicy_BackoffSchedule(t *testing.T) {
	p := &RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   1 * time.Second,
		Multiplier:  2,
		MaxDelay:    10 * time.Second,
	}

	assert.Equal(t, 1*time.Second, p.Backoff(1))
	assert.Equal(t, 2*time.Second, p.Backoff(2))
	assert.Equal(t, 4*time.Second, p.Backoff(3))
	assert.Equal(t, 8*time.Second, p.Backoff(4))
	// 16s would exceed the cap
	assert.Equal(t, 10*time.Second, p.Backoff(5))
}

func TestRetryPolicy_JitterStaysUnderCap(t *testing.T) {
	p := &RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		Multiplier:  2,
		MaxDelay:    10 * time.Second,
		Jitter:      true,
	}

	for i := 0; i < 50; i++ {
		d := p.Backoff(4)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 8*time.Second)
	}
}

func TestRetry_ShortForm(t *testing.T) {
	calls := 0
	err := Retry(1, func() error {
		calls++
		return errors.New("nope")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
