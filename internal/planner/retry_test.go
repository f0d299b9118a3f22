package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPolicy keeps the default shape but swaps the delay for a recorder so
// tests run instantly.
func testPolicy(delays *[]time.Duration) RetryPolicy {
	policy := DefaultRetryPolicy()
	realDelay := policy.Delay
	policy.Delay = func(attempt int) time.Duration {
		*delays = append(*delays, realDelay(attempt))
		return 0
	}
	return policy
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	var delays []time.Duration
	calls := 0

	result, err := testPolicy(&delays).Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return `{"ok":true}`, nil
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, result)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestRetryCeilingOnTransientError(t *testing.T) {
	var delays []time.Duration
	calls := 0

	_, err := testPolicy(&delays).Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("503 service overloaded")
	})

	// Exactly three attempts, with exponential gaps of 2s then 4s.
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
	assert.ErrorIs(t, err, ErrServiceOverloaded)
}

func TestRetryRateLimitSurfacesTooManyRequests(t *testing.T) {
	var delays []time.Duration

	_, err := testPolicy(&delays).Do(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("googleapi: Error 429: quota exceeded")
	})

	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.Len(t, delays, 2)
}

func TestRetryPermanentErrorAbortsImmediately(t *testing.T) {
	var delays []time.Duration
	calls := 0

	_, err := testPolicy(&delays).Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("invalid api key")
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestRetryRecoversAfterTransientError(t *testing.T) {
	var delays []time.Duration
	calls := 0

	result, err := testPolicy(&delays).Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("model overloaded, retry later")
		}
		return "second time lucky", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "second time lucky", result)
	assert.Equal(t, 2, calls)
}

func TestRetryStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	policy := DefaultRetryPolicy()
	policy.Delay = func(int) time.Duration { return time.Hour }

	done := make(chan error, 1)
	go func() {
		_, err := policy.Do(ctx, func(ctx context.Context) (string, error) {
			calls++
			return "", errors.New("503 unavailable")
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not observe context cancellation")
	}
}

func TestIsTransientProviderError(t *testing.T) {
	assert.True(t, IsTransientProviderError(errors.New("503 Service Unavailable")))
	assert.True(t, IsTransientProviderError(errors.New("the model is overloaded")))
	assert.True(t, IsTransientProviderError(errors.New("429 Too Many Requests")))
	assert.True(t, IsTransientProviderError(errors.New("RESOURCE EXHAUSTED")))
	assert.False(t, IsTransientProviderError(errors.New("401 unauthorized")))
	assert.False(t, IsTransientProviderError(nil))
}
