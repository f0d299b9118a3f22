package planner

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// transientMarkers are the substrings that mark a provider failure as worth
// retrying: rate limiting and service overload/unavailability.
var transientMarkers = []string{
	"429",
	"503",
	"overloaded",
	"unavailable",
	"rate limit",
	"resource exhausted",
}

// IsTransientProviderError reports whether err carries a transient marker.
func IsTransientProviderError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// RetryPolicy bounds retries around a generative invocation. Classify decides
// whether a failure is transient; Delay gives the wait before the next
// attempt (attempt is 1-based).
type RetryPolicy struct {
	MaxAttempts int
	Classify    func(error) bool
	Delay       func(attempt int) time.Duration
}

// DefaultRetryPolicy retries transient failures twice more after the first
// attempt, waiting 2^attempt seconds (~2s, then ~4s).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Classify:    IsTransientProviderError,
		Delay: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

// Do runs op until it succeeds, fails permanently, or the attempt budget is
// spent. The terminal error is collapsed to one of the user-facing planner
// errors, keyed off the same transient markers the classifier uses.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) (string, error)) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Printf("generative call failed (attempt %d/%d): %v", attempt, p.MaxAttempts, err)

		if attempt == p.MaxAttempts || !p.Classify(err) {
			break
		}

		if err := sleep(ctx, p.Delay(attempt)); err != nil {
			lastErr = err
			break
		}
	}

	return "", p.surface(lastErr)
}

// surface maps the final provider error to the message the caller shows.
func (p RetryPolicy) surface(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "503") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "unavailable"):
		return fmt.Errorf("%w: %v", ErrServiceOverloaded, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted"):
		return fmt.Errorf("%w: %v", ErrTooManyRequests, err)
	default:
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
}

// sleep waits without blocking other requests and ends early if the caller
// goes away.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
