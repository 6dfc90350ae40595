// Package retry provides a small attempt/backoff loop shared by components
// that talk to flaky remote systems.
package retry

import (
	"context"
	"fmt"
	"time"
)

// DelayFunc computes the wait before the next attempt. The argument is the
// 1-based number of the attempt that just failed.
type DelayFunc func(attempt int) time.Duration

// Linear returns a DelayFunc that waits attempt*base between attempts
// (base, 2*base, 3*base, ...).
func Linear(base time.Duration) DelayFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// Do runs fn up to attempts times, waiting delay(attempt) between failed
// attempts. It returns nil on the first success, the context error if the
// wait is interrupted, and otherwise the error from the last attempt.
func Do(ctx context.Context, attempts int, delay DelayFunc, fn func(ctx context.Context, attempt int) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay(attempt)):
		}
	}

	return lastErr
}
