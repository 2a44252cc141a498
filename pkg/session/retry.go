package session

import (
	"context"
	"time"
)

// retry runs fn up to attempts times, doubling delay after each failure.
// It returns nil on the first success, ctx.Err() if cancelled while
// waiting, and the last error otherwise.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
