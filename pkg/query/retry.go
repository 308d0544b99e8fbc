package query

import (
	"context"
	stderrors "errors"
	"os/exec"
	"time"
)

// Inkscape occasionally exits non-zero on a cold start (profile migration,
// a stale instance holding the D-Bus name). A second launch usually works.
const (
	inkscapeAttempts   = 2
	inkscapeRetryDelay = 250 * time.Millisecond
)

// transientError marks a failure worth another attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// markTransient wraps process exit failures as transient. Anything else,
// such as a missing binary or a cancelled context, is returned as is.
func markTransient(err error) error {
	var exitErr *exec.ExitError
	if err != nil && stderrors.As(err, &exitErr) {
		return &transientError{err: err}
	}
	return err
}

// retry runs fn up to attempts times, doubling delay between attempts. Only
// errors wrapped in transientError are retried. The returned error is
// unwrapped from its transient marker.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		var te *transientError
		if !stderrors.As(err, &te) {
			return err
		}
		lastErr = te.err

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
