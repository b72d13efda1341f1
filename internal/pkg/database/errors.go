package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStoreUnavailable is returned when the backing store timed out or could
// not be reached. Callers surface it as-is; retrying is the store's concern.
var ErrStoreUnavailable = errors.New("store unavailable")

// Unavailable wraps err as ErrStoreUnavailable, keeping the cause in the message.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}

// IsContextError reports whether err comes from an expired or canceled context.
func IsContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// WithTimeout runs fn under a deadline of timeout (none when timeout <= 0).
// Context expiry is reported as ErrStoreUnavailable for op.
func WithTimeout(ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := fn(ctx)
	if err != nil && IsContextError(err) && !errors.Is(err, ErrStoreUnavailable) {
		return Unavailable(op, err)
	}
	return err
}
