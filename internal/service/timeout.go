package service

import (
	"context"
	"fmt"
	"time"
)

// DefaultOperationTimeout bounds a vault call when no timeout is configured.
const DefaultOperationTimeout = 10 * time.Second

// withTimeout runs fn under a deadline of d. When the deadline passes first
// the result of fn is abandoned and the context error is returned wrapped in
// kind. fn must honour ctx or finish on its own; it is never interrupted.
func withTimeout[T any](ctx context.Context, d time.Duration, kind error, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)

	go func() {
		v, err := fn(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", kind, ctx.Err())
	}
}
