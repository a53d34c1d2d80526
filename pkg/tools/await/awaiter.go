// Package await blocks until a moment passes or a context is done,
// whichever comes first.
package await

import "context"

type Awaiter interface {
	// Await reports false if ctx was done before the awaited event.
	Await(ctx context.Context) (waited bool)
}

type noAwaiter struct{}

func (noAwaiter) Await(ctx context.Context) bool {
	return ctx.Err() == nil
}
