package csp

import (
	"context"

	"github.com/ezex-io/gopkg/csp/internal/errors"
)

// Consumer handles one value taken from a channel. A non-nil error is
// reported to the channel's ErrorSink; the Consume loop continues
// regardless, since a single bad value should not stop delivery of the
// rest.
type Consumer[T any] func(ctx context.Context, v T) error

// Consume takes values from ch and calls fn for each one, in order,
// until ch reaches Ended or ctx is cancelled. It blocks the calling
// goroutine for as long as that takes, so callers that want to keep
// doing other work should run it in its own goroutine.
//
// Consume panics if ch already has a Consume loop running; at most one
// may run against a given Channel at a time.
func Consume[T any](ctx context.Context, ch *Channel[T], fn Consumer[T]) {
	ch.mu.Lock()
	if ch.consuming {
		ch.mu.Unlock()
		panic(errors.ErrDoubleConsume)
	}
	ch.consuming = true
	ch.mu.Unlock()

	defer func() {
		ch.mu.Lock()
		ch.consuming = false
		ch.mu.Unlock()
	}()

	for {
		v, ok := ch.Take(ctx)
		if !ok {
			return
		}

		if err := fn(ctx, v); err != nil {
			ch.errorSink(err)
		}
	}
}
