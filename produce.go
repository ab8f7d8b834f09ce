package csp

import (
	"context"

	"github.com/ezex-io/gopkg/csp/internal/errors"
	"github.com/ezex-io/gopkg/csp/internal/retry"
)

// Producer yields the next value to push onto a channel. Returning
// ok=false stops the Produce loop without closing the channel; the
// caller remains responsible for Close.
type Producer[T any] func(ctx context.Context) (value T, ok bool, err error)

// Produce runs fn in a new goroutine, repeatedly calling it and Putting
// whatever it returns onto ch, until fn returns ok=false, fn returns a
// non-nil error, ctx is cancelled, or a Put is rejected because ch has
// left the Open state. A non-nil error from fn
// is reported to ch's ErrorSink and also stops the loop.
//
// Produce panics if ch already has a Produce loop running; at most one
// may run against a given Channel at a time. The returned
// context.CancelFunc stops the loop early without otherwise touching
// the channel.
func Produce[T any](ctx context.Context, ch *Channel[T], fn Producer[T]) context.CancelFunc {
	ch.mu.Lock()
	if ch.producing {
		ch.mu.Unlock()
		panic(errors.ErrDoubleProduce)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	ch.producing = true
	ch.mu.Unlock()

	go func() {
		defer func() {
			ch.mu.Lock()
			ch.producing = false
			ch.mu.Unlock()
		}()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ch.Done():
				return
			default:
			}

			v, ok, err := fn(loopCtx)
			if err != nil {
				ch.errorSink(err)

				return
			}
			if !ok {
				return
			}

			if !ch.Put(loopCtx, v) {
				return
			}
		}
	}()

	return cancel
}

// PutWithRetry Puts v onto ch, retrying with delay between attempts
// whenever Put reports failure, up to maxRetries attempts in total (see
// retry.ExecuteAsync). It returns immediately; the final outcome is reported through
// onResult exactly once. A Put fails when ctx is cancelled or ch
// transitions out of Open, neither of which a delayed retry can fix by
// itself, so this is mainly useful when ctx carries enough budget to
// outlast a transient backpressure spell on an unbuffered channel.
func PutWithRetry[T any](ctx context.Context, ch *Channel[T], v T, onResult func(accepted bool), opts ...retry.AsyncOptions) {
	retry.ExecuteAsync(ctx, func() error {
		if ch.Put(ctx, v) {
			if onResult != nil {
				onResult(true)
			}

			return nil
		}

		return errors.ErrPutRejected
	}, func(error) {
		if onResult != nil {
			onResult(false)
		}
	}, opts...)
}
