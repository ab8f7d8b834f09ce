// Package retry runs a fallible task in the background with bounded,
// delayed retries, adapted from the ezex-io/gopkg/retry helper.
package retry

import (
	"context"
	"time"
)

// SyncTask is a task retried synchronously within ExecuteAsync's
// goroutine; it returns nil on success.
type SyncTask func() error

type AsyncOptions func(*asyncOptions)

type asyncOptions struct {
	maxRetries int
	retryDelay time.Duration
}

func defaultAsyncOpts() *asyncOptions {
	return &asyncOptions{
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

func WithAsyncMaxRetries(maxRetries int) AsyncOptions {
	return func(o *asyncOptions) {
		o.maxRetries = maxRetries
	}
}

func WithAsyncRetryDelay(retryDelay time.Duration) AsyncOptions {
	return func(o *asyncOptions) {
		o.retryDelay = retryDelay
	}
}

// ExecuteAsync runs task in a new goroutine, making at most maxRetries
// attempts in total with retryDelay between them. It respects ctx cancellation
// and calls onFailure exactly once if every attempt fails (or ctx is
// cancelled first).
func ExecuteAsync(
	ctx context.Context,
	task SyncTask,
	onFailure func(error),
	opts ...AsyncOptions,
) {
	conf := defaultAsyncOpts()
	for _, opt := range opts {
		opt(conf)
	}

	go func() {
		var err error
		for attempt := 0; attempt < conf.maxRetries; attempt++ {
			err = task()
			if err == nil {
				return
			}

			if attempt < conf.maxRetries-1 {
				select {
				case <-ctx.Done():
					if onFailure != nil {
						onFailure(ctx.Err())
					}

					return

				case <-time.After(conf.retryDelay):
				}
			}
		}

		if onFailure != nil {
			onFailure(err)
		}
	}()
}
