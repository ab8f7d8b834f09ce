package csp

import (
	"context"
	"time"

	"github.com/ezex-io/gopkg/csp/internal/scheduler"
)

// CloseAfter schedules ch.Close to run once, after d elapses. The
// returned context.CancelFunc cancels the schedule if Close hasn't run
// yet.
func CloseAfter[T any](ctx context.Context, ch *Channel[T], d time.Duration) context.CancelFunc {
	afterCtx, cancel := context.WithCancel(ctx)

	scheduler.After(afterCtx, d).Do(func(context.Context) {
		ch.Close()
	})

	return cancel
}

// QueueDepthJob reports ch.Length() to report on every tick, until ctx
// is cancelled. It is meant to be run on a scheduler.Scheduler alongside
// other periodic housekeeping jobs in a service built on this package.
type QueueDepthJob[T any] struct {
	ch     *Channel[T]
	report func(depth int)
}

// NewQueueDepthJob builds a Job (see scheduler.Job) that samples ch's
// queued length and passes it to report on every run.
func NewQueueDepthJob[T any](ch *Channel[T], report func(depth int)) *QueueDepthJob[T] {
	return &QueueDepthJob[T]{ch: ch, report: report}
}

func (j *QueueDepthJob[T]) Run(_ context.Context) error {
	j.report(j.ch.Length())

	return nil
}
