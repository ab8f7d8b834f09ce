package scheduler

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job is a unit of work the Scheduler can run on a fixed interval.
type Job interface {
	Run(ctx context.Context) error
}

type Scheduler struct {
	ctx  context.Context
	jobs []Job
	name string
}

func NewScheduler(ctx context.Context, name string) Scheduler {
	return Scheduler{
		ctx:  ctx,
		jobs: make([]Job, 0),
		name: name,
	}
}

func (s *Scheduler) AddJob(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start starts the scheduler and runs the jobs on the given interval.
func (s *Scheduler) Start(interval time.Duration, onSuccess func()) {
	Every(s.ctx, interval).Do(func(ctx context.Context) {
		s.runJobs(ctx, onSuccess)
	})
}

func (s *Scheduler) runJobs(ctx context.Context, onSuccess func()) {
	group, ctx := errgroup.WithContext(ctx)

	for _, j := range s.jobs {
		job := j
		group.Go(func() error {
			if err := job.Run(ctx); err != nil {
				log.Printf("%s: job failed: %v", s.name, err)

				return err
			}

			return nil
		})
	}

	if err := group.Wait(); err == nil && onSuccess != nil {
		onSuccess()
	}
}
