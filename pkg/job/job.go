package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered jobs on their intervals until the context is done.
// Each job also runs once immediately on start.
type Service struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		go s.runJob(ctx, v)
	}
}

func (s *Service) runJob(ctx context.Context, job job) {
	s.wg.Add(1)
	defer s.wg.Done()

	l := slog.Default().With("job", job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		err := s.withRecover(ctx, l, job)
		if err != nil {
			l.Error("job failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (s *Service) Stop() {
	s.wg.Wait()
}
