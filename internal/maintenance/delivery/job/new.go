// Package job runs the maintenance use cases on cron schedules.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"timeblock/internal/maintenance"
	"timeblock/pkg/log"
)

// Config holds the cron specs. An empty spec disables the job.
type Config struct {
	ResyncSpec string
	PurgeSpec  string
	Location   *time.Location
	// Timeout bounds a single run.
	Timeout time.Duration
}

const defaultTimeout = 5 * time.Minute

// Scheduler owns the cron instance and its registered jobs.
type Scheduler struct {
	cron    *cron.Cron
	uc      maintenance.UseCase
	l       log.Logger
	timeout time.Duration
}

// New validates the specs and registers the jobs. Nothing runs until Run.
func New(l log.Logger, uc maintenance.UseCase, cfg Config) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cl := cronLogger{l: l}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		uc:      uc,
		l:       l,
		timeout: timeout,
	}

	if err := s.register("resync_calendar", cfg.ResyncSpec, s.resyncCalendar); err != nil {
		return nil, err
	}
	if err := s.register("purge_inbox", cfg.PurgeSpec, s.purgeInbox); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) register(name, spec string, fn func(ctx context.Context)) error {
	if spec == "" {
		s.l.Infof(context.Background(), "job.register: %s disabled", name)
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		fn(ctx)
	})
	if err != nil {
		return fmt.Errorf("job %s: invalid spec %q: %w", name, spec, err)
	}
	s.l.Infof(context.Background(), "job.register: %s scheduled at %q", name, spec)
	return nil
}

// Run starts the scheduler and blocks until ctx is cancelled, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	s.l.Info(ctx, "job.Run: stopping scheduler")
	<-s.cron.Stop().Done()
}
