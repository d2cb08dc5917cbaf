package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	pkgLog "marketplace-bot/pkg/log"
)

// JobTimeout bounds a single job run.
const JobTimeout = 2 * time.Minute

// Scheduler runs cron jobs in a fixed location.
type Scheduler struct {
	l     pkgLog.Logger
	inner gocron.Scheduler
}

func New(l pkgLog.Logger, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithLogger(gocronLogger{l: l}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{l: l, inner: s}, nil
}

// AddJob schedules job under a cron expression. An empty expression is a no-op
// and reports false.
func (s *Scheduler) AddJob(name, cronExpr string, job func(ctx context.Context)) (bool, error) {
	if cronExpr == "" {
		return false, nil
	}

	_, err := s.inner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), "job:"+name), JobTimeout)
			defer cancel()
			job(ctx)
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return false, fmt.Errorf("failed to schedule job %q: %w", name, err)
	}

	s.l.Infof(context.Background(), "internal.scheduler.AddJob: %s scheduled at %q", name, cronExpr)
	return true, nil
}

func (s *Scheduler) Start() {
	s.inner.Start()
}

// Stop waits for running jobs and shuts the scheduler down.
func (s *Scheduler) Stop() error {
	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}

type gocronLogger struct {
	l pkgLog.Logger
}

func (g gocronLogger) Debug(msg string, args ...any) {
	g.l.Debugf(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Info(msg string, args ...any) {
	g.l.Infof(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Warn(msg string, args ...any) {
	g.l.Warnf(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Error(msg string, args ...any) {
	g.l.Errorf(context.Background(), "gocron: %s %v", msg, args)
}
