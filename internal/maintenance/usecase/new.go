package usecase

import (
	"context"
	"time"

	"timeblock/internal/inbox"
	"timeblock/internal/schedule"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/log"
)

const (
	defaultBatchSize = 50
	defaultRetention = 30 * 24 * time.Hour
)

// Calendar creates mirrored events. It is optional.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
}

// Config carries the tuning knobs of the jobs.
type Config struct {
	Calendar   Calendar
	CalendarID string
	BatchSize  int
	Retention  time.Duration
}

type implUseCase struct {
	schedules  schedule.UseCase
	inbox      inbox.UseCase
	calendar   Calendar
	calendarID string
	batchSize  int
	retention  time.Duration
	l          log.Logger
	now        func() time.Time
}

// New creates a new maintenance UseCase implementation.
func New(schedules schedule.UseCase, inbox inbox.UseCase, l log.Logger, cfg Config) *implUseCase {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	retention := cfg.Retention
	if retention <= 0 {
		retention = defaultRetention
	}
	return &implUseCase{
		schedules:  schedules,
		inbox:      inbox,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		batchSize:  batch,
		retention:  retention,
		l:          l,
		now:        time.Now,
	}
}
