package usecase

import (
	"context"
	"time"

	"timeblock/internal/schedule/repository"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/log"
)

// Calendar is the Google Calendar mirror. It is optional.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config carries the optional collaborators of the use case.
type Config struct {
	Calendar   Calendar
	CalendarID string
	// Location is used when neither the request nor the schedule names a timezone.
	Location *time.Location
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	calendar   Calendar
	calendarID string
	location   *time.Location
	now        func() time.Time
}

// New creates a new schedule UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		repo:       repo,
		l:          l,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		location:   loc,
		now:        time.Now,
	}
}
