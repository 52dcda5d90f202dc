package repository

import (
	"context"

	"timeblock/internal/schedule"
)

// Repository is the composed interface for the schedule data store.
type Repository interface {
	ScheduleRepository
}

// ScheduleRepository defines all data access methods for the Schedule entity.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (schedule.Schedule, error)
	GetOneSchedule(ctx context.Context, opt GetOneScheduleOptions) (schedule.Schedule, error)
	ListSchedules(ctx context.Context, opt ListSchedulesOptions) ([]schedule.Schedule, error)
	UpdateSchedule(ctx context.Context, opt UpdateScheduleOptions) (schedule.Schedule, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	DeleteSchedule(ctx context.Context, opt DeleteScheduleOptions) error
}
