package repository

import "time"

// CreateScheduleOptions holds parameters for inserting a new Schedule.
type CreateScheduleOptions struct {
	UserID          string
	Title           string
	Description     string
	Color           string
	StartAt         time.Time
	DurationMinutes int
	Recurrence      string
	Timezone        string
}

// GetOneScheduleOptions holds filter parameters for fetching a single Schedule.
// All non-empty fields are applied as AND conditions.
type GetOneScheduleOptions struct {
	ID     string
	UserID string
}

// ListSchedulesOptions holds filter parameters for listing Schedules.
//
// When From/To are set, one-off schedules must overlap [From, To) and
// recurring schedules must start before To. Unsynced selects rows without a
// calendar event id across all users.
type ListSchedulesOptions struct {
	UserID   string
	From     time.Time
	To       time.Time
	Unsynced bool
	Limit    int
	OrderBy  string
}

// UpdateScheduleOptions holds parameters for updating an existing Schedule.
type UpdateScheduleOptions struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Color           string
	StartAt         time.Time
	DurationMinutes int
	Recurrence      string
	Timezone        string
}

// DeleteScheduleOptions identifies the Schedule to delete.
type DeleteScheduleOptions struct {
	ID     string
	UserID string
}
