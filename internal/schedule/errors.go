package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrStartRequired     = errors.New("start_at is required")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidRange      = errors.New("invalid time range")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidMove       = errors.New("either start_at or date with percent is required")
)
