package inbox

import (
	"time"

	"timeblock/internal/schedule"
)

// DefaultDurationMinutes is the estimate given to items created without one.
const DefaultDurationMinutes = 30

// --- Inbox Domain Model ---

// Item is an unscheduled to-do waiting in the user's inbox.
type Item struct {
	UserID          string
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Done            bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title           string
	Description     string
	DurationMinutes int
}

// ListInput filters the inbox. A nil Done lists every item.
type ListInput struct {
	Done *bool
}

// UpdateInput is a partial update. Empty strings and zero values keep the
// stored value.
type UpdateInput struct {
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Done            *bool
}

// ScheduleInput drops an item on the grid: either at StartAt or at Percent
// inside the column of Date.
type ScheduleInput struct {
	ID       string
	StartAt  time.Time
	Date     string
	Percent  *float64
	Timezone string
	Color    string
}

type UnscheduleInput struct {
	ScheduleID string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item Item
}

type ListOutput struct {
	Items []Item
}

type DetailOutput struct {
	Item Item
}

type UpdateOutput struct {
	Item Item
}

type ScheduleOutput struct {
	Schedule schedule.Schedule
}

type UnscheduleOutput struct {
	Item Item
}
