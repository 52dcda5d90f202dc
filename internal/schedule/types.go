package schedule

import (
	"time"

	"timeblock/pkg/gcalendar"
	"timeblock/pkg/timegrid"
)

// --- Schedule Domain Model ---

// Schedule is a block of time placed on the calendar grid.
type Schedule struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Color           string
	StartAt         time.Time
	DurationMinutes int
	Recurrence      string // RRULE value, empty for one-off entries
	Timezone        string // IANA zone recurrences are expanded in
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration returns the length of the schedule.
func (s Schedule) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// EventRequest maps the schedule onto a Google Calendar event.
func (s Schedule) EventRequest(calendarID string) gcalendar.EventRequest {
	return gcalendar.EventRequest{
		CalendarID:  calendarID,
		Summary:     s.Title,
		Description: s.Description,
		StartTime:   s.StartAt,
		EndTime:     s.StartAt.Add(s.Duration()),
		Timezone:    s.Timezone,
		Recurrence:  s.Recurrence,
		ExternalID:  s.ID,
	}
}

// Occurrence is one concrete instance of a Schedule. One-off schedules have
// exactly one occurrence.
type Occurrence struct {
	Schedule Schedule
	StartAt  time.Time
	EndAt    time.Time
}

// Cell is an occurrence positioned inside a day column.
type Cell struct {
	Occurrence    Occurrence
	TopPercent    float64
	HeightPercent float64
}

// DayColumn is one day of the week view.
type DayColumn struct {
	Date  time.Time
	Cells []Cell
}

// --- UseCase Inputs ---

// CreateInput places a new schedule. The start is StartAt or, for a drop on
// the grid, Percent inside the column of Date.
type CreateInput struct {
	Title           string
	Description     string
	Color           string
	StartAt         time.Time
	Date            string
	Percent         *float64
	DurationMinutes int
	Recurrence      string
	Timezone        string
}

type ListInput struct {
	From time.Time
	To   time.Time
}

// UpdateInput is a partial update. Empty strings and zero values keep the
// stored value. Recurrence is a pointer so an empty string clears it.
type UpdateInput struct {
	ID              string
	Title           string
	Description     string
	Color           string
	StartAt         time.Time
	DurationMinutes int
	Recurrence      *string
	Timezone        string
}

// MoveInput relocates a schedule. Either StartAt, or Date plus Percent
// (position inside the day column) must be set.
type MoveInput struct {
	ID       string
	StartAt  time.Time
	Date     string
	Percent  *float64
	Timezone string
}

type WeekInput struct {
	Date     string // anchor understood by datemath, empty means today
	Timezone string
}

type ExportInput struct {
	From time.Time
	To   time.Time
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Schedule Schedule
}

type ListOutput struct {
	Occurrences []Occurrence
	Truncated   bool
}

type DetailOutput struct {
	Schedule Schedule
}

type UpdateOutput struct {
	Schedule Schedule
}

type WeekOutput struct {
	Start      time.Time
	End        time.Time
	Timezone   string
	HourGuides []timegrid.HourGuide
	Days       []DayColumn
	Truncated  bool
}

type ExportOutput struct {
	Filename string
	Body     []byte
}
