package gcalendar

import "time"

// externalIDKey is the private extended property holding the schedule id.
const externalIDKey = "timeblockScheduleId"

// EventRequest is the input for creating or replacing a Google Calendar event.
type EventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	Recurrence  string // RRULE value without prefix
	ExternalID  string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
