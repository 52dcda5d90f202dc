package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"timeblock/internal/schedule"
	"timeblock/pkg/recurrence"
	"timeblock/pkg/timegrid"
)

// maxWindow bounds List and Export ranges.
const maxWindow = 400 * 24 * time.Hour

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// resolveLocation loads tz, falling back to the configured default when empty.
func (uc *implUseCase) resolveLocation(tz string) (*time.Location, string, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return uc.location, uc.location.String(), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, "", schedule.ErrInvalidTimezone
	}
	return loc, tz, nil
}

// scheduleLocation returns the zone of a stored schedule. Stored zones were
// validated on write, the fallback only covers rows written by hand.
func (uc *implUseCase) scheduleLocation(s schedule.Schedule) *time.Location {
	if s.Timezone == "" {
		return uc.location
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return uc.location
	}
	return loc
}

func (uc *implUseCase) normalizeRecurrence(rule string) (string, error) {
	rule = recurrence.Normalize(rule)
	if rule == "" {
		return "", nil
	}
	if err := recurrence.Validate(rule); err != nil {
		return "", schedule.ErrInvalidRecurrence
	}
	return rule, nil
}

// snapMinutes snaps a duration in minutes to the 15-minute grid.
func (uc *implUseCase) snapMinutes(minutes int) int {
	return int(timegrid.SnapDuration(time.Duration(minutes)*time.Minute) / time.Minute)
}

func (uc *implUseCase) validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !from.Before(to) || to.Sub(from) > maxWindow {
		return schedule.ErrInvalidRange
	}
	return nil
}

// isValidID rejects ids that cannot be a UUID before they reach Postgres.
func (uc *implUseCase) isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mirror pushes s to Google Calendar. Failures are logged and left for the
// maintenance resync.
func (uc *implUseCase) mirror(ctx context.Context, s *schedule.Schedule) {
	if uc.calendar == nil {
		return
	}

	req := s.EventRequest(uc.calendarID)
	if s.CalendarEventID != "" {
		if _, err := uc.calendar.UpdateEvent(ctx, s.CalendarEventID, req); err != nil {
			uc.l.Warnf(ctx, "uc.mirror UpdateEvent %s: %v", s.ID, err)
		}
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirror CreateEvent %s: %v", s.ID, err)
		return
	}
	if err := uc.repo.SetCalendarEventID(ctx, s.ID, event.ID); err != nil {
		uc.l.Warnf(ctx, "uc.mirror SetCalendarEventID %s: %v", s.ID, err)
		return
	}
	s.CalendarEventID = event.ID
}
