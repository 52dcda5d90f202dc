package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
	"timeblock/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	rows    map[string]schedule.Schedule
	seq     int
	fail    bool
	lastOpt repo.ListSchedulesOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: map[string]schedule.Schedule{}}
}

func (m *mockRepo) nextID() string {
	m.seq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", m.seq)
}

func (m *mockRepo) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (schedule.Schedule, error) {
	if m.fail {
		return schedule.Schedule{}, repo.ErrFailedToInsert
	}
	s := schedule.Schedule{
		ID:              m.nextID(),
		UserID:          opt.UserID,
		Title:           opt.Title,
		Description:     opt.Description,
		Color:           opt.Color,
		StartAt:         opt.StartAt,
		DurationMinutes: opt.DurationMinutes,
		Recurrence:      opt.Recurrence,
		Timezone:        opt.Timezone,
	}
	m.rows[s.ID] = s
	return s, nil
}

func (m *mockRepo) GetOneSchedule(ctx context.Context, opt repo.GetOneScheduleOptions) (schedule.Schedule, error) {
	if m.fail {
		return schedule.Schedule{}, repo.ErrFailedToGet
	}
	s, ok := m.rows[opt.ID]
	if !ok || (opt.UserID != "" && s.UserID != opt.UserID) {
		return schedule.Schedule{}, nil
	}
	return s, nil
}

func (m *mockRepo) ListSchedules(ctx context.Context, opt repo.ListSchedulesOptions) ([]schedule.Schedule, error) {
	m.lastOpt = opt
	if m.fail {
		return nil, repo.ErrFailedToList
	}
	var out []schedule.Schedule
	for _, s := range m.rows {
		if opt.UserID != "" && s.UserID != opt.UserID {
			continue
		}
		if opt.Unsynced && s.CalendarEventID != "" {
			continue
		}
		if !opt.To.IsZero() && !s.StartAt.Before(opt.To) {
			continue
		}
		if !opt.From.IsZero() && s.Recurrence == "" && !s.StartAt.Add(s.Duration()).After(opt.From) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (m *mockRepo) UpdateSchedule(ctx context.Context, opt repo.UpdateScheduleOptions) (schedule.Schedule, error) {
	if m.fail {
		return schedule.Schedule{}, repo.ErrFailedToUpdate
	}
	s, ok := m.rows[opt.ID]
	if !ok || s.UserID != opt.UserID {
		return schedule.Schedule{}, nil
	}
	s.Title = opt.Title
	s.Description = opt.Description
	s.Color = opt.Color
	s.StartAt = opt.StartAt
	s.DurationMinutes = opt.DurationMinutes
	s.Recurrence = opt.Recurrence
	s.Timezone = opt.Timezone
	m.rows[s.ID] = s
	return s, nil
}

func (m *mockRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	s, ok := m.rows[id]
	if !ok {
		return nil
	}
	s.CalendarEventID = eventID
	m.rows[id] = s
	return nil
}

func (m *mockRepo) DeleteSchedule(ctx context.Context, opt repo.DeleteScheduleOptions) error {
	if m.fail {
		return repo.ErrFailedToDelete
	}
	delete(m.rows, opt.ID)
	return nil
}

type mockCalendar struct {
	fail    bool
	created []gcalendar.EventRequest
	updated []string
	deleted []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: fmt.Sprintf("evt-%d", len(m.created))}, nil
}

func (m *mockCalendar) UpdateEvent(ctx context.Context, eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	m.updated = append(m.updated, eventID)
	return &gcalendar.Event{ID: eventID}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.fail {
		return errors.New("calendar unavailable")
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

func newTestUseCase(r *mockRepo, cal *mockCalendar, now time.Time) *implUseCase {
	cfg := Config{CalendarID: "primary", Location: time.UTC}
	if cal != nil {
		cfg.Calendar = cal
	}
	uc := New(r, &mockLogger{}, cfg)
	uc.now = func() time.Time { return now }
	return uc
}
