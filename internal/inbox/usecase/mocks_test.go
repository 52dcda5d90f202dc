package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
	"timeblock/internal/schedule"
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

// mockRepo is an in-memory repository.Repository keyed like the table.
type mockRepo struct {
	rows       map[string]inbox.Item
	seq        int
	clock      time.Time
	failDelete map[string]bool
	lastList   repo.ListItemsOptions
}

func newMockRepo(clock time.Time) *mockRepo {
	return &mockRepo{rows: map[string]inbox.Item{}, clock: clock, failDelete: map[string]bool{}}
}

func key(userID, id string) string { return userID + "|" + id }

// put stores an item as-is, for arranging tests.
func (m *mockRepo) put(item inbox.Item) inbox.Item {
	m.rows[key(item.UserID, item.ID)] = item
	return item
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inbox.Item, error) {
	m.seq++
	// Each item is a minute newer than the previous one.
	at := m.clock.Add(time.Duration(m.seq) * time.Minute)
	return m.put(inbox.Item{
		UserID:          opt.UserID,
		ID:              fmt.Sprintf("item-%d", m.seq),
		Title:           opt.Title,
		Description:     opt.Description,
		DurationMinutes: opt.DurationMinutes,
		CreatedAt:       at,
		UpdatedAt:       at,
	}), nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inbox.Item, error) {
	return m.rows[key(opt.UserID, opt.ID)], nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inbox.Item, error) {
	m.lastList = opt
	var out []inbox.Item
	for _, item := range m.rows {
		if opt.UserID != "" && item.UserID != opt.UserID {
			continue
		}
		if opt.Done != nil && item.Done != *opt.Done {
			continue
		}
		if !opt.UpdatedBefore.IsZero() && !item.UpdatedAt.Before(opt.UpdatedBefore) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inbox.Item, error) {
	existing, ok := m.rows[key(opt.UserID, opt.ID)]
	if !ok {
		return inbox.Item{}, nil
	}
	existing.Title = opt.Title
	existing.Description = opt.Description
	existing.DurationMinutes = opt.DurationMinutes
	existing.Done = opt.Done
	return m.put(existing), nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	if m.failDelete[opt.ID] {
		return repo.ErrFailedToDelete
	}
	delete(m.rows, key(opt.UserID, opt.ID))
	return nil
}

// mockSchedules is a schedule.UseCase keeping schedules in memory.
type mockSchedules struct {
	rows       map[string]schedule.Schedule
	seq        int
	created    []schedule.CreateInput
	createErr  error
	deleteErr  error
	deletedIDs []string
}

func newMockSchedules() *mockSchedules {
	return &mockSchedules{rows: map[string]schedule.Schedule{}}
}

func (m *mockSchedules) Create(ctx context.Context, sc model.Scope, input schedule.CreateInput) (schedule.CreateOutput, error) {
	m.created = append(m.created, input)
	if m.createErr != nil {
		return schedule.CreateOutput{}, m.createErr
	}
	m.seq++
	s := schedule.Schedule{
		ID:              fmt.Sprintf("sched-%d", m.seq),
		UserID:          sc.UserID,
		Title:           input.Title,
		Description:     input.Description,
		StartAt:         input.StartAt,
		DurationMinutes: input.DurationMinutes,
	}
	m.rows[s.ID] = s
	return schedule.CreateOutput{Schedule: s}, nil
}

func (m *mockSchedules) Detail(ctx context.Context, sc model.Scope, id string) (schedule.DetailOutput, error) {
	s, ok := m.rows[id]
	if !ok || s.UserID != sc.UserID {
		return schedule.DetailOutput{}, schedule.ErrScheduleNotFound
	}
	return schedule.DetailOutput{Schedule: s}, nil
}

func (m *mockSchedules) Delete(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	delete(m.rows, id)
	return nil
}

func (m *mockSchedules) List(ctx context.Context, sc model.Scope, input schedule.ListInput) (schedule.ListOutput, error) {
	return schedule.ListOutput{}, errors.New("not used")
}

func (m *mockSchedules) Update(ctx context.Context, sc model.Scope, input schedule.UpdateInput) (schedule.UpdateOutput, error) {
	return schedule.UpdateOutput{}, errors.New("not used")
}

func (m *mockSchedules) Move(ctx context.Context, sc model.Scope, input schedule.MoveInput) (schedule.UpdateOutput, error) {
	return schedule.UpdateOutput{}, errors.New("not used")
}

func (m *mockSchedules) Week(ctx context.Context, sc model.Scope, input schedule.WeekInput) (schedule.WeekOutput, error) {
	return schedule.WeekOutput{}, errors.New("not used")
}

func (m *mockSchedules) Export(ctx context.Context, sc model.Scope, input schedule.ExportInput) (schedule.ExportOutput, error) {
	return schedule.ExportOutput{}, errors.New("not used")
}

func (m *mockSchedules) ListUnsynced(ctx context.Context, limit int) ([]schedule.Schedule, error) {
	return nil, errors.New("not used")
}

func (m *mockSchedules) MarkSynced(ctx context.Context, id, eventID string) error {
	return errors.New("not used")
}

func newTestUseCase(r *mockRepo, s *mockSchedules) *implUseCase {
	return New(r, s, &mockLogger{})
}
