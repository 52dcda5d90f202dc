package postgre

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
)

const scheduleColumns = `id::text, user_id::text, title, description, color, start_at, duration_minutes,
	recurrence, timezone, calendar_event_id, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := row.Scan(
		&s.ID, &s.UserID, &s.Title, &s.Description, &s.Color, &s.StartAt, &s.DurationMinutes,
		&s.Recurrence, &s.Timezone, &s.CalendarEventID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateSchedule inserts a new Schedule row and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (schedule.Schedule, error) {
	query := `
		INSERT INTO schedules (id, user_id, title, description, color, start_at, duration_minutes,
			recurrence, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + scheduleColumns

	s, err := scanSchedule(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Color, opt.StartAt,
		opt.DurationMinutes, opt.Recurrence, opt.Timezone,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneSchedule retrieves a single Schedule by the provided filters (AND condition).
// Returns zero-value Schedule (ID == "") when not found.
func (r *implRepository) GetOneSchedule(ctx context.Context, opt repo.GetOneScheduleOptions) (schedule.Schedule, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM schedules WHERE %s LIMIT 1", scheduleColumns, mods)

	s, err := scanSchedule(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSchedules returns the Schedules matching opt.
func (r *implRepository) ListSchedules(ctx context.Context, opt repo.ListSchedulesOptions) ([]schedule.Schedule, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM schedules %s", scheduleColumns, mods)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSchedules"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSchedules"), err)
			return nil, repo.ErrFailedToList
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSchedules"), err)
		return nil, repo.ErrFailedToList
	}
	return schedules, nil
}

// UpdateSchedule overwrites a Schedule owned by opt.UserID and returns the updated entity.
// Returns zero-value Schedule when no row matched.
func (r *implRepository) UpdateSchedule(ctx context.Context, opt repo.UpdateScheduleOptions) (schedule.Schedule, error) {
	query := `
		UPDATE schedules
		SET title = $1, description = $2, color = $3, start_at = $4, duration_minutes = $5,
			recurrence = $6, timezone = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
		RETURNING ` + scheduleColumns

	s, err := scanSchedule(r.db.QueryRow(ctx, query,
		opt.Title, opt.Description, opt.Color, opt.StartAt, opt.DurationMinutes,
		opt.Recurrence, opt.Timezone, time.Now(), opt.ID, opt.UserID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToUpdate
	}
	return s, nil
}

// SetCalendarEventID stores the id of the mirrored Google Calendar event.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	const query = `UPDATE schedules SET calendar_event_id = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteSchedule removes a Schedule owned by opt.UserID.
func (r *implRepository) DeleteSchedule(ctx context.Context, opt repo.DeleteScheduleOptions) error {
	const query = `DELETE FROM schedules WHERE id = $1 AND user_id = $2`
	if _, err := r.db.Exec(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSchedule"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
