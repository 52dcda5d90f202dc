package usecase

import (
	"context"
	"strings"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
	"timeblock/pkg/timegrid"
)

// Detail retrieves a single Schedule owned by the caller. Returns ErrScheduleNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (schedule.DetailOutput, error) {
	s, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return schedule.DetailOutput{}, err
	}
	return schedule.DetailOutput{Schedule: s}, nil
}

// Update modifies an existing Schedule. Returns ErrScheduleNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input schedule.UpdateInput) (schedule.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return schedule.UpdateOutput{}, err
	}

	tz := uc.coalesce(strings.TrimSpace(input.Timezone), existing.Timezone)
	loc, tz, err := uc.resolveLocation(tz)
	if err != nil {
		return schedule.UpdateOutput{}, err
	}

	rule := existing.Recurrence
	if input.Recurrence != nil {
		if rule, err = uc.normalizeRecurrence(*input.Recurrence); err != nil {
			return schedule.UpdateOutput{}, err
		}
	}

	start := existing.StartAt
	if !input.StartAt.IsZero() {
		start = timegrid.SnapTime(input.StartAt.In(loc))
	}

	duration := existing.DurationMinutes
	if input.DurationMinutes > 0 {
		duration = uc.snapMinutes(input.DurationMinutes)
	}

	return uc.save(ctx, repo.UpdateScheduleOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		Title:           uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:     uc.coalesce(input.Description, existing.Description),
		Color:           uc.coalesce(input.Color, existing.Color),
		StartAt:         start,
		DurationMinutes: duration,
		Recurrence:      rule,
		Timezone:        tz,
	})
}

// Delete removes a Schedule and its mirrored calendar event. Returns ErrScheduleNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if uc.calendar != nil && existing.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, existing.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteEvent %s: %v", existing.CalendarEventID, err)
		}
	}

	if err := uc.repo.DeleteSchedule(ctx, repo.DeleteScheduleOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSchedule: %v", err)
		return err
	}
	return nil
}

// getOwned loads a Schedule by id and owner. Ids that are not UUIDs and
// schedules of other users are reported as not found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (schedule.Schedule, error) {
	if !uc.isValidID(id) {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}

	s, err := uc.repo.GetOneSchedule(ctx, repo.GetOneScheduleOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneSchedule: %v", err)
		return schedule.Schedule{}, err
	}
	if s.ID == "" {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

func (uc *implUseCase) save(ctx context.Context, opt repo.UpdateScheduleOptions) (schedule.UpdateOutput, error) {
	s, err := uc.repo.UpdateSchedule(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.save UpdateSchedule: %v", err)
		return schedule.UpdateOutput{}, err
	}
	if s.ID == "" {
		return schedule.UpdateOutput{}, schedule.ErrScheduleNotFound
	}

	uc.mirror(ctx, &s)

	return schedule.UpdateOutput{Schedule: s}, nil
}
