package usecase

import (
	"context"
	"strings"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
)

// Create places a new Schedule on the grid. Start and duration are snapped
// to 15 minutes in the schedule's timezone.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input schedule.CreateInput) (schedule.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return schedule.CreateOutput{}, schedule.ErrTitleRequired
	}
	if input.StartAt.IsZero() && (input.Date == "" || input.Percent == nil) {
		return schedule.CreateOutput{}, schedule.ErrStartRequired
	}

	loc, tz, err := uc.resolveLocation(input.Timezone)
	if err != nil {
		return schedule.CreateOutput{}, err
	}

	start, err := uc.dropTarget(input.StartAt, input.Date, input.Percent, loc)
	if err != nil {
		return schedule.CreateOutput{}, err
	}

	rule, err := uc.normalizeRecurrence(input.Recurrence)
	if err != nil {
		return schedule.CreateOutput{}, err
	}

	s, err := uc.repo.CreateSchedule(ctx, repo.CreateScheduleOptions{
		UserID:          sc.UserID,
		Title:           title,
		Description:     input.Description,
		Color:           input.Color,
		StartAt:         start,
		DurationMinutes: uc.snapMinutes(input.DurationMinutes),
		Recurrence:      rule,
		Timezone:        tz,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateSchedule: %v", err)
		return schedule.CreateOutput{}, err
	}

	uc.mirror(ctx, &s)

	return schedule.CreateOutput{Schedule: s}, nil
}
