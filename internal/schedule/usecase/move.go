package usecase

import (
	"context"
	"time"

	"timeblock/internal/model"
	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
	"timeblock/pkg/datemath"
	"timeblock/pkg/timegrid"
)

// Move handles a drop on the grid. The new start is either StartAt or the
// snapped position Percent inside the column of Date, in the viewer's timezone.
func (uc *implUseCase) Move(ctx context.Context, sc model.Scope, input schedule.MoveInput) (schedule.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return schedule.UpdateOutput{}, err
	}

	loc, _, err := uc.resolveLocation(input.Timezone)
	if err != nil {
		return schedule.UpdateOutput{}, err
	}

	start, err := uc.dropTarget(input.StartAt, input.Date, input.Percent, loc)
	if err != nil {
		return schedule.UpdateOutput{}, err
	}

	return uc.save(ctx, repo.UpdateScheduleOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		Title:           existing.Title,
		Description:     existing.Description,
		Color:           existing.Color,
		StartAt:         start,
		DurationMinutes: existing.DurationMinutes,
		Recurrence:      existing.Recurrence,
		Timezone:        existing.Timezone,
	})
}

// dropTarget resolves a grid position. It returns ErrInvalidMove when neither
// startAt nor date with percent is given.
func (uc *implUseCase) dropTarget(startAt time.Time, date string, percent *float64, loc *time.Location) (time.Time, error) {
	if !startAt.IsZero() {
		return timegrid.SnapTime(startAt.In(loc)), nil
	}
	if date == "" || percent == nil {
		return time.Time{}, schedule.ErrInvalidMove
	}

	day, err := datemath.NewParserInLocation(loc).Parse(date, uc.now())
	if err != nil {
		return time.Time{}, schedule.ErrInvalidDate
	}
	return timegrid.AtPercent(day, *percent), nil
}
