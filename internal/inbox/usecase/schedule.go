package usecase

import (
	"context"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
	"timeblock/internal/schedule"
)

// Schedule turns an inbox item into a schedule at the drop position and
// removes the item. The schedule is rolled back if the item cannot be
// removed.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input inbox.ScheduleInput) (inbox.ScheduleOutput, error) {
	item, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return inbox.ScheduleOutput{}, err
	}

	minutes := item.DurationMinutes
	if minutes <= 0 {
		minutes = inbox.DefaultDurationMinutes
	}

	out, err := uc.schedules.Create(ctx, sc, schedule.CreateInput{
		Title:           item.Title,
		Description:     item.Description,
		Color:           input.Color,
		StartAt:         input.StartAt,
		Date:            input.Date,
		Percent:         input.Percent,
		DurationMinutes: minutes,
		Timezone:        input.Timezone,
	})
	if err != nil {
		return inbox.ScheduleOutput{}, err
	}

	if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{UserID: sc.UserID, ID: item.ID}); err != nil {
		uc.l.Errorf(ctx, "uc.Schedule DeleteItem: %v", err)
		if rbErr := uc.schedules.Delete(ctx, sc, out.Schedule.ID); rbErr != nil {
			uc.l.Errorf(ctx, "uc.Schedule rollback schedule %s: %v", out.Schedule.ID, rbErr)
		}
		return inbox.ScheduleOutput{}, err
	}

	return inbox.ScheduleOutput{Schedule: out.Schedule}, nil
}

// Unschedule moves a schedule back to the inbox. The new item is removed
// again if the schedule cannot be deleted.
func (uc *implUseCase) Unschedule(ctx context.Context, sc model.Scope, input inbox.UnscheduleInput) (inbox.UnscheduleOutput, error) {
	detail, err := uc.schedules.Detail(ctx, sc, input.ScheduleID)
	if err != nil {
		return inbox.UnscheduleOutput{}, err
	}
	s := detail.Schedule

	minutes, err := uc.duration(s.DurationMinutes)
	if err != nil {
		return inbox.UnscheduleOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		UserID:          sc.UserID,
		Title:           s.Title,
		Description:     s.Description,
		DurationMinutes: minutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Unschedule CreateItem: %v", err)
		return inbox.UnscheduleOutput{}, err
	}

	if err := uc.schedules.Delete(ctx, sc, s.ID); err != nil {
		if rbErr := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{UserID: sc.UserID, ID: item.ID}); rbErr != nil {
			uc.l.Errorf(ctx, "uc.Unschedule rollback item %s: %v", item.ID, rbErr)
		}
		return inbox.UnscheduleOutput{}, err
	}

	return inbox.UnscheduleOutput{Item: item}, nil
}
