package usecase

import (
	"context"

	"timeblock/internal/schedule"
	repo "timeblock/internal/schedule/repository"
)

// ListUnsynced returns up to limit schedules, oldest first, that have no
// mirrored calendar event yet.
func (uc *implUseCase) ListUnsynced(ctx context.Context, limit int) ([]schedule.Schedule, error) {
	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		Unsynced: true,
		Limit:    limit,
		OrderBy:  "created_at ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUnsynced ListSchedules: %v", err)
		return nil, err
	}
	return schedules, nil
}

// MarkSynced records the calendar event mirroring schedule id.
func (uc *implUseCase) MarkSynced(ctx context.Context, id, eventID string) error {
	if err := uc.repo.SetCalendarEventID(ctx, id, eventID); err != nil {
		uc.l.Errorf(ctx, "uc.MarkSynced SetCalendarEventID: %v", err)
		return err
	}
	return nil
}
