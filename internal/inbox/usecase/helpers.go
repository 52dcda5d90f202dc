package usecase

import (
	"context"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
	"timeblock/pkg/timegrid"
)

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// duration applies the default estimate and checks the range of a day.
func (uc *implUseCase) duration(minutes int) (int, error) {
	if minutes == 0 {
		return inbox.DefaultDurationMinutes, nil
	}
	if minutes < 0 || minutes > timegrid.MinutesPerDay {
		return 0, inbox.ErrInvalidDuration
	}
	return minutes, nil
}

// getOwned loads an item of the caller. The table key includes the user, so
// another user's id is simply not found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (inbox.Item, error) {
	if id == "" {
		return inbox.Item{}, inbox.ErrItemNotFound
	}
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneItem: %v", err)
		return inbox.Item{}, err
	}
	if item.ID == "" {
		return inbox.Item{}, inbox.ErrItemNotFound
	}
	return item, nil
}
