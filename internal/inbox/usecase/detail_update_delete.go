package usecase

import (
	"context"
	"strings"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (inbox.DetailOutput, error) {
	item, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return inbox.DetailOutput{}, err
	}
	return inbox.DetailOutput{Item: item}, nil
}

// Update applies a partial update. Marking an item done keeps it in the
// inbox until PurgeDone removes it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input inbox.UpdateInput) (inbox.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return inbox.UpdateOutput{}, err
	}

	minutes := existing.DurationMinutes
	if input.DurationMinutes != 0 {
		if minutes, err = uc.duration(input.DurationMinutes); err != nil {
			return inbox.UpdateOutput{}, err
		}
	}

	done := existing.Done
	if input.Done != nil {
		done = *input.Done
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		UserID:          sc.UserID,
		ID:              existing.ID,
		Title:           uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:     uc.coalesce(input.Description, existing.Description),
		DurationMinutes: minutes,
		Done:            done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inbox.UpdateOutput{}, err
	}
	if item.ID == "" {
		return inbox.UpdateOutput{}, inbox.ErrItemNotFound
	}

	return inbox.UpdateOutput{Item: item}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{UserID: sc.UserID, ID: existing.ID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
