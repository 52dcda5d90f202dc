package usecase

import (
	"context"
	"sort"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
)

// List returns the caller's inbox, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input inbox.ListInput) (inbox.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		UserID: sc.UserID,
		Done:   input.Done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inbox.ListOutput{}, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})

	return inbox.ListOutput{Items: items}, nil
}
