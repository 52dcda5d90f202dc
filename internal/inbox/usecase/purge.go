package usecase

import (
	"context"
	"time"

	repo "timeblock/internal/inbox/repository"
)

// PurgeDone deletes done items last updated before the cutoff. Failed
// deletes are logged and skipped, the next run retries them.
func (uc *implUseCase) PurgeDone(ctx context.Context, before time.Time) (int, error) {
	done := true
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Done:          &done,
		UpdatedBefore: before,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeDone ListItems: %v", err)
		return 0, err
	}

	purged := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{UserID: item.UserID, ID: item.ID}); err != nil {
			uc.l.Warnf(ctx, "uc.PurgeDone DeleteItem %s/%s: %v", item.UserID, item.ID, err)
			continue
		}
		purged++
	}

	uc.l.Infof(ctx, "uc.PurgeDone: removed %d of %d done items", purged, len(items))
	return purged, nil
}
