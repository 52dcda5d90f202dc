package usecase

import (
	"context"

	"timeblock/internal/maintenance"
)

func (uc *implUseCase) PurgeInbox(ctx context.Context) (maintenance.PurgeOutput, error) {
	removed, err := uc.inbox.PurgeDone(ctx, uc.now().Add(-uc.retention))
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeInbox inbox.PurgeDone: %v", err)
		return maintenance.PurgeOutput{}, err
	}
	return maintenance.PurgeOutput{Removed: removed}, nil
}
