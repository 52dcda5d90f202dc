package usecase

import (
	"context"
	"strings"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
	"timeblock/internal/model"
)

// Create adds an item to the caller's inbox. Items without an estimate get
// inbox.DefaultDurationMinutes.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input inbox.CreateInput) (inbox.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return inbox.CreateOutput{}, inbox.ErrTitleRequired
	}

	minutes, err := uc.duration(input.DurationMinutes)
	if err != nil {
		return inbox.CreateOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		UserID:          sc.UserID,
		Title:           title,
		Description:     input.Description,
		DurationMinutes: minutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inbox.CreateOutput{}, err
	}

	return inbox.CreateOutput{Item: item}, nil
}
