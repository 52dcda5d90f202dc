package usecase

import (
	"context"

	"timeblock/internal/auth"
	repo "timeblock/internal/auth/repository"
	"timeblock/internal/model"
)

// Me returns the signed-in user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	if sc.UserID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}
