package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"timeblock/internal/auth"
	repo "timeblock/internal/auth/repository"
	"timeblock/pkg/googleauth"
	"timeblock/pkg/scope"
)

// Login returns the Google consent URL and the state the caller must keep
// until the callback.
func (uc *implUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	state := uc.newState()
	return auth.LoginOutput{
		URL:   uc.provider.AuthCodeURL(state),
		State: state,
	}, nil
}

// Callback checks the state, exchanges the code for the Google profile,
// upserts the user and signs a session token.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if input.State == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	profile, err := uc.provider.Exchange(ctx, input.Code)
	switch {
	case errors.Is(err, googleauth.ErrUnverifiedEmail):
		return auth.CallbackOutput{}, auth.ErrUnverifiedUser
	case errors.Is(err, googleauth.ErrMissingCode):
		return auth.CallbackOutput{}, auth.ErrMissingCode
	case err != nil:
		uc.l.Errorf(ctx, "uc.Callback Exchange: %v", err)
		return auth.CallbackOutput{}, err
	}

	user, err := uc.repo.UpsertUser(ctx, repo.UpsertUserOptions{
		GoogleID:   profile.GoogleID,
		Email:      profile.Email,
		Name:       profile.Name,
		PictureURL: profile.PictureURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback UpsertUser: %v", err)
		return auth.CallbackOutput{}, err
	}

	token, err := uc.tokens.CreateToken(scope.Payload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback CreateToken: %v", err)
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Callback: user %s signed in", user.ID)
	return auth.CallbackOutput{User: user, Token: token}, nil
}
