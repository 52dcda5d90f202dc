package auth

import (
	"context"

	"timeblock/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login starts the Google authorization-code flow.
	Login(ctx context.Context) (LoginOutput, error)
	// Callback finishes the flow, upserts the user and issues a session token.
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
