package repository

import (
	"context"

	"timeblock/internal/model"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
