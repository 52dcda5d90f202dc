package usecase

import (
	"github.com/google/uuid"

	"timeblock/internal/auth/repository"
	"timeblock/pkg/googleauth"
	"timeblock/pkg/log"
	"timeblock/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo     repository.Repository
	provider googleauth.Provider
	tokens   scope.Manager
	l        log.Logger
	newState func() string
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, provider googleauth.Provider, tokens scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		provider: provider,
		tokens:   tokens,
		l:        l,
		newState: uuid.NewString,
	}
}
