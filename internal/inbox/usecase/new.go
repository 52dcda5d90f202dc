package usecase

import (
	"timeblock/internal/inbox/repository"
	"timeblock/internal/schedule"
	"timeblock/pkg/log"
)

// implUseCase is the private implementation of inbox.UseCase.
type implUseCase struct {
	repo      repository.Repository
	schedules schedule.UseCase
	l         log.Logger
}

// New creates a new inbox UseCase implementation. Scheduling and
// unscheduling go through the schedule use case.
func New(repo repository.Repository, schedules schedule.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		schedules: schedules,
		l:         l,
	}
}
