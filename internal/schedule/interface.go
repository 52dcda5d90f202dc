package schedule

import (
	"context"

	"timeblock/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Calendar grid
	Move(ctx context.Context, sc model.Scope, input MoveInput) (UpdateOutput, error)
	Week(ctx context.Context, sc model.Scope, input WeekInput) (WeekOutput, error)
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)

	// Calendar mirror, not scoped to a user
	ListUnsynced(ctx context.Context, limit int) ([]Schedule, error)
	MarkSynced(ctx context.Context, id, eventID string) error
}
