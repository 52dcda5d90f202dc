package inbox

import (
	"context"
	"time"

	"timeblock/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Moving between the inbox and the grid
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
	Unschedule(ctx context.Context, sc model.Scope, input UnscheduleInput) (UnscheduleOutput, error)

	// PurgeDone removes done items last touched before the given time, across
	// all users. It returns the number of removed items.
	PurgeDone(ctx context.Context, before time.Time) (int, error)
}
