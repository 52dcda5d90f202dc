package repository

import (
	"context"

	"timeblock/internal/inbox"
)

// Repository is the composed interface for the inbox data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the inbox Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inbox.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (inbox.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]inbox.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (inbox.Item, error)
	DeleteItem(ctx context.Context, opt DeleteItemOptions) error
}
