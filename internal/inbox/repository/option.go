package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	UserID          string
	Title           string
	Description     string
	DurationMinutes int
}

// GetOneItemOptions identifies a single Item. Both fields are required, they
// form the table key.
type GetOneItemOptions struct {
	UserID string
	ID     string
}

// ListItemsOptions holds filter parameters for listing Items.
//
// An empty UserID lists items of every user. UpdatedBefore, when set, keeps
// items last updated before that instant.
type ListItemsOptions struct {
	UserID        string
	Done          *bool
	UpdatedBefore time.Time
}

// UpdateItemOptions holds the full new state of an existing Item.
type UpdateItemOptions struct {
	UserID          string
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Done            bool
}

// DeleteItemOptions identifies the Item to delete.
type DeleteItemOptions struct {
	UserID string
	ID     string
}
