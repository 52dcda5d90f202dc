package model

import "time"

// User is an account created on first Google sign-in.
type User struct {
	ID         string
	GoogleID   string
	Email      string
	Name       string
	PictureURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
