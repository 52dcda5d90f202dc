package model

// Scope identifies the caller a use case acts on behalf of.
type Scope struct {
	UserID string
	Email  string
	Name   string
}
