package repository

// UpsertUserOptions holds the Google profile to store. Users are matched on
// GoogleID, the remaining fields are refreshed on every sign-in.
type UpsertUserOptions struct {
	GoogleID   string
	Email      string
	Name       string
	PictureURL string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID       string
	GoogleID string
}
