package googleauth

import "errors"

var (
	ErrMissingCode     = errors.New("authorization code is required")
	ErrUnverifiedEmail = errors.New("google account email is not verified")
)

// Config holds the OAuth client registration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Profile is the subset of the Google userinfo the service relies on.
type Profile struct {
	GoogleID   string
	Email      string
	Name       string
	PictureURL string
}
