package auth

import "errors"

var (
	ErrAccessDenied   = errors.New("sign-in was cancelled")
	ErrInvalidState   = errors.New("oauth state mismatch")
	ErrMissingCode    = errors.New("authorization code is required")
	ErrUnverifiedUser = errors.New("google account email is not verified")
	ErrUserNotFound   = errors.New("user not found")
)
