package scope

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingKey   = errors.New("scope: secret key is required")
)

// Payload is the identity carried by a session token.
type Payload struct {
	UserID string `json:"-"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Claims are the JWT claims of a session token. The user id travels in "sub".
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
