package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "timeblock"

// Manager issues and verifies session tokens.
type Manager interface {
	CreateToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
}

// New creates an HS256 token Manager. Tokens expire after ttl.
func New(secretKey string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	return &implManager{secretKey: []byte(secretKey), ttl: ttl}, nil
}

// CreateToken signs a token for payload.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	if payload.UserID == "" {
		return "", fmt.Errorf("scope: user id is required")
	}

	now := time.Now()
	claims := Claims{
		Email: payload.Email,
		Name:  payload.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature, issuer and expiry and returns the token payload.
func (m *implManager) Verify(token string) (Payload, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

type payloadCtxKey struct{}

// SetPayloadToContext stores the authenticated payload on ctx.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return payload, ok
}
