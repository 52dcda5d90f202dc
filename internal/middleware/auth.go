package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"timeblock/internal/model"
	"timeblock/pkg/response"
	"timeblock/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth requires a valid session token, read from the session cookie or,
// failing that, from an "Authorization: Bearer" header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.tokenFromRequest(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))
		c.Next()
	}
}

func (m Middleware) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return ""
}

// ScopeFromContext returns the caller set by Auth.
func ScopeFromContext(ctx context.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok || payload.UserID == "" {
		return model.Scope{}, false
	}
	return model.Scope{
		UserID: payload.UserID,
		Email:  payload.Email,
		Name:   payload.Name,
	}, true
}
