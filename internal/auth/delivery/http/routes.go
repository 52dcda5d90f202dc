package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/middleware"
)

// RegisterRoutes maps the sign-in endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/auth")
	{
		g.GET("/google/login", h.Login)
		g.GET("/google/callback", h.Callback)
		g.POST("/logout", h.Logout)
		g.GET("/me", mw.Auth(), h.Me)
	}
}
