package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/middleware"
)

// RegisterRoutes maps the inbox endpoints onto rg. Every route requires a
// session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/inbox", mw.Auth())
	{
		g.POST("/items", h.Create)
		g.GET("/items", h.List)
		g.GET("/items/:id", h.Detail)
		g.PUT("/items/:id", h.Update)
		g.DELETE("/items/:id", h.Delete)
		g.POST("/items/:id/schedule", h.Schedule)
		g.POST("/unschedule", h.Unschedule)
	}
}
