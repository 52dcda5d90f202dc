package http

import (
	"timeblock/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Schedule routes require Auth, the grid geometry is public.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/grid", h.Grid)

	schedules := rg.Group("/schedules", mw.Auth())
	{
		schedules.POST("", h.Create)
		schedules.GET("", h.List)
		schedules.GET("/week", h.Week)
		schedules.GET("/export.ics", h.Export)
		schedules.GET("/:id", h.Detail)
		schedules.PUT("/:id", h.Update)
		schedules.PATCH("/:id/move", h.Move)
		schedules.DELETE("/:id", h.Delete)
	}
}
