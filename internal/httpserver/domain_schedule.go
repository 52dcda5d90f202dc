package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"timeblock/internal/middleware"
	"timeblock/internal/schedule"
	scheduleHTTP "timeblock/internal/schedule/delivery/http"
	scheduleRepo "timeblock/internal/schedule/repository/postgre"
	scheduleUC "timeblock/internal/schedule/usecase"
)

// setupScheduleDomain registers /api/v1/schedules and /api/v1/calendar.
// The use case is returned because the inbox schedules through it.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) schedule.UseCase {
	repo := scheduleRepo.New(srv.postgresDB, srv.l)

	ucCfg := scheduleUC.Config{
		CalendarID: srv.calendarID,
		Location:   srv.location,
	}
	if srv.calendar != nil {
		ucCfg.Calendar = srv.calendar
	}
	uc := scheduleUC.New(repo, srv.l, ucCfg)

	h := scheduleHTTP.New(srv.l, uc)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered (calendar mirror: %t)", srv.calendar != nil)
	return uc
}
