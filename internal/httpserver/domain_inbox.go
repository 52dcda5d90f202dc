package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inboxHTTP "timeblock/internal/inbox/delivery/http"
	inboxRepo "timeblock/internal/inbox/repository/dynamo"
	inboxUC "timeblock/internal/inbox/usecase"
	"timeblock/internal/middleware"
	"timeblock/internal/schedule"
)

// setupInboxDomain registers /api/v1/inbox.
func (srv HTTPServer) setupInboxDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, schedules schedule.UseCase) {
	repo := inboxRepo.New(srv.dynamoDB, srv.dynamoTable, srv.l)
	uc := inboxUC.New(repo, schedules, srv.l)
	h := inboxHTTP.New(srv.l, uc)
	inboxHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Inbox domain registered (table: %s)", srv.dynamoTable)
}
