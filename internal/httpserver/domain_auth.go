package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "timeblock/internal/auth/delivery/http"
	authRepo "timeblock/internal/auth/repository/postgre"
	authUC "timeblock/internal/auth/usecase"
	"timeblock/internal/middleware"
)

// setupAuthDomain registers /api/v1/auth.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(repo, srv.oauth, srv.jwtManager, srv.l)
	h := authHTTP.New(srv.l, uc, srv.cookie, srv.successRedirectURL)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
