package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/config"
	"timeblock/internal/auth"
	"timeblock/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         auth.UseCase
	cookie     config.CookieConfig
	successURL string
}

// New creates a new HTTP handler for sign-in. After a successful callback
// the browser is sent to successURL, or gets the user as JSON when it is
// empty.
func New(l log.Logger, uc auth.UseCase, cookie config.CookieConfig, successURL string) Handler {
	return &handler{
		l:          l,
		uc:         uc,
		cookie:     cookie,
		successURL: successURL,
	}
}
