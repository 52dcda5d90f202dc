package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/inbox"
	"timeblock/pkg/log"
)

// Handler is the public interface for the inbox HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Schedule(c *gin.Context)
	Unschedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inbox.UseCase
}

// New creates a new HTTP handler for the inbox domain.
func New(l log.Logger, uc inbox.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
