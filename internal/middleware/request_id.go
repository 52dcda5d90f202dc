package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timeblock/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates X-Request-ID (or generates one) into the response
// header and the request context, where the logger picks it up.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
