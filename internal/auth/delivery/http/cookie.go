package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	stateCookie = "oauth_state"
	// stateMaxAge bounds how long the consent screen may stay open.
	stateMaxAge = 10 * 60
)

// setCookie writes an HttpOnly, SameSite=Lax cookie. A negative maxAge
// deletes it.
func (h *handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearCookie(c *gin.Context, name string) {
	h.setCookie(c, name, "", -1)
}
