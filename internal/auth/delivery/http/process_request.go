package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/auth"
	"timeblock/internal/middleware"
	"timeblock/internal/model"
	pkgErrors "timeblock/pkg/errors"
)

// processScope returns the authenticated caller.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.ScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processCallbackReq reads the OAuth redirect and the stored state. The
// state cookie is single use and is cleared here.
func (h *handler) processCallbackReq(c *gin.Context) (auth.CallbackInput, error) {
	expected, _ := c.Cookie(stateCookie)
	h.clearCookie(c, stateCookie)

	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return auth.CallbackInput{}, auth.ErrMissingCode
	}
	if req.Error != "" {
		return auth.CallbackInput{}, auth.ErrAccessDenied
	}

	return req.toInput(expected), nil
}
