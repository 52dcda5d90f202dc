package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeblock/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Stores a one-time state cookie and redirects to the Google consent screen.
// @Tags        Auth
// @Success     302
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/google/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Login(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setCookie(c, stateCookie, output.State, stateMaxAge)
	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Google sign-in callback
// @Description Verifies the state, signs the user in and sets the session cookie.
// @Tags        Auth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued by login"
// @Success     302
// @Success     200 {object} meResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Callback(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setCookie(c, h.cookie.Name, output.Token, h.cookie.MaxAge)

	if h.successURL != "" {
		c.Redirect(http.StatusFound, h.successURL)
		return
	}
	response.OK(c, h.newMeResp(output.User))
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.clearCookie(c, h.cookie.Name)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output.User))
}
