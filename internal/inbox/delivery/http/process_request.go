package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

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

// bindErr keeps field validation errors and hides decoder errors behind fallback.
func bindErr(err, fallback error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return err
	}
	return fallback
}

// processJSON binds the request body into req for the authenticated caller.
func (h *handler) processJSON(c *gin.Context, req any) (model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, err
	}
	if err := c.ShouldBindJSON(req); err != nil {
		return sc, bindErr(err, errWrongBody)
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processJSON(c, &req)
	return sc, req, err
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, bindErr(err, errWrongQuery)
	}
	return sc, req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.processJSON(c, &req)
	req.ID = c.Param("id")
	return sc, req, err
}

func (h *handler) processScheduleReq(c *gin.Context) (model.Scope, scheduleReq, error) {
	var req scheduleReq
	sc, err := h.processJSON(c, &req)
	req.ID = c.Param("id")
	return sc, req, err
}

func (h *handler) processUnscheduleReq(c *gin.Context) (model.Scope, unscheduleReq, error) {
	var req unscheduleReq
	sc, err := h.processJSON(c, &req)
	return sc, req, err
}
