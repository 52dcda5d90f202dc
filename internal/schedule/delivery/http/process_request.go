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

// processCreateReq binds and validates the create schedule request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, bindErr(err, errWrongBody)
	}
	return sc, req, nil
}

// processListReq binds and validates the list query parameters.
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

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, bindErr(err, errWrongBody)
	}
	req.ID = c.Param("id")
	return sc, req, nil
}

// processMoveReq binds and validates the move request body + URI param.
func (h *handler) processMoveReq(c *gin.Context) (model.Scope, moveReq, error) {
	var req moveReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, bindErr(err, errWrongBody)
	}
	req.ID = c.Param("id")
	return sc, req, nil
}

// processWeekReq binds the week view query parameters.
func (h *handler) processWeekReq(c *gin.Context) (model.Scope, weekReq, error) {
	var req weekReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, bindErr(err, errWrongQuery)
	}
	return sc, req, nil
}

// processExportReq binds the export window.
func (h *handler) processExportReq(c *gin.Context) (model.Scope, exportReq, error) {
	var req exportReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, bindErr(err, errWrongQuery)
	}
	return sc, req, nil
}
