package http

import (
	"github.com/gin-gonic/gin"

	"timeblock/pkg/response"
)

// Create godoc
// @Summary     Add an inbox item
// @Description Items without duration_minutes get a 30 minute estimate.
// @Tags        Inbox
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} itemItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemItemResp(output.Item))
}

// List godoc
// @Summary     List inbox items
// @Description Newest first. Pass done=true or done=false to filter.
// @Tags        Inbox
// @Produce     json
// @Param       done query bool false "Filter by done flag"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get an inbox item
// @Tags        Inbox
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemItemResp(output.Item))
}

// Update godoc
// @Summary     Update an inbox item
// @Description Partial update. Omitted fields keep their value.
// @Tags        Inbox
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an inbox item
// @Tags        Inbox
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Schedule godoc
// @Summary     Schedule an inbox item
// @Description Drops the item on the grid, at start_at or at percent of the day column of date, and removes it from the inbox.
// @Tags        Inbox
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Item ID"
// @Param       body body scheduleReq true "Drop position"
// @Success     201 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/items/{id}/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newScheduleResp(output.Schedule))
}

// Unschedule godoc
// @Summary     Move a schedule back to the inbox
// @Tags        Inbox
// @Accept      json
// @Produce     json
// @Param       body body unscheduleReq true "Schedule to unschedule"
// @Success     201 {object} itemItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inbox/unschedule [POST]
func (h *handler) Unschedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUnscheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Unschedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Unschedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemItemResp(output.Item))
}
