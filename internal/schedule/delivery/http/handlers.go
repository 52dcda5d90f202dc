package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timeblock/pkg/response"
)

// Create godoc
// @Summary     Create a schedule
// @Description Places a new block on the calendar. Start and duration are snapped to the 15-minute grid.
// @Tags        Schedules
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Schedule data"
// @Success     201  {object} scheduleItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [POST]
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

	response.Created(c, h.newScheduleItemResp(output.Schedule))
}

// List godoc
// @Summary     List occurrences
// @Description Returns every occurrence overlapping [from, to), recurring schedules expanded, sorted by start.
// @Tags        Schedules
// @Produce     json
// @Param       from query string true "Window start (RFC3339)"
// @Param       to   query string true "Window end (RFC3339)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [GET]
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
// @Summary     Get schedule detail
// @Tags        Schedules
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     200 {object} scheduleItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id} [GET]
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

	response.OK(c, h.newScheduleItemResp(output.Schedule))
}

// Update godoc
// @Summary     Update a schedule
// @Description Partial update. Omitted fields keep their value, "recurrence": "" removes the rule.
// @Tags        Schedules
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Schedule ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} scheduleItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id} [PUT]
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

	response.OK(c, h.newScheduleItemResp(output.Schedule))
}

// Move godoc
// @Summary     Move a schedule on the grid
// @Description Drag-and-drop target: either start_at, or date plus percent of the day column.
// @Tags        Schedules
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Schedule ID"
// @Param       body body moveReq true "Drop target"
// @Success     200 {object} scheduleItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id}/move [PATCH]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Move(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Move: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleItemResp(output.Schedule))
}

// Delete godoc
// @Summary     Delete a schedule
// @Tags        Schedules
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id} [DELETE]
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

// Week godoc
// @Summary     Week view
// @Description Seven day columns (Monday..Sunday) with positioned cells and hour guides.
// @Tags        Schedules
// @Produce     json
// @Param       date query string false "Anchor date: YYYY-MM-DD, today, tomorrow, next monday, in 2 weeks"
// @Param       tz   query string false "IANA timezone of the grid"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Week(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Week: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// Export godoc
// @Summary     Export as iCalendar
// @Tags        Schedules
// @Produce     text/calendar
// @Param       from query string false "Window start (RFC3339), default 30 days ago"
// @Param       to   query string false "Window end (RFC3339), default one year ahead"
// @Success     200 {string} string "ICS feed"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, sc, req.toInput(time.Now()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Body)
}

// Grid godoc
// @Summary     Grid geometry
// @Description Hour guides of a day column and, when percent is given, the snapped position and wall-clock label.
// @Tags        Schedules
// @Produce     json
// @Param       percent query number false "Position inside the day column (0-100)"
// @Success     200 {object} gridResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/grid [GET]
func (h *handler) Grid(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, bindErr(err, errWrongQuery))
		return
	}

	response.OK(c, h.newGridResp(req))
}
