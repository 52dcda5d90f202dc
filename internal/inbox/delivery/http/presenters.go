package http

import (
	"time"

	"timeblock/internal/inbox"
	"timeblock/internal/schedule"
	"timeblock/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string `json:"title"            binding:"required,min=1,max=255"`
	Description     string `json:"description"      binding:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
}

func (r createReq) toInput() inbox.CreateInput {
	return inbox.CreateInput{
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
	}
}

// ---

type listReq struct {
	Done *bool `form:"done"`
}

func (r listReq) toInput() inbox.ListInput {
	return inbox.ListInput{Done: r.Done}
}

// ---

type updateReq struct {
	ID              string `json:"-"` // populated from URI param
	Title           string `json:"title"            binding:"omitempty,min=1,max=255"`
	Description     string `json:"description"      binding:"omitempty,max=2000"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	Done            *bool  `json:"done"`
}

func (r updateReq) toInput() inbox.UpdateInput {
	return inbox.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Done:            r.Done,
	}
}

// ---

type scheduleReq struct {
	ID       string     `json:"-"`
	StartAt  *time.Time `json:"start_at"`
	Date     string     `json:"date"     binding:"max=32"`
	Percent  *float64   `json:"percent"  binding:"omitempty,min=0,max=100"`
	Timezone string     `json:"timezone" binding:"max=64"`
	Color    string     `json:"color"    binding:"omitempty,hexcolor"`
}

func (r scheduleReq) toInput() inbox.ScheduleInput {
	in := inbox.ScheduleInput{
		ID:       r.ID,
		Date:     r.Date,
		Percent:  r.Percent,
		Timezone: r.Timezone,
		Color:    r.Color,
	}
	if r.StartAt != nil {
		in.StartAt = *r.StartAt
	}
	return in
}

// ---

type unscheduleReq struct {
	ScheduleID string `json:"schedule_id" binding:"required"`
}

func (r unscheduleReq) toInput() inbox.UnscheduleInput {
	return inbox.UnscheduleInput{ScheduleID: r.ScheduleID}
}

// --- Response DTOs ---

type itemResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DurationMinutes int               `json:"duration_minutes"`
	Done            bool              `json:"done"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newItemResp(i inbox.Item) itemResp {
	return itemResp{
		ID:              i.ID,
		Title:           i.Title,
		Description:     i.Description,
		DurationMinutes: i.DurationMinutes,
		Done:            i.Done,
		CreatedAt:       response.DateTime(i.CreatedAt),
		UpdatedAt:       response.DateTime(i.UpdatedAt),
	}
}

type itemItemResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemItemResp(i inbox.Item) itemItemResp {
	return itemItemResp{Item: newItemResp(i)}
}

type listResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(out inbox.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items}
}

type scheduledResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Color           string    `json:"color"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Timezone        string    `json:"timezone"`
}

type scheduleResp struct {
	Schedule scheduledResp `json:"schedule"`
}

func (h *handler) newScheduleResp(s schedule.Schedule) scheduleResp {
	return scheduleResp{Schedule: scheduledResp{
		ID:              s.ID,
		Title:           s.Title,
		Color:           s.Color,
		StartAt:         s.StartAt,
		EndAt:           s.StartAt.Add(s.Duration()),
		DurationMinutes: s.DurationMinutes,
		Timezone:        s.Timezone,
	}}
}
