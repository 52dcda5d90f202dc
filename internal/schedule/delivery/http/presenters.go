package http

import (
	"time"

	"timeblock/internal/schedule"
	"timeblock/pkg/response"
	"timeblock/pkg/timegrid"
)

const (
	defaultExportPast   = 30 * 24 * time.Hour
	defaultExportFuture = 365 * 24 * time.Hour
)

// --- Request DTOs ---

type createReq struct {
	Title           string    `json:"title"            binding:"required,min=1,max=255"`
	Description     string    `json:"description"      binding:"max=2000"`
	Color           string    `json:"color"            binding:"omitempty,hexcolor"`
	StartAt         time.Time `json:"start_at"`
	Date            string    `json:"date"             binding:"max=32"`
	Percent         *float64  `json:"percent"          binding:"omitempty,min=0,max=100"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1,max=1440"`
	Recurrence      string    `json:"recurrence"       binding:"max=500"`
	Timezone        string    `json:"timezone"         binding:"max=64"`
}

func (r createReq) toInput() schedule.CreateInput {
	return schedule.CreateInput{
		Title:           r.Title,
		Description:     r.Description,
		Color:           r.Color,
		StartAt:         r.StartAt,
		Date:            r.Date,
		Percent:         r.Percent,
		DurationMinutes: r.DurationMinutes,
		Recurrence:      r.Recurrence,
		Timezone:        r.Timezone,
	}
}

// ---

type listReq struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to"   binding:"required"`
}

func (r listReq) toInput() schedule.ListInput {
	return schedule.ListInput{From: r.From, To: r.To}
}

// ---

type updateReq struct {
	ID              string     `json:"-"` // populated from URI param
	Title           string     `json:"title"            binding:"omitempty,min=1,max=255"`
	Description     string     `json:"description"      binding:"omitempty,max=2000"`
	Color           string     `json:"color"            binding:"omitempty,hexcolor"`
	StartAt         *time.Time `json:"start_at"`
	DurationMinutes int        `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	Recurrence      *string    `json:"recurrence"       binding:"omitempty,max=500"`
	Timezone        string     `json:"timezone"         binding:"omitempty,max=64"`
}

func (r updateReq) toInput() schedule.UpdateInput {
	in := schedule.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Color:           r.Color,
		DurationMinutes: r.DurationMinutes,
		Recurrence:      r.Recurrence,
		Timezone:        r.Timezone,
	}
	if r.StartAt != nil {
		in.StartAt = *r.StartAt
	}
	return in
}

// ---

type moveReq struct {
	ID       string     `json:"-"`
	StartAt  *time.Time `json:"start_at"`
	Date     string     `json:"date"     binding:"max=32"`
	Percent  *float64   `json:"percent"  binding:"omitempty,min=0,max=100"`
	Timezone string     `json:"timezone" binding:"max=64"`
}

func (r moveReq) toInput() schedule.MoveInput {
	in := schedule.MoveInput{
		ID:       r.ID,
		Date:     r.Date,
		Percent:  r.Percent,
		Timezone: r.Timezone,
	}
	if r.StartAt != nil {
		in.StartAt = *r.StartAt
	}
	return in
}

// ---

type weekReq struct {
	Date     string `form:"date" binding:"max=32"`
	Timezone string `form:"tz"   binding:"max=64"`
}

func (r weekReq) toInput() schedule.WeekInput {
	return schedule.WeekInput{Date: r.Date, Timezone: r.Timezone}
}

// ---

type exportReq struct {
	From time.Time `form:"from"`
	To   time.Time `form:"to"`
}

func (r exportReq) toInput(now time.Time) schedule.ExportInput {
	in := schedule.ExportInput{From: r.From, To: r.To}
	if in.From.IsZero() {
		in.From = now.Add(-defaultExportPast)
	}
	if in.To.IsZero() {
		in.To = now.Add(defaultExportFuture)
	}
	return in
}

// ---

type gridReq struct {
	Percent *float64 `form:"percent" binding:"omitempty,min=0,max=100"`
}

// --- Response DTOs ---

type scheduleResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Color           string    `json:"color"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Recurrence      string    `json:"recurrence"`
	Timezone        string    `json:"timezone"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newScheduleResp(s schedule.Schedule) scheduleResp {
	return scheduleResp{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Color:           s.Color,
		StartAt:         s.StartAt,
		EndAt:           s.StartAt.Add(s.Duration()),
		DurationMinutes: s.DurationMinutes,
		Recurrence:      s.Recurrence,
		Timezone:        s.Timezone,
		CalendarEventID: s.CalendarEventID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type scheduleItemResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newScheduleItemResp(s schedule.Schedule) scheduleItemResp {
	return scheduleItemResp{Schedule: newScheduleResp(s)}
}

type occurrenceResp struct {
	ScheduleID string    `json:"schedule_id"`
	Title      string    `json:"title"`
	Color      string    `json:"color"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Recurring  bool      `json:"recurring"`
}

func newOccurrenceResp(o schedule.Occurrence) occurrenceResp {
	return occurrenceResp{
		ScheduleID: o.Schedule.ID,
		Title:      o.Schedule.Title,
		Color:      o.Schedule.Color,
		StartAt:    o.StartAt,
		EndAt:      o.EndAt,
		Recurring:  o.Schedule.Recurrence != "",
	}
}

type listResp struct {
	Occurrences []occurrenceResp `json:"occurrences"`
	Truncated   bool             `json:"truncated"`
}

func (h *handler) newListResp(out schedule.ListOutput) listResp {
	items := make([]occurrenceResp, len(out.Occurrences))
	for i, o := range out.Occurrences {
		items[i] = newOccurrenceResp(o)
	}
	return listResp{Occurrences: items, Truncated: out.Truncated}
}

type hourGuideResp struct {
	Hour       int     `json:"hour"`
	Label      string  `json:"label"`
	TopPercent float64 `json:"top_percent"`
}

func newHourGuidesResp(guides []timegrid.HourGuide) []hourGuideResp {
	out := make([]hourGuideResp, len(guides))
	for i, g := range guides {
		out[i] = hourGuideResp{Hour: g.Hour, Label: g.Label, TopPercent: g.TopPercent}
	}
	return out
}

type cellResp struct {
	occurrenceResp
	TopPercent    float64 `json:"top_percent"`
	HeightPercent float64 `json:"height_percent"`
}

type dayResp struct {
	Date  response.Date `json:"date"`
	Cells []cellResp    `json:"cells"`
}

type weekResp struct {
	Start      response.Date   `json:"start"`
	End        response.Date   `json:"end"`
	Timezone   string          `json:"timezone"`
	HourGuides []hourGuideResp `json:"hour_guides"`
	Days       []dayResp       `json:"days"`
	Truncated  bool            `json:"truncated"`
}

func (h *handler) newWeekResp(out schedule.WeekOutput) weekResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		cells := make([]cellResp, len(d.Cells))
		for j, c := range d.Cells {
			cells[j] = cellResp{
				occurrenceResp: newOccurrenceResp(c.Occurrence),
				TopPercent:     c.TopPercent,
				HeightPercent:  c.HeightPercent,
			}
		}
		days[i] = dayResp{Date: response.Date(d.Date), Cells: cells}
	}
	return weekResp{
		Start:      response.Date(out.Start),
		End:        response.Date(out.End.AddDate(0, 0, -1)),
		Timezone:   out.Timezone,
		HourGuides: newHourGuidesResp(out.HourGuides),
		Days:       days,
		Truncated:  out.Truncated,
	}
}

type snapResp struct {
	Percent float64 `json:"percent"`
	Minutes int     `json:"minutes"`
	Time    string  `json:"time"`
}

type gridResp struct {
	SlotMinutes int             `json:"slot_minutes"`
	SlotsPerDay int             `json:"slots_per_day"`
	HourGuides  []hourGuideResp `json:"hour_guides"`
	Snap        *snapResp       `json:"snap,omitempty"`
}

func (h *handler) newGridResp(req gridReq) gridResp {
	resp := gridResp{
		SlotMinutes: timegrid.SnapMinutes,
		SlotsPerDay: timegrid.SlotsPerDay,
		HourGuides:  newHourGuidesResp(timegrid.HourGuides()),
	}
	if req.Percent != nil {
		resp.Snap = &snapResp{
			Percent: timegrid.SnapPercent(*req.Percent),
			Minutes: timegrid.PercentToMinutes(*req.Percent),
			Time:    timegrid.PercentToTime(*req.Percent),
		}
	}
	return resp
}
