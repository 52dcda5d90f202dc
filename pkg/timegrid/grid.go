// Package timegrid converts between wall-clock times and positions on a
// day column that is divided into 15-minute slots.
package timegrid

import (
	"fmt"
	"math"
	"time"
)

// SnapPercent snaps a percent-of-day position to the nearest 15-minute slot.
// Input is clamped to [0, 100].
func SnapPercent(p float64) float64 {
	return float64(slotOf(p)) * 100 / SlotsPerDay
}

// PercentToMinutes returns the snapped minutes since midnight for p.
func PercentToMinutes(p float64) int {
	return slotOf(p) * SnapMinutes
}

// PercentToTime renders the snapped position p as "HH:MM". The bottom edge
// of the column renders as "24:00".
func PercentToTime(p float64) string {
	m := PercentToMinutes(p)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinutesToPercent converts minutes since midnight to percent of the day.
func MinutesToPercent(minutes int) float64 {
	return float64(minutes) * 100 / MinutesPerDay
}

// TimeToPercent returns the wall-clock position of t in its own location.
func TimeToPercent(t time.Time) float64 {
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return float64(secs) * 100 / (MinutesPerDay * 60)
}

// AtPercent returns the snapped wall-clock time at position p on the day of
// day, in day's location.
func AtPercent(day time.Time, p float64) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, PercentToMinutes(p), 0, 0, day.Location())
}

// SnapTime rounds t to the nearest 15-minute boundary of its wall clock.
// Rounding is done on the local clock so zones with non-hour offsets snap
// to :00/:15/:30/:45 as displayed.
func SnapTime(t time.Time) time.Time {
	y, m, d := t.Date()
	minutes := float64(t.Hour()*60+t.Minute()) +
		float64(t.Second())/60 +
		float64(t.Nanosecond())/float64(time.Minute)
	slot := int(math.Round(minutes / SnapMinutes))
	return time.Date(y, m, d, 0, slot*SnapMinutes, 0, 0, t.Location())
}

// SnapDuration rounds d to the nearest 15 minutes, never below one slot.
func SnapDuration(d time.Duration) time.Duration {
	slots := math.Round(d.Minutes() / SnapMinutes)
	if slots < 1 {
		slots = 1
	}
	return time.Duration(slots) * SnapMinutes * time.Minute
}

// HourGuides returns the 24 hour lines of a day column.
func HourGuides() []HourGuide {
	guides := make([]HourGuide, 0, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		guides = append(guides, HourGuide{
			Hour:       h,
			Label:      fmt.Sprintf("%02d:00", h),
			TopPercent: MinutesToPercent(h * 60),
		})
	}
	return guides
}

// Position places an entry starting at start and lasting d inside the day
// column of day (in day's location). Entries crossing midnight are clipped
// to the column. The second result is false when the entry does not touch
// the day at all. Durations shorter than one slot are drawn as one slot.
func Position(start time.Time, d time.Duration, day time.Time) (Cell, bool) {
	if d < SnapMinutes*time.Minute {
		d = SnapMinutes * time.Minute
	}

	loc := day.Location()
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	end := start.Add(d)

	if !start.Before(dayEnd) || !end.After(dayStart) {
		return Cell{}, false
	}

	top := 0.0
	if start.After(dayStart) {
		top = TimeToPercent(start.In(loc))
	}

	bottom := 100.0
	if end.Before(dayEnd) {
		bottom = TimeToPercent(end.In(loc))
	}

	if bottom < top {
		bottom = top
	}

	return Cell{TopPercent: top, HeightPercent: bottom - top}, true
}

func slotOf(p float64) int {
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return int(math.Round(p / 100 * SlotsPerDay))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
