package icalendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

type transition struct {
	at       time.Time
	from, to int
	name     string
}

var weekdayCodes = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// addTimezone appends a VTIMEZONE for loc. Observances are derived from the
// offset changes of the year containing ref and repeat yearly on the same
// nth weekday of the month.
func addTimezone(cal *ics.Calendar, tzid string, loc *time.Location, ref time.Time) {
	tz := cal.AddTimezone(tzid)
	year := ref.In(loc).Year()

	trs := transitions(loc, year)
	if len(trs) == 0 {
		name, off := time.Date(year, 1, 1, 0, 0, 0, 0, loc).Zone()
		st := tz.AddStandard()
		setObservance(&st.ComponentBase, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), off, off, name, "")
		return
	}

	for _, tr := range trs {
		local := tr.at.In(time.FixedZone("", tr.from))
		rule := yearlyRule(local)
		if tr.to > tr.from {
			dl := &ics.Daylight{}
			tz.Components = append(tz.Components, dl)
			setObservance(&dl.ComponentBase, local, tr.from, tr.to, tr.name, rule)
			continue
		}
		st := tz.AddStandard()
		setObservance(&st.ComponentBase, local, tr.from, tr.to, tr.name, rule)
	}
}

func setObservance(cb *ics.ComponentBase, start time.Time, from, to int, name, rule string) {
	cb.SetProperty(ics.ComponentPropertyDtStart, start.Format(localLayout))
	cb.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetfrom), formatOffset(from))
	cb.SetProperty(ics.ComponentProperty(ics.PropertyTzoffsetto), formatOffset(to))
	if name != "" {
		cb.SetProperty(ics.ComponentProperty(ics.PropertyTzname), name)
	}
	if rule != "" {
		cb.SetProperty(ics.ComponentPropertyRrule, rule)
	}
}

// transitions lists the offset changes of loc during year, to the second.
func transitions(loc *time.Location, year int) []transition {
	var out []transition
	start := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)
	for t := start; t.Before(end); {
		next := t.Add(24 * time.Hour)
		_, a := t.Zone()
		_, b := next.Zone()
		if a != b {
			lo, hi := t, next
			for hi.Sub(lo) > time.Second {
				mid := lo.Add(hi.Sub(lo) / 2)
				if _, off := mid.Zone(); off == a {
					lo = mid
				} else {
					hi = mid
				}
			}
			name, _ := hi.Zone()
			out = append(out, transition{at: hi, from: a, to: b, name: name})
		}
		t = next
	}
	return out
}

// yearlyRule returns an RRULE matching the nth (or last) weekday of the
// month of local.
func yearlyRule(local time.Time) string {
	n := (local.Day()-1)/7 + 1
	daysInMonth := time.Date(local.Year(), local.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if local.Day()+7 > daysInMonth {
		n = -1
	}
	return fmt.Sprintf("FREQ=YEARLY;BYMONTH=%d;BYDAY=%d%s", int(local.Month()), n, weekdayCodes[local.Weekday()])
}

func formatOffset(sec int) string {
	sign := '+'
	if sec < 0 {
		sign = '-'
		sec = -sec
	}
	return fmt.Sprintf("%c%02d%02d", sign, sec/3600, (sec%3600)/60)
}
