// Package icalendar renders schedule entries as an RFC 5545 calendar feed.
package icalendar

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	productService = "timeblock"
	localLayout    = "20060102T150405"
)

// Event is one VEVENT of the exported calendar.
type Event struct {
	UID         string
	Summary     string
	Description string
	Color       string
	Start       time.Time
	End         time.Time
	Created     time.Time
	Modified    time.Time
	// Recurrence is an RRULE value without the "RRULE:" prefix.
	Recurrence string
	// Timezone anchors recurring events to a wall clock. Ignored when empty or
	// when the event does not recur.
	Timezone string
}

// Encode writes a VCALENDAR named name containing events to w.
func Encode(w io.Writer, name string, events []Event, now time.Time) error {
	cal := ics.NewCalendarFor(productService)
	cal.SetMethod(ics.MethodPublish)
	if name != "" {
		cal.SetName(name)
		cal.SetXWRCalName(name)
	}

	// Every TZID referenced by an event needs a VTIMEZONE in the same feed.
	seen := make(map[string]bool)
	for _, e := range events {
		loc := zone(e)
		if e.Recurrence == "" || loc == nil || seen[e.Timezone] {
			continue
		}
		seen[e.Timezone] = true
		addTimezone(cal, e.Timezone, loc, earliestStart(events, e.Timezone))
	}

	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(now)
		if !e.Created.IsZero() {
			ev.SetCreatedTime(e.Created)
		}
		if !e.Modified.IsZero() {
			ev.SetModifiedAt(e.Modified)
		}
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Color != "" {
			ev.SetColor(e.Color)
		}

		loc := zone(e)
		if e.Recurrence != "" && loc != nil {
			ev.SetProperty(ics.ComponentPropertyDtStart, e.Start.In(loc).Format(localLayout), ics.WithTZID(e.Timezone))
			ev.SetProperty(ics.ComponentPropertyDtEnd, e.End.In(loc).Format(localLayout), ics.WithTZID(e.Timezone))
		} else {
			ev.SetStartAt(e.Start)
			ev.SetEndAt(e.End)
		}
		if e.Recurrence != "" {
			ev.AddRrule(e.Recurrence)
		}
	}

	return cal.SerializeTo(w)
}

func earliestStart(events []Event, tzid string) time.Time {
	var first time.Time
	for _, e := range events {
		if e.Timezone == tzid && e.Recurrence != "" && (first.IsZero() || e.Start.Before(first)) {
			first = e.Start
		}
	}
	return first
}

func zone(e Event) *time.Location {
	if e.Timezone == "" || e.Timezone == "UTC" {
		return nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil
	}
	return loc
}
