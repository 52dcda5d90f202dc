package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	isoDate = "2006-01-02"
	// maxInAmount bounds "in N units" to about three centuries of days.
	maxInAmount = 100000
)

// ErrInvalidDate is wrapped by every anchor Parse cannot resolve.
var ErrInvalidDate = errors.New("invalid date")

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves date anchors ("today", "next monday", "2024-05-01") to
// the start of a day in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser for an already loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an anchor string to the start of the matching day.
// An empty anchor means today. baseTime is the reference point, usually time.Now().
func (p *Parser) Parse(anchor string, baseTime time.Time) (time.Time, error) {
	anchor = strings.ToLower(strings.TrimSpace(anchor))

	switch anchor {
	case "", "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(anchor, "in ") {
		return p.parseInDuration(anchor, baseTime)
	}

	if strings.HasPrefix(anchor, "next ") {
		return p.parseNextWeekday(anchor, baseTime)
	}

	if d, err := time.ParseInLocation(isoDate, anchor, p.location); err == nil {
		return d, nil
	}

	return baseTime, fmt.Errorf("%w: unrecognized date %q", ErrInvalidDate, anchor)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(anchor string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(anchor)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrInvalidDate, anchor)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxInAmount {
		return baseTime, fmt.Errorf("%w: amount out of range in %q", ErrInvalidDate, anchor)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(anchor string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(anchor, "next ")
	if dayName == "week" {
		return p.StartOfWeek(baseTime).AddDate(0, 0, 7), nil
	}

	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfWeek returns Monday 00:00 of t's week in the parser's timezone.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
