// Package recurrence expands RFC 5545 recurrence rules into concrete
// occurrence start times.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultMaxOccurrences caps how many occurrences Expand returns.
const DefaultMaxOccurrences = 500

var ErrEmptyRule = errors.New("recurrence: empty rule")

// Normalize trims whitespace and an optional "RRULE:" prefix.
func Normalize(rule string) string {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	return strings.ToUpper(rule)
}

// Validate reports whether rule parses as an RRULE.
func Validate(rule string) error {
	rule = Normalize(rule)
	if rule == "" {
		return ErrEmptyRule
	}
	if strings.Contains(rule, "DTSTART") {
		return fmt.Errorf("recurrence: DTSTART is taken from the entry start")
	}
	if _, err := rrule.StrToRRule(rule); err != nil {
		return fmt.Errorf("recurrence: %w", err)
	}
	return nil
}

// Expand returns the starts of occurrences of rule, anchored at start, whose
// span [occ, occ+d) overlaps [from, to). Occurrences are generated on start's
// wall clock, so pass start in the entry's timezone. The bool result reports
// whether the result was cut at max (DefaultMaxOccurrences when max <= 0).
func Expand(rule string, start time.Time, d time.Duration, from, to time.Time, max int) ([]time.Time, bool, error) {
	if max <= 0 {
		max = DefaultMaxOccurrences
	}
	if !from.Before(to) {
		return nil, false, nil
	}

	r, err := rrule.StrToRRule(Normalize(rule))
	if err != nil {
		return nil, false, fmt.Errorf("recurrence: %w", err)
	}
	r.DTStart(start)

	// Between is exclusive on both ends: occ > from-d keeps occurrences that
	// run into the window, occ < to drops those starting at its end.
	occs := r.Between(from.In(start.Location()).Add(-d), to.In(start.Location()), false)
	if len(occs) > max {
		return occs[:max], true, nil
	}
	return occs, false, nil
}
