package datemath

import "time"

// Range is a half-open [Start, End) interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Week returns the Monday-to-Monday range containing t.
func (p *Parser) Week(t time.Time) Range {
	start := p.StartOfWeek(t)
	return Range{Start: start, End: start.AddDate(0, 0, 7)}
}

// Days returns the start of each day in r.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
