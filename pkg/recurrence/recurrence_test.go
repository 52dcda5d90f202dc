package recurrence_test

import (
	"testing"
	"time"

	"timeblock/pkg/recurrence"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		rule    string
		wantErr bool
	}{
		{rule: "FREQ=WEEKLY;BYDAY=MO,WE", wantErr: false},
		{rule: "RRULE:FREQ=DAILY;COUNT=3", wantErr: false},
		{rule: "freq=daily", wantErr: false},
		{rule: "", wantErr: true},
		{rule: "FREQ=SOMETIMES", wantErr: true},
		{rule: "DTSTART:20240101T000000Z;FREQ=DAILY", wantErr: true},
	}

	for _, tt := range tests {
		err := recurrence.Validate(tt.rule)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.rule, err, tt.wantErr)
		}
	}
}

func TestExpand(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	got, truncated, err := recurrence.Expand("FREQ=DAILY;COUNT=10", start, time.Hour, from, to, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truncated {
		t.Errorf("did not expect truncation")
	}
	want := []time.Time{
		time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandIncludesOverlappingOccurrence(t *testing.T) {
	start := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	got, _, err := recurrence.Expand("FREQ=DAILY", start, 2*time.Hour, from, to, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// May 1 23:00 runs into May 2, May 2 23:00 starts inside the window.
	if len(got) != 2 || !got[0].Equal(start) {
		t.Errorf("unexpected occurrences %v", got)
	}
}

func TestExpandCap(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	from := start
	to := start.AddDate(0, 0, 30)

	got, truncated, err := recurrence.Expand("FREQ=DAILY", start, time.Hour, from, to, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !truncated || len(got) != 5 {
		t.Errorf("expected 5 truncated occurrences, got %d truncated=%v", len(got), truncated)
	}
}

func TestExpandWindowFarFromStart(t *testing.T) {
	start := time.Date(2010, 1, 1, 9, 0, 0, 0, time.UTC)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	got, truncated, err := recurrence.Expand("FREQ=HOURLY", start, time.Hour, from, to, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truncated || len(got) != 24 {
		t.Fatalf("expected 24 occurrences, got %d truncated=%v", len(got), truncated)
	}
	if !got[0].Equal(from) || !got[23].Equal(to.Add(-time.Hour)) {
		t.Errorf("unexpected bounds %v .. %v", got[0], got[23])
	}
}

func TestExpandInvalid(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if _, _, err := recurrence.Expand("FREQ=NOPE", start, time.Hour, start, start.Add(time.Hour), 0); err == nil {
		t.Errorf("expected error for invalid rule")
	}
}
