package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseReportDate(t *testing.T) {
	got, err := ParseReportDate("24.12.2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"2021-12-24", "24/12/2021", "31.02", "nonsense"} {
		if _, err := ParseReportDate(bad); !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("%q: expected ErrInvalidDateFormat, got %v", bad, err)
		}
	}

	// Empty input defaults to now.
	got, err = ParseReportDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(got) > time.Minute {
		t.Fatalf("empty date should default to current time, got %v", got)
	}
}

func TestOperationDateRoundTrip(t *testing.T) {
	// A date-only value parses with a zeroed time-of-day and survives
	// the format/parse round trip.
	orig, err := ParseOperationDate("20.12.2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orig.Hour() != 0 || orig.Minute() != 0 || orig.Second() != 0 {
		t.Fatalf("expected zero time-of-day, got %v", orig)
	}
	again, err := ParseOperationDate(FormatOperationDate(orig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Equal(orig) {
		t.Fatalf("round trip changed value: %v -> %v", orig, again)
	}

	withTime, err := ParseOperationDate("31.12.2021 16:44:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatOperationDate(withTime) != "31.12.2021 16:44:00" {
		t.Fatalf("got %q", FormatOperationDate(withTime))
	}

	if _, err := ParseOperationDate("gibberish"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestFirstOfMonth(t *testing.T) {
	in := time.Date(2021, 12, 24, 13, 45, 0, 0, time.UTC)
	want := time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)
	if got := FirstOfMonth(in); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMinusMonths(t *testing.T) {
	cases := []struct {
		in     time.Time
		months int
		want   time.Time
	}{
		{time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC), 3, time.Date(2021, 9, 24, 0, 0, 0, 0, time.UTC)},
		// Clamped to the last day of the shorter month.
		{time.Date(2021, 5, 31, 0, 0, 0, 0, time.UTC), 3, time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), 3, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		// Across a year boundary.
		{time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC), 3, time.Date(2021, 10, 15, 0, 0, 0, 0, time.UTC)},
	}
	for i, tc := range cases {
		if got := MinusMonths(tc.in, tc.months); !got.Equal(tc.want) {
			t.Fatalf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}
