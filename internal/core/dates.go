package core

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used by the export and by user input.
const (
	DateLayout     = "02.01.2006"
	DateTimeLayout = "02.01.2006 15:04:05"
)

// ParseReportDate parses a user-supplied reference date in DD.MM.YYYY
// form. An empty string defaults to the current system date.
func ParseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not DD.MM.YYYY", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// ParseOperationDate parses an operation timestamp from the export.
// Timestamps carry a time-of-day component; plain dates parse with a
// zeroed time-of-day.
func ParseOperationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an operation timestamp", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// FormatOperationDate renders a timestamp in the report form
// "DD.MM.YYYY HH:MM:SS".
func FormatOperationDate(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// MinusMonths moves t back by the given number of calendar months,
// clamping to the last day of the target month: 31 May minus 3 months
// is the last day of February, not an overflow into March.
func MinusMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 - months
	ty, tm := total/12, time.Month(total%12+1)
	if last := daysInMonth(ty, tm); d > last {
		d = last
	}
	return time.Date(ty, tm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
