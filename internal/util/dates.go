// Package util holds small calendar-date helpers shared by the summary,
// store and API layers. All dates in this service are calendar days pinned
// to midnight UTC; the API speaks YYYY-MM-DD strings.
package util

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return Truncate(time.Now())
}

// StartOfWeek returns the Monday of the week containing t, at midnight UTC.
func StartOfWeek(t time.Time) time.Time {
	t = Truncate(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is the week start.
	daysBack := int(t.Weekday()) - 1
	if daysBack < 0 {
		daysBack = 6
	}
	return t.AddDate(0, 0, -daysBack)
}

// WeekBounds returns the Monday and Sunday of the week `offset` weeks away
// from the week containing `from` (offset 0 = that week, -1 = previous week).
func WeekBounds(from time.Time, offset int) (start, end time.Time) {
	start = StartOfWeek(from).AddDate(0, 0, offset*7)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// SameDate reports whether a and b fall on the same calendar day in UTC.
func SameDate(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}
