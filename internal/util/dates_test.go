package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "15/01/2024", "2024-1-5", "2024-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2024, 1, 15, 23, 45, 12, 999, time.FixedZone("CET", 3600))
	got := Truncate(in)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"}, // a Monday maps to itself
		{"2024-01-17", "2024-01-15"}, // Wednesday
		{"2024-01-21", "2024-01-15"}, // Sunday belongs to the preceding Monday
		{"2024-01-22", "2024-01-22"}, // next Monday
	}
	for _, tc := range cases {
		day, err := ParseDate(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, FormatDate(StartOfWeek(day)), "input %s", tc.in)
	}
}

func TestWeekBounds(t *testing.T) {
	wed, err := ParseDate("2024-01-17")
	require.NoError(t, err)

	start, end := WeekBounds(wed, 0)
	assert.Equal(t, "2024-01-15", FormatDate(start))
	assert.Equal(t, "2024-01-21", FormatDate(end))

	start, end = WeekBounds(wed, -1)
	assert.Equal(t, "2024-01-08", FormatDate(start))
	assert.Equal(t, "2024-01-14", FormatDate(end))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)
	c := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
