// Package habits tracks recurring daily practices and their streaks.
package habits

import (
	"sort"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

// Streaks holds the computed streak figures for one habit.
type Streaks struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// ComputeStreaks derives the current and longest run of consecutive logged
// days. The current streak counts back from today; a habit last logged
// yesterday still has a live streak (today isn't over), but a gap of two or
// more days resets it to zero.
func ComputeStreaks(logs []models.HabitLog, today time.Time) Streaks {
	if len(logs) == 0 {
		return Streaks{}
	}

	days := make([]time.Time, 0, len(logs))
	seen := make(map[string]bool, len(logs))
	for _, l := range logs {
		d := util.Truncate(l.LogDate)
		key := util.FormatDate(d)
		if !seen[key] {
			seen[key] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today = util.Truncate(today)
	last := days[len(days)-1]
	current := 0
	if gap := today.Sub(last); gap == 0 || gap == 24*time.Hour {
		current = run
	}

	return Streaks{Current: current, Longest: longest}
}
