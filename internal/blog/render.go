package blog

import (
	"fmt"
	"strings"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

// Render builds the markdown post for a daily summary. The layout is fixed:
// aggregate stats up top, then the user-authored reflection sections, each
// omitted when empty.
func Render(s *models.DailySummary) (title, body string) {
	date := util.FormatDate(s.SummaryDate)
	title = fmt.Sprintf("Daily Reflection — %s", date)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Tasks:** %d/%d completed (%.0f%%)  \n", s.CompletedTasks, s.TotalTasks, s.CompletionRate)
	fmt.Fprintf(&b, "**Productivity score:** %.0f/100\n", s.ProductivityScore)

	if s.TotalPlannedTime > 0 || s.TotalActualTime > 0 {
		fmt.Fprintf(&b, "\n**Time:** planned %s, logged %s\n", formatMinutes(s.TotalPlannedTime), formatMinutes(s.TotalActualTime))
	}
	if s.MoodRating != nil {
		fmt.Fprintf(&b, "\n**Mood:** %d/5", *s.MoodRating)
		if s.EnergyRating != nil {
			fmt.Fprintf(&b, " · **Energy:** %d/5", *s.EnergyRating)
		}
		b.WriteString("\n")
	}

	writeSection(&b, "What went well", s.Achievements)
	writeSection(&b, "What was hard", s.Challenges)
	writeSection(&b, "Tomorrow", s.TomorrowGoals)

	if s.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", s.Notes)
	}

	return title, b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
