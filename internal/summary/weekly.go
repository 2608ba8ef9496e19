package summary

import (
	"context"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

// DayBreakdown is one calendar day of a weekly report. Days without a
// summary record appear with zero values and HasSummary false rather than
// being omitted, so a week always breaks down into exactly 7 entries.
type DayBreakdown struct {
	Date              string  `json:"date"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
	ProductivityScore float64 `json:"productivity_score"`
	HasSummary        bool    `json:"has_summary"`
}

// WeeklyReport is the Monday-to-Sunday insight view.
type WeeklyReport struct {
	WeekStart            string         `json:"week_start"`
	WeekEnd              string         `json:"week_end"`
	TotalTasks           int            `json:"total_tasks"`
	CompletedTasks       int            `json:"completed_tasks"`
	CompletionRate       float64        `json:"completion_rate"`
	AvgProductivityScore float64        `json:"avg_productivity_score"`
	BestDay              string         `json:"best_day"`
	WorstDay             string         `json:"worst_day"`
	DailyBreakdown       []DayBreakdown `json:"daily_breakdown"`
}

// WeeklyInsights builds the report for the week `weekOffset` weeks away from
// the current one (0 = current week, negative = past weeks). Weeks start on
// Monday. The weekly completion rate is recomputed from the summed task
// counts, not averaged over daily rates. Best and worst day are picked among
// days that actually have a summary, ties broken by the earlier date; with
// no summaries at all both stay empty.
func (s *Service) WeeklyInsights(ctx context.Context, userID uint, weekOffset int) (*WeeklyReport, error) {
	if userID == 0 {
		return nil, validationErr("owner", "owner identifier is required")
	}

	start, end := util.WeekBounds(util.Today(), weekOffset)

	summaries, err := s.summaries.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, opError("weekly insights", userID, util.FormatDate(start), err)
	}

	byDate := make(map[string]models.DailySummary, len(summaries))
	for _, sum := range summaries {
		byDate[util.FormatDate(sum.SummaryDate)] = sum
	}

	report := &WeeklyReport{
		WeekStart:      util.FormatDate(start),
		WeekEnd:        util.FormatDate(end),
		DailyBreakdown: make([]DayBreakdown, 0, 7),
	}

	var scoreSum float64
	var withSummary int
	var bestScore, worstScore float64

	for i := 0; i < 7; i++ {
		date := util.FormatDate(start.AddDate(0, 0, i))
		day := DayBreakdown{Date: date}

		if sum, ok := byDate[date]; ok {
			day.TotalTasks = sum.TotalTasks
			day.CompletedTasks = sum.CompletedTasks
			day.CompletionRate = sum.CompletionRate
			day.ProductivityScore = sum.ProductivityScore
			day.HasSummary = true

			report.TotalTasks += sum.TotalTasks
			report.CompletedTasks += sum.CompletedTasks
			scoreSum += sum.ProductivityScore
			withSummary++

			// Strict comparisons keep the earliest date on ties.
			if report.BestDay == "" || sum.ProductivityScore > bestScore {
				report.BestDay = date
				bestScore = sum.ProductivityScore
			}
			if report.WorstDay == "" || sum.ProductivityScore < worstScore {
				report.WorstDay = date
				worstScore = sum.ProductivityScore
			}
		}

		report.DailyBreakdown = append(report.DailyBreakdown, day)
	}

	if report.TotalTasks > 0 {
		report.CompletionRate = float64(report.CompletedTasks) / float64(report.TotalTasks) * 100
	}
	if withSummary > 0 {
		report.AvgProductivityScore = scoreSum / float64(withSummary)
	}

	return report, nil
}
