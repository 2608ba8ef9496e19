package summary

import (
	"context"

	"github.com/dayloop/dayloop/internal/util"
)

// Trend direction constants
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// DailyPoint is one summary's worth of trend data.
type DailyPoint struct {
	Date              string  `json:"date"`
	CompletionRate    float64 `json:"completion_rate"`
	ProductivityScore float64 `json:"productivity_score"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
}

// TrendAverages are the rolling means over the lookback window.
type TrendAverages struct {
	AvgCompletionRate    float64 `json:"avg_completion_rate"`
	AvgProductivityScore float64 `json:"avg_productivity_score"`
	AvgTasksPerDay       float64 `json:"avg_tasks_per_day"`
	TrendDirection       string  `json:"trend_direction"`
}

// TrendReport is the result of the trend aggregation.
type TrendReport struct {
	Daily    []DailyPoint  `json:"daily"`
	Averages TrendAverages `json:"averages"`
}

// Trends aggregates the user's summaries over the last lookbackDays calendar
// days (inclusive of today). A user with no summaries in the window is not an
// error: the report carries an empty daily list, zero averages and a stable
// trend.
func (s *Service) Trends(ctx context.Context, userID uint, lookbackDays int) (*TrendReport, error) {
	if userID == 0 {
		return nil, validationErr("owner", "owner identifier is required")
	}
	if lookbackDays < 1 {
		return nil, validationErr("lookback_days", "must be at least 1, got %d", lookbackDays)
	}

	to := util.Today()
	from := to.AddDate(0, 0, -(lookbackDays - 1))

	summaries, err := s.summaries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, opError("aggregate trends", userID, util.FormatDate(to), err)
	}

	report := &TrendReport{Daily: make([]DailyPoint, 0, len(summaries))}
	scores := make([]float64, 0, len(summaries))
	var rateSum, taskSum float64

	for _, sum := range summaries {
		report.Daily = append(report.Daily, DailyPoint{
			Date:              util.FormatDate(sum.SummaryDate),
			CompletionRate:    sum.CompletionRate,
			ProductivityScore: sum.ProductivityScore,
			TotalTasks:        sum.TotalTasks,
			CompletedTasks:    sum.CompletedTasks,
		})
		scores = append(scores, sum.ProductivityScore)
		rateSum += sum.CompletionRate
		taskSum += float64(sum.TotalTasks)
	}

	if n := float64(len(summaries)); n > 0 {
		report.Averages.AvgCompletionRate = rateSum / n
		report.Averages.AvgProductivityScore = mean(scores)
		report.Averages.AvgTasksPerDay = taskSum / n
	}
	report.Averages.TrendDirection = trendDirection(scores, s.scoring.TrendThreshold)

	return report, nil
}

// trendDirection compares the mean score of the earlier half of the ordered
// window against the later half. For odd-length windows the middle point
// belongs to the later half. Fewer than two points is always stable.
func trendDirection(scores []float64, threshold float64) string {
	if len(scores) < 2 {
		return TrendStable
	}
	mid := len(scores) / 2
	diff := mean(scores[mid:]) - mean(scores[:mid])
	switch {
	case diff > threshold:
		return TrendUp
	case diff < -threshold:
		return TrendDown
	default:
		return TrendStable
	}
}
