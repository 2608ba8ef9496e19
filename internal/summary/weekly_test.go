package summary

import (
	"context"
	"testing"

	"github.com/dayloop/dayloop/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyInsightsAlwaysSevenDays(t *testing.T) {
	svc, mem := newTestService(t)
	start, _ := util.WeekBounds(util.Today(), 0)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 1), 60, 50, 4, 2)

	got, err := svc.WeeklyInsights(context.Background(), 1, 0)
	require.NoError(t, err)

	require.Len(t, got.DailyBreakdown, 7)
	assert.Equal(t, util.FormatDate(start), got.WeekStart)
	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 6)), got.WeekEnd)

	var withSummary int
	for _, day := range got.DailyBreakdown {
		if day.HasSummary {
			withSummary++
		} else {
			assert.Zero(t, day.TotalTasks)
			assert.Zero(t, day.ProductivityScore)
		}
	}
	assert.Equal(t, 1, withSummary)
}

func TestWeeklyInsightsEmptyWeek(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.WeeklyInsights(context.Background(), 1, -2)
	require.NoError(t, err)

	require.Len(t, got.DailyBreakdown, 7)
	assert.Zero(t, got.TotalTasks)
	assert.Zero(t, got.CompletionRate)
	assert.Zero(t, got.AvgProductivityScore)
	assert.Empty(t, got.BestDay)
	assert.Empty(t, got.WorstDay)
}

func TestWeeklyInsightsTotalsAndRate(t *testing.T) {
	svc, mem := newTestService(t)
	start, _ := util.WeekBounds(util.Today(), -1)
	seedSummary(t, mem, 1, start, 80, 100, 2, 2)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 2), 40, 25, 4, 1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 4), 60, 50, 2, 1)

	got, err := svc.WeeklyInsights(context.Background(), 1, -1)
	require.NoError(t, err)

	assert.Equal(t, 8, got.TotalTasks)
	assert.Equal(t, 4, got.CompletedTasks)
	// Recomputed from the sums, not averaged over the daily rates.
	assert.InDelta(t, 50.0, got.CompletionRate, 0.0001)
	assert.InDelta(t, 60.0, got.AvgProductivityScore, 0.0001)
	assert.Equal(t, util.FormatDate(start), got.BestDay)
	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 2)), got.WorstDay)
}

func TestWeeklyInsightsTiesGoToEarliestDate(t *testing.T) {
	svc, mem := newTestService(t)
	start, _ := util.WeekBounds(util.Today(), -1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 1), 70, 70, 2, 1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 3), 70, 70, 2, 1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 5), 70, 70, 2, 1)

	got, err := svc.WeeklyInsights(context.Background(), 1, -1)
	require.NoError(t, err)

	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 1)), got.BestDay)
	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 1)), got.WorstDay)
}

func TestWeeklyInsightsZeroDaysDoNotWinWorst(t *testing.T) {
	svc, mem := newTestService(t)
	start, _ := util.WeekBounds(util.Today(), -1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 2), 55, 50, 2, 1)
	seedSummary(t, mem, 1, start.AddDate(0, 0, 4), 85, 100, 2, 2)

	got, err := svc.WeeklyInsights(context.Background(), 1, -1)
	require.NoError(t, err)

	// Placeholder days carry zero scores but never count as the worst day.
	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 4)), got.BestDay)
	assert.Equal(t, util.FormatDate(start.AddDate(0, 0, 2)), got.WorstDay)
}
