package summary

import (
	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/models"
)

// Aggregates are the derived columns of a DailySummary, recomputed in full on
// every generation run.
type Aggregates struct {
	TotalTasks        int
	CompletedTasks    int
	CompletionRate    float64
	TotalPlannedTime  int // minutes
	TotalActualTime   int // minutes
	ProductivityScore float64
}

// Aggregate computes the summary aggregates for one day's tasks.
//
// Planned time sums estimates over every task due that day; actual time only
// counts completed tasks, so a stray actual_minutes on a pending or cancelled
// task contributes nothing.
func Aggregate(tasks []models.Task, scoring config.Scoring) Aggregates {
	agg := Aggregates{TotalTasks: len(tasks)}

	for _, t := range tasks {
		if t.EstimatedMinutes != nil {
			agg.TotalPlannedTime += *t.EstimatedMinutes
		}
		if t.Status == models.TaskStatusCompleted {
			agg.CompletedTasks++
			if t.ActualMinutes != nil {
				agg.TotalActualTime += *t.ActualMinutes
			}
		}
	}

	if agg.TotalTasks > 0 {
		agg.CompletionRate = float64(agg.CompletedTasks) / float64(agg.TotalTasks) * 100
	}
	agg.ProductivityScore = Score(agg.TotalTasks, agg.CompletionRate, agg.TotalPlannedTime, agg.TotalActualTime, scoring)

	return agg
}

// Score blends completion rate with a time-efficiency component into a
// 0-100 productivity figure.
//
// Efficiency is min(planned/actual, 1): finishing at or under the estimate
// earns full credit, overruns decay toward zero. With nothing completed yet
// (actual == 0) or nothing estimated (planned == 0) the score degrades to the
// completion rate alone. A day with no tasks scores 0. The result is clamped
// to [0, 100] and is never NaN.
func Score(totalTasks int, completionRate float64, plannedMinutes, actualMinutes int, scoring config.Scoring) float64 {
	if totalTasks == 0 {
		return 0
	}
	if actualMinutes == 0 || plannedMinutes == 0 {
		return clamp(completionRate, 0, 100)
	}

	efficiency := float64(plannedMinutes) / float64(actualMinutes)
	if efficiency > 1 {
		efficiency = 1
	}

	weightSum := scoring.CompletionWeight + scoring.EfficiencyWeight
	score := (scoring.CompletionWeight*completionRate + scoring.EfficiencyWeight*efficiency*100) / weightSum
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
