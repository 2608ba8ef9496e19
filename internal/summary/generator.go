package summary

import (
	"context"
	"errors"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
)

// Generate recomputes the daily summary for (userID, date) from the tasks due
// that calendar day and upserts it.
//
// The upsert preserves the existing row's identifier and every user-authored
// field (mood, energy, notes, achievements, challenges, tomorrow goals, blog
// references); only the aggregate columns are rewritten. Calling Generate
// twice with unchanged tasks yields the same aggregates.
func (s *Service) Generate(ctx context.Context, userID uint, date string) (*models.DailySummary, error) {
	day, err := s.parseInputs(userID, date)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListDueOn(ctx, userID, day)
	if err != nil {
		return nil, opError("generate summary", userID, date, err)
	}

	agg := Aggregate(tasks, s.scoring)

	existing, err := s.summaries.GetByDate(ctx, userID, day)
	switch {
	case err == nil:
		applyAggregates(existing, agg)
		if err := s.summaries.Save(ctx, existing); err != nil {
			return nil, opError("generate summary", userID, date, err)
		}
	case errors.Is(err, store.ErrNotFound):
		existing = &models.DailySummary{
			UserID:      userID,
			SummaryDate: day,
		}
		applyAggregates(existing, agg)
		if err := s.summaries.Insert(ctx, existing); err != nil {
			return nil, opError("generate summary", userID, date, err)
		}
	default:
		return nil, opError("generate summary", userID, date, err)
	}

	s.logger.Info("Summary generated",
		"user_id", userID,
		"date", date,
		"total_tasks", agg.TotalTasks,
		"completed_tasks", agg.CompletedTasks,
		"score", agg.ProductivityScore,
	)

	if s.notifier != nil {
		s.notifier.SummaryGenerated(ctx, userID, date, agg.ProductivityScore)
	}

	return existing, nil
}

func applyAggregates(dst *models.DailySummary, agg Aggregates) {
	dst.TotalTasks = agg.TotalTasks
	dst.CompletedTasks = agg.CompletedTasks
	dst.CompletionRate = agg.CompletionRate
	dst.TotalPlannedTime = agg.TotalPlannedTime
	dst.TotalActualTime = agg.TotalActualTime
	dst.ProductivityScore = agg.ProductivityScore
}
