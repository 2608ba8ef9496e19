// Package summary implements daily summary generation, manual reflection
// updates and the trend / weekly insight aggregations. Every operation is a
// self-contained read-compute-write round trip against the record store;
// nothing here keeps state between calls.
package summary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/util"
)

// Notifier receives a signal after each successful generation. Implemented by
// the Redis Streams event publisher; may be nil, in which case generation
// proceeds without publishing.
type Notifier interface {
	SummaryGenerated(ctx context.Context, userID uint, date string, score float64)
}

// Service wires the summary logic to its stores. The zero value is not
// usable; construct with NewService.
type Service struct {
	tasks     store.TaskStore
	summaries store.SummaryStore
	scoring   config.Scoring
	logger    *slog.Logger
	notifier  Notifier
}

// NewService creates a summary service. notifier may be nil.
func NewService(tasks store.TaskStore, summaries store.SummaryStore, scoring config.Scoring, logger *slog.Logger, notifier Notifier) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		tasks:     tasks,
		summaries: summaries,
		scoring:   scoring,
		logger:    logger,
		notifier:  notifier,
	}
}

// Get returns the summary for (userID, date), or store.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID uint, date string) (*models.DailySummary, error) {
	day, err := s.parseInputs(userID, date)
	if err != nil {
		return nil, err
	}
	result, err := s.summaries.GetByDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, opError("get summary", userID, date, err)
	}
	return result, nil
}

// Delete removes the summary for (userID, date) outright. Irreversible.
func (s *Service) Delete(ctx context.Context, userID uint, date string) error {
	day, err := s.parseInputs(userID, date)
	if err != nil {
		return err
	}
	if err := s.summaries.Delete(ctx, userID, day); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return opError("delete summary", userID, date, err)
	}
	s.logger.Info("Summary deleted", "user_id", userID, "date", date)
	return nil
}

// parseInputs validates the owner and date eagerly, before any store call.
func (s *Service) parseInputs(userID uint, date string) (time.Time, error) {
	if userID == 0 {
		return time.Time{}, validationErr("owner", "owner identifier is required")
	}
	day, err := util.ParseDate(date)
	if err != nil {
		return time.Time{}, validationErr("date", "must be a YYYY-MM-DD calendar date")
	}
	return day, nil
}
