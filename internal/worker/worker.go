package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dayloop/dayloop/internal/blog"
	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/summary"
)

// asynqLoggerAdapter wraps slog.Logger to implement asynq.Logger interface
type asynqLoggerAdapter struct {
	logger *slog.Logger
}

func (a *asynqLoggerAdapter) Debug(args ...interface{}) {
	a.logger.Debug(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Info(args ...interface{}) {
	a.logger.Info(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Warn(args ...interface{}) {
	a.logger.Warn(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Error(args ...interface{}) {
	a.logger.Error(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Fatal(args ...interface{}) {
	a.logger.Error(fmt.Sprint(args...))
	panic(fmt.Sprint(args...))
}

// Run starts the Asynq worker server and blocks until shutdown signal.
// Use this for standalone worker mode.
func Run(cfg *config.Config, summaries *summary.Service, posts *blog.Service) error {
	srv, mux, err := newServer(cfg, summaries, posts)
	if err != nil {
		return err
	}
	return srv.Run(mux)
}

// Start starts the Asynq worker in non-blocking mode and returns a stop
// function. Use this for embedded mode so the caller coordinates shutdown.
func Start(cfg *config.Config, summaries *summary.Service, posts *blog.Service) (stop func(), err error) {
	srv, mux, err := newServer(cfg, summaries, posts)
	if err != nil {
		return nil, err
	}
	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}
	return func() { srv.Shutdown() }, nil
}

func newServer(cfg *config.Config, summaries *summary.Service, posts *blog.Service) (*asynq.Server, *asynq.ServeMux, error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	logger := NewLogger(cfg.LogLevel, cfg.LogFormat)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     5,
			ShutdownTimeout: 30 * time.Second,
			ErrorHandler:    asynq.ErrorHandlerFunc(makeErrorHandler(logger)),
			Logger:          &asynqLoggerAdapter{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskGenerateSummary, handleGenerateSummary(logger, summaries))
	mux.HandleFunc(TaskPublishBlog, handlePublishBlog(logger, posts))

	logger.Info("Worker starting", "concurrency", 5, "redis", cfg.RedisURL)
	return srv, mux, nil
}

// handleGenerateSummary recomputes a day's summary in the background. The
// generator is idempotent, so retries after transient store failures are
// safe; validation failures never retry.
func handleGenerateSummary(logger *slog.Logger, summaries *summary.Service) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload struct {
			UserID uint   `json:"user_id"`
			Date   string `json:"date"`
		}
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}

		logger.Info("Processing summary:generate task", "user_id", payload.UserID, "date", payload.Date)

		result, err := summaries.Generate(ctx, payload.UserID, payload.Date)
		if err != nil {
			var verr *summary.ValidationError
			if errors.As(err, &verr) {
				logger.Error("Summary generation rejected", "user_id", payload.UserID, "date", payload.Date, "error", err.Error())
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			// Store failure, retryable.
			return fmt.Errorf("summary generation failed: %w", err)
		}

		logger.Info("Summary generation completed",
			"user_id", payload.UserID,
			"date", payload.Date,
			"summary_id", result.ID,
			"score", result.ProductivityScore,
		)
		return nil
	}
}

// handlePublishBlog renders a blog post from a summary. Publishing is
// idempotent on the blog side, so retries never duplicate posts.
func handlePublishBlog(logger *slog.Logger, posts *blog.Service) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload struct {
			SummaryID uint `json:"summary_id"`
		}
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}

		logger.Info("Processing blog:publish task", "summary_id", payload.SummaryID)

		post, err := posts.PublishFromSummary(ctx, payload.SummaryID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logger.Error("Summary not found for blog publish", "summary_id", payload.SummaryID)
				return fmt.Errorf("summary not found: %w", asynq.SkipRetry)
			}
			return fmt.Errorf("blog publish failed: %w", err)
		}

		logger.Info("Blog post published", "summary_id", payload.SummaryID, "post_id", post.ID)
		return nil
	}
}

// makeErrorHandler creates an error handler function with logger closure.
func makeErrorHandler(logger *slog.Logger) func(context.Context, *asynq.Task, error) {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		logger.Error(
			"Task execution failed",
			"task_type", task.Type(),
			"error", err.Error(),
			"retry_count", retried,
			"max_retry", maxRetry,
		)

		if retried >= maxRetry {
			logger.Error(
				"Task moved to dead letter queue (all retries exhausted)",
				"task_type", task.Type(),
				"payload", string(task.Payload()),
			)
		}
	}
}
