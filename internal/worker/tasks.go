package worker

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

// ErrClientNotInitialized is returned by the EnqueueX functions when
// InitClient has not run (e.g. in tests without Redis).
var ErrClientNotInitialized = errors.New("asynq client not initialized")

// Task type constants
const (
	TaskGenerateSummary = "summary:generate"
	TaskPublishBlog     = "blog:publish"
)

// Package-level Asynq client (singleton)
var client *asynq.Client

// InitClient initializes the global Asynq client for task enqueueing.
// Must be called before any EnqueueX functions.
func InitClient(redisURL string) error {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return err
	}

	client = asynq.NewClient(opt)
	return nil
}

// CloseClient closes the Asynq client connection gracefully.
func CloseClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// EnqueueGenerateSummary queues a summary regeneration for (userID, date).
// Task mutations call this so the day's aggregates catch up in the
// background. Generation is idempotent, so redundant runs are harmless.
func EnqueueGenerateSummary(userID uint, date string) error {
	if client == nil {
		return ErrClientNotInitialized
	}

	payload, err := json.Marshal(map[string]interface{}{
		"user_id": userID,
		"date":    date,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(
		TaskGenerateSummary,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(1*time.Minute),
		asynq.Retention(24*time.Hour),
	)

	_, err = client.Enqueue(task)
	return err
}

// EnqueuePublishBlog queues blog post generation for a summary.
func EnqueuePublishBlog(summaryID uint) error {
	if client == nil {
		return ErrClientNotInitialized
	}

	payload, err := json.Marshal(map[string]uint{
		"summary_id": summaryID,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(
		TaskPublishBlog,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(1*time.Minute),
		asynq.Retention(24*time.Hour),
	)

	_, err = client.Enqueue(task)
	return err
}
