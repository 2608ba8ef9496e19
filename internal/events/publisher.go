// Package events publishes domain events to Redis Streams for out-of-process
// consumers (UI refresh, notification delivery). Publishing is best-effort:
// a failed XADD is logged and never fails the operation that produced the
// event.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Stream name constants
const (
	StreamSummaryEvents = "summary:events"
)

// Schema version constant
const (
	SchemaVersionV1 = "v1"
)

// SummaryGeneratedEvent is emitted after every successful summary generation.
type SummaryGeneratedEvent struct {
	EventID           string  `json:"event_id"`
	UserID            uint    `json:"user_id"`
	Date              string  `json:"date"`
	ProductivityScore float64 `json:"productivity_score"`
}

// Publisher publishes summary events to Redis Streams
type Publisher struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewPublisher creates a Publisher from a Redis URL.
func NewPublisher(redisURL string, logger *slog.Logger) (*Publisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{rdb: redis.NewClient(opts), logger: logger}, nil
}

// SummaryGenerated publishes a summary.generated event. Implements the
// summary service's Notifier interface.
func (p *Publisher) SummaryGenerated(ctx context.Context, userID uint, date string, score float64) {
	event := SummaryGeneratedEvent{
		EventID:           uuid.New().String(),
		UserID:            userID,
		Date:              date,
		ProductivityScore: score,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal summary event", "error", err.Error())
		return
	}

	result := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamSummaryEvents,
		MaxLen: 10000,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"payload":        string(payload),
			"published_at":   time.Now().Unix(),
			"schema_version": SchemaVersionV1,
		},
	})
	if result.Err() != nil {
		p.logger.Error("Failed to publish summary event",
			"user_id", userID,
			"date", date,
			"error", result.Err().Error(),
		)
		return
	}

	p.logger.Debug("Summary event published", "stream_msg_id", result.Val(), "user_id", userID, "date", date)
}

// Close closes the Redis client connection
func (p *Publisher) Close() error {
	return p.rdb.Close()
}
