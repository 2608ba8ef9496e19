// Package store is the record-store boundary of the service. The summary,
// blog and insight logic only ever sees these interfaces; production wires
// the GORM/Postgres implementation and the unit tests wire the in-memory one.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/dayloop/dayloop/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Read paths
// surface it as an explicit absent-value result rather than a failure.
var ErrNotFound = errors.New("record not found")

// TaskStore reads task records. Tasks are owned by the task CRUD surface;
// summary generation only ever reads them.
type TaskStore interface {
	// ListDueOn returns all of a user's tasks due on the given calendar day,
	// regardless of status. Matching is by calendar day only.
	ListDueOn(ctx context.Context, userID uint, date time.Time) ([]models.Task, error)
}

// SummaryStore reads and writes daily summary records. At most one summary
// exists per (user, date); Insert must fail if that constraint is violated.
type SummaryStore interface {
	// GetByDate returns the summary for (userID, date) or ErrNotFound.
	GetByDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error)

	// GetByID returns the summary with the given primary key or ErrNotFound.
	GetByID(ctx context.Context, id uint) (*models.DailySummary, error)

	// ListRange returns a user's summaries with from <= summary_date <= to,
	// ordered by date ascending.
	ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailySummary, error)

	// Insert stores a new summary and fills in its ID.
	Insert(ctx context.Context, s *models.DailySummary) error

	// Save writes the full row identified by s.ID back in one call.
	Save(ctx context.Context, s *models.DailySummary) error

	// Delete removes the summary for (userID, date) outright. Returns
	// ErrNotFound if no such summary exists. Deletion is irreversible.
	Delete(ctx context.Context, userID uint, date time.Time) error
}

// BlogStore reads and writes auto-generated blog posts.
type BlogStore interface {
	InsertPost(ctx context.Context, p *models.BlogPost) error
	GetByPublicID(ctx context.Context, userID uint, publicID string) (*models.BlogPost, error)
	ListByUser(ctx context.Context, userID uint) ([]models.BlogPost, error)
}
