// Package blog turns a finished daily summary into a markdown blog post.
// Publishing is one-way: once a post exists the summary keeps a back
// reference and repeated publish calls return the same post.
package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/google/uuid"
)

// Service renders and stores blog posts.
type Service struct {
	summaries store.SummaryStore
	posts     store.BlogStore
	logger    *slog.Logger
}

// NewService creates a blog service.
func NewService(summaries store.SummaryStore, posts store.BlogStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{summaries: summaries, posts: posts, logger: logger}
}

// PublishFromSummary renders the summary with the given ID into a post and
// flips the summary's blog_generated flag. Idempotent: if the summary already
// references a post, that post's identifier is kept and no new post is made.
func (s *Service) PublishFromSummary(ctx context.Context, summaryID uint) (*models.BlogPost, error) {
	sum, err := s.summaries.GetByID(ctx, summaryID)
	if err != nil {
		return nil, fmt.Errorf("publish blog post for summary %d: %w", summaryID, err)
	}

	if sum.BlogGenerated && sum.BlogPostID != nil {
		s.logger.Info("Summary already published, skipping", "summary_id", summaryID, "post_id", *sum.BlogPostID)
		existing, err := s.posts.ListByUser(ctx, sum.UserID)
		if err != nil {
			return nil, fmt.Errorf("publish blog post for summary %d: %w", summaryID, err)
		}
		for i := range existing {
			if existing[i].ID == *sum.BlogPostID {
				return &existing[i], nil
			}
		}
		return nil, fmt.Errorf("publish blog post for summary %d: %w", summaryID, store.ErrNotFound)
	}

	title, body := Render(sum)
	post := &models.BlogPost{
		PublicID:    uuid.New().String(),
		UserID:      sum.UserID,
		SummaryID:   sum.ID,
		Title:       title,
		Body:        body,
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.posts.InsertPost(ctx, post); err != nil {
		return nil, fmt.Errorf("publish blog post for summary %d: %w", summaryID, err)
	}

	sum.BlogGenerated = true
	sum.BlogPostID = &post.ID
	if err := s.summaries.Save(ctx, sum); err != nil {
		return nil, fmt.Errorf("publish blog post for summary %d: %w", summaryID, err)
	}

	s.logger.Info("Blog post generated",
		"summary_id", summaryID,
		"post_id", post.ID,
		"public_id", post.PublicID,
	)
	return post, nil
}

// Get returns one of the user's posts by its public identifier.
func (s *Service) Get(ctx context.Context, userID uint, publicID string) (*models.BlogPost, error) {
	return s.posts.GetByPublicID(ctx, userID, publicID)
}

// List returns the user's posts, newest first.
func (s *Service) List(ctx context.Context, userID uint) ([]models.BlogPost, error) {
	return s.posts.ListByUser(ctx, userID)
}
