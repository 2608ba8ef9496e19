package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
	"gorm.io/gorm"
)

// Gorm is the Postgres-backed store. It satisfies TaskStore, SummaryStore
// and BlogStore.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an open GORM connection.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) ListDueOn(ctx context.Context, userID uint, date time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND due_date = ?", userID, util.Truncate(date)).
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks due on %s: %w", util.FormatDate(date), err)
	}
	return tasks, nil
}

func (g *Gorm) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND summary_date = ?", userID, util.Truncate(date)).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get summary by date: %w", err)
	}
	return &summary, nil
}

func (g *Gorm) GetByID(ctx context.Context, id uint) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := g.db.WithContext(ctx).First(&summary, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get summary by id: %w", err)
	}
	return &summary, nil
}

func (g *Gorm) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailySummary, error) {
	var summaries []models.DailySummary
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND summary_date BETWEEN ? AND ?", userID, util.Truncate(from), util.Truncate(to)).
		Order("summary_date ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("list summaries in range: %w", err)
	}
	return summaries, nil
}

func (g *Gorm) Insert(ctx context.Context, s *models.DailySummary) error {
	s.SummaryDate = util.Truncate(s.SummaryDate)
	if err := g.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (g *Gorm) Save(ctx context.Context, s *models.DailySummary) error {
	s.SummaryDate = util.Truncate(s.SummaryDate)
	if err := g.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, userID uint, date time.Time) error {
	res := g.db.WithContext(ctx).
		Where("user_id = ? AND summary_date = ?", userID, util.Truncate(date)).
		Delete(&models.DailySummary{})
	if res.Error != nil {
		return fmt.Errorf("delete summary: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gorm) InsertPost(ctx context.Context, p *models.BlogPost) error {
	if err := g.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

func (g *Gorm) GetByPublicID(ctx context.Context, userID uint, publicID string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &post, nil
}

func (g *Gorm) ListByUser(ctx context.Context, userID uint) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}
