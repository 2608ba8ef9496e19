package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

// Memory is an in-memory store used as the test double for the record-store
// boundary. It mirrors the GORM implementation's contract: ErrNotFound for
// absent rows, unique (user, date) summaries, ascending range order.
type Memory struct {
	mu        sync.Mutex
	nextID    uint
	tasks     []models.Task
	summaries map[uint]models.DailySummary
	posts     map[string]models.BlogPost
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:    1,
		summaries: make(map[uint]models.DailySummary),
		posts:     make(map[string]models.BlogPost),
	}
}

// SeedTasks adds task records, assigning IDs to any task without one.
func (m *Memory) SeedTasks(tasks ...models.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range tasks {
		if t.ID == 0 {
			t.ID = m.nextID
			m.nextID++
		}
		m.tasks = append(m.tasks, t)
	}
}

func (m *Memory) ListDueOn(ctx context.Context, userID uint, date time.Time) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Task
	for _, t := range m.tasks {
		if t.UserID != userID || t.DueDate == nil {
			continue
		}
		if util.SameDate(*t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Memory) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.summaries {
		if s.UserID == userID && util.SameDate(s.SummaryDate, date) {
			copied := s
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetByID(ctx context.Context, id uint) (*models.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.summaries[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := s
	return &copied, nil
}

func (m *Memory) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	from, to = util.Truncate(from), util.Truncate(to)
	var out []models.DailySummary
	for _, s := range m.summaries {
		d := util.Truncate(s.SummaryDate)
		if s.UserID == userID && !d.Before(from) && !d.After(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SummaryDate.Before(out[j].SummaryDate) })
	return out, nil
}

func (m *Memory) Insert(ctx context.Context, s *models.DailySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.summaries {
		if existing.UserID == s.UserID && util.SameDate(existing.SummaryDate, s.SummaryDate) {
			return fmt.Errorf("duplicate summary for user %d on %s", s.UserID, util.FormatDate(s.SummaryDate))
		}
	}
	s.ID = m.nextID
	m.nextID++
	s.SummaryDate = util.Truncate(s.SummaryDate)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.summaries[s.ID] = *s
	return nil
}

func (m *Memory) Save(ctx context.Context, s *models.DailySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.summaries[s.ID]; !ok {
		return fmt.Errorf("save summary: no row with id %d", s.ID)
	}
	s.SummaryDate = util.Truncate(s.SummaryDate)
	s.UpdatedAt = time.Now()
	m.summaries[s.ID] = *s
	return nil
}

func (m *Memory) Delete(ctx context.Context, userID uint, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.summaries {
		if s.UserID == userID && util.SameDate(s.SummaryDate, date) {
			delete(m.summaries, id)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertPost(ctx context.Context, p *models.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	m.posts[p.PublicID] = *p
	return nil
}

func (m *Memory) GetByPublicID(ctx context.Context, userID uint, publicID string) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[publicID]
	if !ok || p.UserID != userID {
		return nil, ErrNotFound
	}
	copied := p
	return &copied, nil
}

func (m *Memory) ListByUser(ctx context.Context, userID uint) ([]models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.BlogPost
	for _, p := range m.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	return out, nil
}
