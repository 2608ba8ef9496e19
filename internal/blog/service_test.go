package blog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func seedSummary(t *testing.T, mem *store.Memory) *models.DailySummary {
	t.Helper()
	sum := &models.DailySummary{
		UserID:            1,
		SummaryDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalTasks:        4,
		CompletedTasks:    3,
		CompletionRate:    75,
		TotalPlannedTime:  255,
		TotalActualTime:   210,
		ProductivityScore: 82.5,
		MoodRating:        intPtr(4),
		Achievements:      []string{"shipped the report", "inbox zero"},
		TomorrowGoals:     []string{"start the deck"},
		Notes:             "solid day overall",
	}
	require.NoError(t, mem.Insert(context.Background(), sum))
	return sum
}

func TestPublishFromSummary(t *testing.T) {
	mem := store.NewMemory()
	sum := seedSummary(t, mem)
	svc := NewService(mem, mem, slog.Default())

	post, err := svc.PublishFromSummary(context.Background(), sum.ID)
	require.NoError(t, err)

	assert.Equal(t, "Daily Reflection — 2024-01-15", post.Title)
	assert.NotEmpty(t, post.PublicID)
	assert.Equal(t, sum.ID, post.SummaryID)
	assert.Contains(t, post.Body, "3/4 completed (75%)")
	assert.Contains(t, post.Body, "- shipped the report")
	assert.Contains(t, post.Body, "## Tomorrow")
	assert.Contains(t, post.Body, "solid day overall")
	// No challenges were recorded, so the section is omitted entirely.
	assert.NotContains(t, post.Body, "What was hard")

	updated, err := mem.GetByID(context.Background(), sum.ID)
	require.NoError(t, err)
	assert.True(t, updated.BlogGenerated)
	require.NotNil(t, updated.BlogPostID)
	assert.Equal(t, post.ID, *updated.BlogPostID)
}

func TestPublishIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	sum := seedSummary(t, mem)
	svc := NewService(mem, mem, slog.Default())

	first, err := svc.PublishFromSummary(context.Background(), sum.ID)
	require.NoError(t, err)

	second, err := svc.PublishFromSummary(context.Background(), sum.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	posts, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPublishUnknownSummary(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem, mem, slog.Default())

	_, err := svc.PublishFromSummary(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "2h", formatMinutes(120))
	assert.Equal(t, "4h15m", formatMinutes(255))
}
