package summary

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := NewService(mem, mem, config.DefaultScoring(), slog.Default(), nil)
	return svc, mem
}

func dueOn(date string) *time.Time {
	day, err := util.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return &day
}

func TestGenerateTypicalDay(t *testing.T) {
	svc, mem := newTestService(t)
	mem.SeedTasks(
		models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(60), ActualMinutes: intPtr(55), DueDate: dueOn("2024-01-15")},
		models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(120), ActualMinutes: intPtr(130), DueDate: dueOn("2024-01-15")},
		models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(30), ActualMinutes: intPtr(25), DueDate: dueOn("2024-01-15")},
		models.Task{UserID: 1, Status: models.TaskStatusPending, EstimatedMinutes: intPtr(45), DueDate: dueOn("2024-01-15")},
		// Another user's task on the same day must not be counted.
		models.Task{UserID: 2, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(90), DueDate: dueOn("2024-01-15")},
	)

	got, err := svc.Generate(context.Background(), 1, "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalTasks)
	assert.Equal(t, 3, got.CompletedTasks)
	assert.InDelta(t, 75.0, got.CompletionRate, 0.0001)
	assert.Equal(t, 255, got.TotalPlannedTime)
	assert.Equal(t, 210, got.TotalActualTime)
	assert.NotZero(t, got.ID)
}

func TestGenerateEmptyDay(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Generate(context.Background(), 1, "2024-01-20")
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalTasks)
	assert.Equal(t, 0, got.CompletedTasks)
	assert.Zero(t, got.CompletionRate)
	assert.Zero(t, got.ProductivityScore)
}

func TestRegenerateKeepsIdentifier(t *testing.T) {
	svc, mem := newTestService(t)
	mem.SeedTasks(
		models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(30), ActualMinutes: intPtr(30), DueDate: dueOn("2024-01-16")},
	)

	first, err := svc.Generate(context.Background(), 1, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalTasks)

	mem.SeedTasks(
		models.Task{UserID: 1, Status: models.TaskStatusPending, EstimatedMinutes: intPtr(15), DueDate: dueOn("2024-01-16")},
	)

	second, err := svc.Generate(context.Background(), 1, "2024-01-16")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "regeneration must update the row in place")
	assert.Equal(t, 2, second.TotalTasks)
	assert.Equal(t, 1, second.CompletedTasks)
}

func TestRegeneratePreservesUserAuthoredFields(t *testing.T) {
	svc, mem := newTestService(t)
	mem.SeedTasks(
		models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(30), ActualMinutes: intPtr(30), DueDate: dueOn("2024-01-17")},
	)

	_, err := svc.Generate(context.Background(), 1, "2024-01-17")
	require.NoError(t, err)

	notes := "long day but good focus"
	_, err = svc.Update(context.Background(), 1, "2024-01-17", UpdateInput{
		MoodRating:   intPtr(4),
		Notes:        &notes,
		Achievements: &[]string{"shipped the report"},
	})
	require.NoError(t, err)

	got, err := svc.Generate(context.Background(), 1, "2024-01-17")
	require.NoError(t, err)

	require.NotNil(t, got.MoodRating)
	assert.Equal(t, 4, *got.MoodRating)
	assert.Equal(t, "long day but good focus", got.Notes)
	assert.Equal(t, []string{"shipped the report"}, []string(got.Achievements))
}

func TestGenerateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), 0, "2024-01-15")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "owner", verr.Field)

	_, err = svc.Generate(context.Background(), 1, "15/01/2024")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}
