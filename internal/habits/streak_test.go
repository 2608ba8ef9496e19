package habits

import (
	"testing"
	"time"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/stretchr/testify/assert"
)

func logOn(y int, m time.Month, d int) models.HabitLog {
	return models.HabitLog{LogDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestComputeStreaksEmpty(t *testing.T) {
	got := ComputeStreaks(nil, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, got.Current)
	assert.Zero(t, got.Longest)
}

func TestComputeStreaksLiveRun(t *testing.T) {
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		logOn(2024, 1, 18),
		logOn(2024, 1, 19),
		logOn(2024, 1, 20),
	}

	got := ComputeStreaks(logs, today)
	assert.Equal(t, 3, got.Current)
	assert.Equal(t, 3, got.Longest)
}

func TestComputeStreaksYesterdayStillCounts(t *testing.T) {
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		logOn(2024, 1, 18),
		logOn(2024, 1, 19),
	}

	got := ComputeStreaks(logs, today)
	assert.Equal(t, 2, got.Current)
}

func TestComputeStreaksBrokenRun(t *testing.T) {
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		// A five-day run a while back, then a two-day gap before the latest log.
		logOn(2024, 1, 8),
		logOn(2024, 1, 9),
		logOn(2024, 1, 10),
		logOn(2024, 1, 11),
		logOn(2024, 1, 12),
		logOn(2024, 1, 15),
	}

	got := ComputeStreaks(logs, today)
	assert.Equal(t, 0, got.Current, "last log is five days old, streak is dead")
	assert.Equal(t, 5, got.Longest)
}

func TestComputeStreaksDuplicateDays(t *testing.T) {
	today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	logs := []models.HabitLog{
		logOn(2024, 1, 19),
		logOn(2024, 1, 19),
		logOn(2024, 1, 20),
	}

	got := ComputeStreaks(logs, today)
	assert.Equal(t, 2, got.Current)
	assert.Equal(t, 2, got.Longest)
}
