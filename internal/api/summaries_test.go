package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/summary"
	"github.com/dayloop/dayloop/internal/util"
)

// newTestRouter wires the summary routes with the in-memory store and a stub
// identity middleware standing in for the auth proxy lookup.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	svc := summary.NewService(mem, mem, config.DefaultScoring(), slog.Default(), nil)

	r := gin.New()
	authed := r.Group("/api", func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	authed.POST("/summaries/:date/generate", GenerateSummaryHandler(svc))
	authed.GET("/summaries/:date", GetSummaryHandler(svc))
	authed.PATCH("/summaries/:date", UpdateSummaryHandler(svc))
	authed.DELETE("/summaries/:date", DeleteSummaryHandler(svc))
	authed.GET("/insights/trends", TrendsHandler(svc))
	authed.GET("/insights/weekly", WeeklyInsightsHandler(svc))

	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	r, mem := newTestRouter(t)
	due, err := util.ParseDate("2024-01-15")
	require.NoError(t, err)
	est := 30
	act := 25
	mem.SeedTasks(models.Task{UserID: 1, Status: models.TaskStatusCompleted, EstimatedMinutes: &est, ActualMinutes: &act, DueDate: &due})

	w := doJSON(t, r, http.MethodPost, "/api/summaries/2024-01-15/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.DailySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.TotalTasks)
	assert.Equal(t, 1, got.CompletedTasks)
}

func TestGenerateEndpointRejectsBadDate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/summaries/not-a-date/generate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "date", body["field"])
}

func TestGetEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/summaries/2024-01-15", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEndpointValidatesRatings(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/summaries/2024-01-15", map[string]int{"mood_rating": 6})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "mood_rating", body["field"])

	w = doJSON(t, r, http.MethodPatch, "/api/summaries/2024-01-15", map[string]int{"mood_rating": 5})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/summaries/2024-01-15", map[string]int{"mood_rating": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/summaries/2024-01-15", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/summaries/2024-01-15", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrendsEndpointEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/insights/trends?days=14", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got summary.TrendReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Daily)
	assert.Equal(t, summary.TrendStable, got.Averages.TrendDirection)
}

func TestWeeklyEndpointSevenDays(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/insights/weekly?offset=-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got summary.WeeklyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.DailyBreakdown, 7)
}
