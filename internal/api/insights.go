package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dayloop/dayloop/internal/summary"
)

// TrendsHandler serves the lookback trend aggregation.
// GET /api/insights/trends?days=30
func TrendsHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		days := 30
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
				return
			}
			days = parsed
		}

		report, err := svc.Trends(c.Request.Context(), userID, days)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

// WeeklyInsightsHandler serves the Monday-to-Sunday breakdown.
// GET /api/insights/weekly?offset=0 (0 = current week, negative = past)
func WeeklyInsightsHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		offset := 0
		if raw := c.Query("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
				return
			}
			offset = parsed
		}

		report, err := svc.WeeklyInsights(c.Request.Context(), userID, offset)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
