package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayloop/dayloop/internal/summary"
	"github.com/dayloop/dayloop/internal/worker"
)

// GenerateSummaryHandler recomputes the summary for a date synchronously and
// returns the upserted record.
func GenerateSummaryHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		result, err := svc.Generate(c.Request.Context(), userID, c.Param("date"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetSummaryHandler returns the summary for a date, 404 when absent
func GetSummaryHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		result, err := svc.Get(c.Request.Context(), userID, c.Param("date"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateSummaryHandler merges user-authored fields into a summary
func UpdateSummaryHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var input summary.UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result, err := svc.Update(c.Request.Context(), userID, c.Param("date"), input)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteSummaryHandler removes a summary permanently
func DeleteSummaryHandler(svc *summary.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		if err := svc.Delete(c.Request.Context(), userID, c.Param("date")); err != nil {
			writeError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// PublishSummaryHandler queues blog post generation for a date's summary.
// Returns 202: rendering happens in the worker.
func PublishSummaryHandler(svc *summary.Service, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		result, err := svc.Get(c.Request.Context(), userID, c.Param("date"))
		if err != nil {
			writeError(c, err)
			return
		}

		if err := worker.EnqueuePublishBlog(result.ID); err != nil {
			logger.Error("Failed to enqueue blog publish", "summary_id", result.ID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue blog generation"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"summary_id": result.ID, "status": "queued"})
	}
}
