package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
	"github.com/dayloop/dayloop/internal/worker"
)

type createTaskRequest struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	EstimatedMinutes *int   `json:"estimated_minutes"`
	DueDate          string `json:"due_date"` // YYYY-MM-DD
}

type updateTaskRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Status           *string `json:"status"`
	EstimatedMinutes *int    `json:"estimated_minutes"`
	ActualMinutes    *int    `json:"actual_minutes"`
	DueDate          *string `json:"due_date"` // YYYY-MM-DD, empty string clears
}

// CreateTaskHandler creates a task and queues a summary regeneration for its
// due date.
func CreateTaskHandler(db *gorm.DB, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var req createTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		status := req.Status
		if status == "" {
			status = models.TaskStatusPending
		}
		if !models.ValidTaskStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status", "field": "status"})
			return
		}

		task := models.Task{
			UserID:           userID,
			Title:            req.Title,
			Description:      req.Description,
			Status:           status,
			EstimatedMinutes: req.EstimatedMinutes,
		}

		if req.DueDate != "" {
			due, err := util.ParseDate(req.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD", "field": "due_date"})
				return
			}
			task.DueDate = &due
		}

		if err := db.Create(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
			return
		}

		regenerateFor(logger, &task)
		c.JSON(http.StatusCreated, task)
	}
}

// ListTasksHandler lists the user's tasks, optionally filtered by due date
func ListTasksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		query := db.Where("user_id = ?", userID).Order("id ASC")
		if due := c.Query("due"); due != "" {
			day, err := util.ParseDate(due)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "due must be YYYY-MM-DD"})
				return
			}
			query = query.Where("due_date = ?", day)
		}

		var tasks []models.Task
		if err := query.Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
			return
		}

		c.JSON(http.StatusOK, tasks)
	}
}

// GetTaskHandler returns a single task
func GetTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var task models.Task
		if err := db.Where("user_id = ?", userID).First(&task, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

// UpdateTaskHandler applies a partial update. Moving a task to completed
// stamps CompletedAt; regenerations are queued for every affected due date
// (the old one too, if the date changed).
func UpdateTaskHandler(db *gorm.DB, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var task models.Task
		if err := db.Where("user_id = ?", userID).First(&task, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}

		var req updateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		previousDue := task.DueDate

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Status != nil {
			if !models.ValidTaskStatus(*req.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status", "field": "status"})
				return
			}
			if *req.Status == models.TaskStatusCompleted && task.Status != models.TaskStatusCompleted {
				now := time.Now().UTC()
				task.CompletedAt = &now
			}
			task.Status = *req.Status
		}
		if req.EstimatedMinutes != nil {
			task.EstimatedMinutes = req.EstimatedMinutes
		}
		if req.ActualMinutes != nil {
			task.ActualMinutes = req.ActualMinutes
		}
		if req.DueDate != nil {
			if *req.DueDate == "" {
				task.DueDate = nil
			} else {
				due, err := util.ParseDate(*req.DueDate)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD", "field": "due_date"})
					return
				}
				task.DueDate = &due
			}
		}

		if err := db.Save(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
			return
		}

		regenerateFor(logger, &task)
		if previousDue != nil && (task.DueDate == nil || !util.SameDate(*previousDue, *task.DueDate)) {
			queueRegeneration(logger, task.UserID, *previousDue)
		}

		c.JSON(http.StatusOK, task)
	}
}

// DeleteTaskHandler removes a task and refreshes its day's summary
func DeleteTaskHandler(db *gorm.DB, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var task models.Task
		if err := db.Where("user_id = ?", userID).First(&task, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}

		if err := db.Delete(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
			return
		}

		regenerateFor(logger, &task)
		c.Status(http.StatusNoContent)
	}
}

// regenerateFor queues a summary refresh for the task's due date, if any.
// Best effort: a full queue must not fail the task mutation itself.
func regenerateFor(logger *slog.Logger, task *models.Task) {
	if task.DueDate == nil {
		return
	}
	queueRegeneration(logger, task.UserID, *task.DueDate)
}

func queueRegeneration(logger *slog.Logger, userID uint, day time.Time) {
	date := util.FormatDate(day)
	if err := worker.EnqueueGenerateSummary(userID, date); err != nil {
		logger.Warn("Failed to enqueue summary regeneration", "user_id", userID, "date", date, "error", err.Error())
	}
}
