package habits

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

type createHabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type logHabitRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

// CreateHabitHandler creates a new habit for the authenticated user
func CreateHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var req createHabitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		habit := models.Habit{
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
			Active:      true,
		}
		if err := db.Create(&habit).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create habit"})
			return
		}

		c.JSON(http.StatusCreated, habit)
	}
}

// ListHabitsHandler returns all of the user's habits
func ListHabitsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var habits []models.Habit
		if err := db.Where("user_id = ?", userID).Order("id ASC").Find(&habits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list habits"})
			return
		}

		c.JSON(http.StatusOK, habits)
	}
}

// GetHabitHandler returns one habit with its computed streaks
func GetHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var habit models.Habit
		if err := db.Where("user_id = ?", userID).First(&habit, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}

		var logs []models.HabitLog
		if err := db.Where("habit_id = ?", habit.ID).Order("log_date ASC").Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load habit logs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"habit":   habit,
			"streaks": ComputeStreaks(logs, util.Today()),
			"logs":    logs,
		})
	}
}

// LogHabitHandler records that a habit was done on a date (default today).
// Logging the same day twice is a no-op.
func LogHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var habit models.Habit
		if err := db.Where("user_id = ?", userID).First(&habit, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}

		var req logHabitRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		day := util.Today()
		if req.Date != "" {
			parsed, err := util.ParseDate(req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
				return
			}
			day = parsed
		}

		log := models.HabitLog{HabitID: habit.ID, UserID: userID, LogDate: day}
		err := db.Where("habit_id = ? AND log_date = ?", habit.ID, day).FirstOrCreate(&log).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log habit"})
			return
		}

		c.JSON(http.StatusOK, log)
	}
}

// DeleteHabitHandler removes a habit and its logs
func DeleteHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		res := db.Where("user_id = ?", userID).Delete(&models.Habit{}, c.Param("id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete habit"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
