package models

import (
	"time"

	"gorm.io/gorm"
)

// Habit is a recurring daily practice the user wants to keep up.
type Habit struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	Logs []HabitLog `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// HabitLog records that a habit was done on a calendar date. One row per
// (habit, date); logging the same day twice is a no-op upsert.
type HabitLog struct {
	gorm.Model
	HabitID uint      `gorm:"not null;uniqueIndex:idx_habit_logs_habit_date" json:"habit_id"`
	UserID  uint      `gorm:"not null;index" json:"user_id"`
	LogDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_logs_habit_date" json:"log_date"`
}
