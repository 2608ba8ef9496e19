package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status constants
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task represents a single to-do item. Estimated and actual durations are in
// minutes; ActualMinutes is only set once work has been logged. DueDate is a
// calendar date (stored at midnight UTC, no time-of-day component).
type Task struct {
	gorm.Model
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	User             User       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	Status           string     `gorm:"not null;default:'pending';index" json:"status"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	ActualMinutes    *int       `json:"actual_minutes"`
	DueDate          *time.Time `gorm:"type:date;index" json:"due_date"`
	CompletedAt      *time.Time `json:"completed_at"`
}
