package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an application user. Authentication happens upstream (auth
// proxy); this service only resolves the identity header to a user row.
type User struct {
	gorm.Model
	Email      string     `gorm:"uniqueIndex:idx_users_email_not_deleted,where:deleted_at IS NULL;not null" json:"email"`
	Name       string     `gorm:"not null;default:''" json:"name"`
	Timezone   string     `gorm:"not null;default:'UTC'" json:"timezone"`
	LastSeenAt *time.Time `json:"last_seen_at"`

	// Associations
	Tasks     []Task         `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Summaries []DailySummary `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Habits    []Habit        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
