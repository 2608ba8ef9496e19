package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is a markdown post rendered from a DailySummary. PublicID is the
// externally visible identifier (the numeric ID stays internal).
type BlogPost struct {
	gorm.Model
	PublicID    string    `gorm:"not null;uniqueIndex" json:"public_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	SummaryID   uint      `gorm:"not null;index" json:"summary_id"`
	Title       string    `gorm:"not null" json:"title"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	GeneratedAt time.Time `json:"generated_at"`
}
