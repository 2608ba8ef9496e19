package models

import (
	"time"

	"github.com/dayloop/dayloop/internal/crypto"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var notesEncryptor *crypto.NotesEncryptor

// InitNotesEncryption initializes the at-rest encryptor for summary notes.
// Must be called before any database operations involving DailySummary.
// Passing an empty key leaves notes in plaintext (development mode).
func InitNotesEncryption(encryptionKey string) error {
	if encryptionKey == "" {
		notesEncryptor = nil
		return nil
	}
	var err error
	notesEncryptor, err = crypto.NewNotesEncryptor(encryptionKey)
	return err
}

// DailySummary aggregates one user's tasks for one calendar day and carries
// the user-authored reflection fields (mood, notes, achievements and so on).
//
// There is deliberately no gorm.DeletedAt here: summary deletion is explicit
// and irreversible, so the row is removed outright rather than soft-deleted.
// At most one row exists per (user_id, summary_date); regeneration updates
// the aggregate columns in place and never touches the user-authored ones.
type DailySummary struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      uint      `gorm:"not null;uniqueIndex:idx_daily_summaries_user_date" json:"user_id"`
	SummaryDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_summaries_user_date" json:"summary_date"`

	// Aggregates recomputed on every generation
	TotalTasks        int     `gorm:"not null;default:0" json:"total_tasks"`
	CompletedTasks    int     `gorm:"not null;default:0" json:"completed_tasks"`
	CompletionRate    float64 `gorm:"not null;default:0" json:"completion_rate"`
	TotalPlannedTime  int     `gorm:"not null;default:0" json:"total_planned_time"` // minutes
	TotalActualTime   int     `gorm:"not null;default:0" json:"total_actual_time"`  // minutes
	ProductivityScore float64 `gorm:"not null;default:0" json:"productivity_score"`

	// User-authored fields, preserved across regeneration
	MoodRating    *int                        `json:"mood_rating"`
	EnergyRating  *int                        `json:"energy_rating"`
	Notes         string                      `gorm:"type:text" json:"notes"` // stored encrypted when a key is configured
	Achievements  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"achievements"`
	Challenges    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"challenges"`
	TomorrowGoals datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tomorrow_goals"`

	// Blog auto-generation
	BlogGenerated bool  `gorm:"not null;default:false" json:"blog_generated"`
	BlogPostID    *uint `json:"blog_post_id"`
}

// BeforeSave encrypts notes before writing to the database.
// Always encrypts non-empty notes (GCM produces different output each time
// due to the random nonce).
func (s *DailySummary) BeforeSave(tx *gorm.DB) error {
	if notesEncryptor == nil || s.Notes == "" {
		return nil
	}
	encrypted, err := notesEncryptor.Encrypt(s.Notes)
	if err != nil {
		return err
	}
	s.Notes = encrypted
	return nil
}

// AfterSave restores the in-memory plaintext once the encrypted value has
// been written, so callers never see ciphertext on the record they hold.
func (s *DailySummary) AfterSave(tx *gorm.DB) error {
	return s.AfterFind(tx)
}

// AfterFind decrypts notes after loading from the database
func (s *DailySummary) AfterFind(tx *gorm.DB) error {
	if notesEncryptor == nil || s.Notes == "" {
		return nil
	}
	decrypted, err := notesEncryptor.Decrypt(s.Notes)
	if err != nil {
		return err
	}
	s.Notes = decrypted
	return nil
}
