package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/util"
)

// SeedDevData populates the database with development test data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	var existingUser models.User
	result := db.Where("email = ?", "dev@dayloop.local").First(&existingUser)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	user := models.User{
		Email:    "dev@dayloop.local",
		Name:     "Dev User",
		Timezone: "America/Chicago",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	intPtr := func(v int) *int { return &v }
	today := util.Today()
	yesterday := today.AddDate(0, 0, -1)
	now := time.Now().UTC()

	tasks := []models.Task{
		{UserID: user.ID, Title: "Write weekly report", Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(60), ActualMinutes: intPtr(55), DueDate: &yesterday, CompletedAt: &now},
		{UserID: user.ID, Title: "Review pull requests", Status: models.TaskStatusCompleted, EstimatedMinutes: intPtr(45), ActualMinutes: intPtr(70), DueDate: &yesterday, CompletedAt: &now},
		{UserID: user.ID, Title: "Plan next sprint", Status: models.TaskStatusPending, EstimatedMinutes: intPtr(30), DueDate: &yesterday},
		{UserID: user.ID, Title: "Prepare demo", Status: models.TaskStatusInProgress, EstimatedMinutes: intPtr(90), DueDate: &today},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			return err
		}
	}

	habit := models.Habit{
		UserID:      user.ID,
		Name:        "Morning run",
		Description: "5k before work",
		Active:      true,
	}
	if err := db.Create(&habit).Error; err != nil {
		return err
	}
	for i := 3; i >= 1; i-- {
		logDate := today.AddDate(0, 0, -i)
		if err := db.Create(&models.HabitLog{HabitID: habit.ID, UserID: user.ID, LogDate: logDate}).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded dev data: 1 user, 4 tasks, 1 habit with 3 logs")
	return nil
}
