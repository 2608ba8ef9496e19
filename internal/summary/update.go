package summary

import (
	"context"
	"errors"

	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"gorm.io/datatypes"
)

// UpdateInput carries the user-authored summary fields. Nil pointers mean
// "leave untouched"; a pointer to the zero value overwrites.
type UpdateInput struct {
	MoodRating    *int      `json:"mood_rating"`
	EnergyRating  *int      `json:"energy_rating"`
	Notes         *string   `json:"notes"`
	Achievements  *[]string `json:"achievements"`
	Challenges    *[]string `json:"challenges"`
	TomorrowGoals *[]string `json:"tomorrow_goals"`
	BlogGenerated *bool     `json:"blog_generated"`
	BlogPostID    *uint     `json:"blog_post_id"`
}

// Update merges the supplied fields into the summary for (userID, date),
// creating the row (with zero-valued aggregates) if it does not exist yet.
// Mood and energy ratings must be integers in [1, 5]; out-of-range values are
// rejected with a ValidationError before any store call, never clamped.
func (s *Service) Update(ctx context.Context, userID uint, date string, in UpdateInput) (*models.DailySummary, error) {
	day, err := s.parseInputs(userID, date)
	if err != nil {
		return nil, err
	}
	if err := validateRating("mood_rating", in.MoodRating); err != nil {
		return nil, err
	}
	if err := validateRating("energy_rating", in.EnergyRating); err != nil {
		return nil, err
	}

	existing, err := s.summaries.GetByDate(ctx, userID, day)
	created := false
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		existing = &models.DailySummary{UserID: userID, SummaryDate: day}
		created = true
	default:
		return nil, opError("update summary", userID, date, err)
	}

	applyUpdate(existing, in)

	if created {
		err = s.summaries.Insert(ctx, existing)
	} else {
		err = s.summaries.Save(ctx, existing)
	}
	if err != nil {
		return nil, opError("update summary", userID, date, err)
	}

	s.logger.Info("Summary updated", "user_id", userID, "date", date, "created", created)
	return existing, nil
}

func applyUpdate(dst *models.DailySummary, in UpdateInput) {
	if in.MoodRating != nil {
		dst.MoodRating = in.MoodRating
	}
	if in.EnergyRating != nil {
		dst.EnergyRating = in.EnergyRating
	}
	if in.Notes != nil {
		dst.Notes = *in.Notes
	}
	if in.Achievements != nil {
		dst.Achievements = datatypes.NewJSONSlice(*in.Achievements)
	}
	if in.Challenges != nil {
		dst.Challenges = datatypes.NewJSONSlice(*in.Challenges)
	}
	if in.TomorrowGoals != nil {
		dst.TomorrowGoals = datatypes.NewJSONSlice(*in.TomorrowGoals)
	}
	if in.BlogGenerated != nil {
		dst.BlogGenerated = *in.BlogGenerated
	}
	if in.BlogPostID != nil {
		dst.BlogPostID = in.BlogPostID
	}
}

func validateRating(field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 5 {
		return validationErr(field, "must be an integer between 1 and 5, got %d", *v)
	}
	return nil
}
