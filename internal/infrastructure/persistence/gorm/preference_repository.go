package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// PreferenceRepository implements the persistent preference store variant
// using GORM. Each signal write loads the profile, mutates it through the
// domain and upserts the row.
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) outbound.PreferenceStore {
	return &PreferenceRepository{db: db}
}

// Get returns the stored profile, (nil, nil) for unknown users
func (r *PreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*preference.Profile, error) {
	var model PreferenceProfileModel

	result := r.db.WithContext(ctx).First(&model, "user_id = ?", userID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToProfile(&model), nil
}

// RecordSwipe stores a like/dislike reaction
func (r *PreferenceRepository) RecordSwipe(ctx context.Context, userID, recipeID uuid.UUID, action preference.SwipeAction) error {
	return r.mutate(ctx, userID, func(p *preference.Profile) error {
		p.RecordSwipe(recipeID, action)
		return nil
	})
}

// SetRating stores an explicit recipe rating
func (r *PreferenceRepository) SetRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) error {
	return r.mutate(ctx, userID, func(p *preference.Profile) error {
		return p.SetRating(recipeID, rating)
	})
}

// SetIngredientPreference stores a liked or disliked ingredient
func (r *PreferenceRepository) SetIngredientPreference(ctx context.Context, userID uuid.UUID, ingredient string, liked bool) error {
	return r.mutate(ctx, userID, func(p *preference.Profile) error {
		p.SetIngredientPreference(ingredient, liked)
		return nil
	})
}

// SetCuisinePreference stores a cuisine rating
func (r *PreferenceRepository) SetCuisinePreference(ctx context.Context, userID uuid.UUID, cuisine recipe.CuisineType, rating int) error {
	return r.mutate(ctx, userID, func(p *preference.Profile) error {
		return p.SetCuisineRating(cuisine, rating)
	})
}

// mutate runs a domain mutation against the user's profile inside a
// transaction, creating the profile on first write
func (r *PreferenceRepository) mutate(ctx context.Context, userID uuid.UUID, fn func(*preference.Profile) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model PreferenceProfileModel
		profile := preference.NewProfile(userID)

		result := tx.First(&model, "user_id = ?", userID)
		if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		if result.Error == nil {
			profile = ModelToProfile(&model)
		}

		if err := fn(profile); err != nil {
			return err
		}

		return tx.Save(ProfileToModel(profile)).Error
	})
}
