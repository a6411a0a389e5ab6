package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// PlanRepository implements the meal plan repository using GORM with
// optimistic version checking on Commit
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// Create stores a newly generated plan
func (r *PlanRepository) Create(ctx context.Context, plan *mealplan.MealPlan) error {
	model := PlanToModel(plan)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID returns the plan owned by the user, (nil, nil) when absent
func (r *PlanRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel

	result := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToPlan(&model), nil
}

// Commit updates a mutated plan only when the stored row still carries
// expectedVersion, then bumps the plan's version. A zero-row update means
// a concurrent commit won.
func (r *PlanRepository) Commit(ctx context.Context, plan *mealplan.MealPlan, expectedVersion int64) error {
	model := PlanToModel(plan)
	model.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&MealPlanModel{}).
		Where("id = ? AND version = ?", plan.ID(), expectedVersion).
		Updates(map[string]interface{}{
			"version":    model.Version,
			"slots":      model.Slots,
			"history":    model.History,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&MealPlanModel{}).
			Where("id = ?", plan.ID()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return mealplan.ErrPlanNotFound
		}
		return mealplan.ErrVersionConflict
	}

	plan.IncrementVersion()
	return nil
}
