package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// PlanRepository implements an in-memory meal plan store with optimistic
// version checking on Commit
type PlanRepository struct {
	plans map[uuid.UUID]mealplan.PlanSnapshot
	mutex sync.RWMutex
}

// NewPlanRepository creates an in-memory plan repository
func NewPlanRepository() outbound.PlanRepository {
	return &PlanRepository{
		plans: make(map[uuid.UUID]mealplan.PlanSnapshot),
	}
}

// Create stores a newly generated plan
func (r *PlanRepository) Create(ctx context.Context, plan *mealplan.MealPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plans[plan.ID()] = plan.ToSnapshot()
	return nil
}

// FindByID returns the plan owned by the user, (nil, nil) when absent
func (r *PlanRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	snapshot, exists := r.plans[id]
	if !exists || snapshot.UserID != userID {
		return nil, nil
	}
	return mealplan.Reconstitute(snapshot), nil
}

// Commit stores a mutated plan when the stored version still matches
// expectedVersion, then bumps the plan's version
func (r *PlanRepository) Commit(ctx context.Context, plan *mealplan.MealPlan, expectedVersion int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, exists := r.plans[plan.ID()]
	if !exists {
		return mealplan.ErrPlanNotFound
	}
	if stored.Version != expectedVersion {
		return mealplan.ErrVersionConflict
	}

	plan.IncrementVersion()
	r.plans[plan.ID()] = plan.ToSnapshot()
	return nil
}
