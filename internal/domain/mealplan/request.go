package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// Duration bounds for a generation request
const (
	MinDurationDays = 1
	MaxDurationDays = 7
)

// GenerationRequest is an immutable, validated request for plan generation
type GenerationRequest struct {
	userID          uuid.UUID
	durationDays    int
	startDate       time.Time
	budgetOverride  *float64 // USD total for the whole period
	includeSnacks   bool
	forceRegenerate bool
}

// GenerationParams carries the raw inputs for a GenerationRequest
type GenerationParams struct {
	UserID          uuid.UUID
	DurationDays    int
	StartDate       time.Time // zero value defaults to today
	BudgetOverride  *float64
	IncludeSnacks   bool
	ForceRegenerate bool
}

// NewGenerationRequest validates the parameters and builds an immutable
// request. Durations outside 1..7 are rejected at construction.
func NewGenerationRequest(p GenerationParams) (GenerationRequest, error) {
	if p.DurationDays < MinDurationDays || p.DurationDays > MaxDurationDays {
		return GenerationRequest{}, ErrInvalidDuration
	}

	start := p.StartDate
	if start.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	return GenerationRequest{
		userID:          p.UserID,
		durationDays:    p.DurationDays,
		startDate:       start,
		budgetOverride:  p.BudgetOverride,
		includeSnacks:   p.IncludeSnacks,
		forceRegenerate: p.ForceRegenerate,
	}, nil
}

// UserID returns the requesting user's identifier
func (r GenerationRequest) UserID() uuid.UUID {
	return r.userID
}

// DurationDays returns the plan length in days
func (r GenerationRequest) DurationDays() int {
	return r.durationDays
}

// StartDate returns the plan's first day
func (r GenerationRequest) StartDate() time.Time {
	return r.startDate
}

// BudgetOverride returns the explicit total budget, nil when absent
func (r GenerationRequest) BudgetOverride() *float64 {
	return r.budgetOverride
}

// IncludeSnacks reports whether a snack slot is requested per day
func (r GenerationRequest) IncludeSnacks() bool {
	return r.includeSnacks
}

// ForceRegenerate reports whether the caller asked for a fresh plan
func (r GenerationRequest) ForceRegenerate() bool {
	return r.forceRegenerate
}

// MealTypes returns the meal types to fill for each day, in grid order
func (r GenerationRequest) MealTypes() []recipe.MealType {
	types := []recipe.MealType{
		recipe.MealTypeBreakfast,
		recipe.MealTypeLunch,
		recipe.MealTypeDinner,
	}
	if r.includeSnacks {
		types = append(types, recipe.MealTypeSnack)
	}
	return types
}
