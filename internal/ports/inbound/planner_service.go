// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// PlannerService defines the meal plan generation use cases
type PlannerService interface {
	// Commands - operations that modify state
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (*MealPlanDTO, error)
	RegenerateMealPlan(ctx context.Context, userID, planID uuid.UUID) (*MealPlanDTO, error)

	// Preference signals
	RecordSwipe(ctx context.Context, cmd RecordSwipeCommand) error
	RateRecipe(ctx context.Context, cmd RateRecipeCommand) error
	SetIngredientPreference(ctx context.Context, cmd IngredientPreferenceCommand) error
	SetCuisinePreference(ctx context.Context, cmd CuisinePreferenceCommand) error

	// Queries - operations that read state
	GetMealPlan(ctx context.Context, planID, userID uuid.UUID) (*MealPlanDTO, error)
}

// SubstitutionService defines the meal substitution use cases
type SubstitutionService interface {
	FindSubstitutes(ctx context.Context, query SubstitutionSearchQuery) ([]SubstitutionCandidateDTO, error)
	ApplySubstitution(ctx context.Context, cmd ApplySubstitutionCommand) (*MealPlanDTO, error)
	UndoSubstitution(ctx context.Context, planID, userID uuid.UUID) (*MealPlanDTO, error)
}

// Command objects for operations

// GenerateMealPlanCommand contains data for generating a new plan
type GenerateMealPlanCommand struct {
	UserID          uuid.UUID
	DurationDays    int
	StartDate       time.Time // zero value defaults to today
	BudgetOverride  *float64  // USD total for the whole period
	IncludeSnacks   bool
	ForceRegenerate bool
}

// RecordSwipeCommand records a like/dislike reaction to a recipe
type RecordSwipeCommand struct {
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Action   preference.SwipeAction
}

// RateRecipeCommand records an explicit 1-5 rating
type RateRecipeCommand struct {
	UserID   uuid.UUID
	RecipeID uuid.UUID
	Rating   int
}

// IngredientPreferenceCommand records a liked or disliked ingredient
type IngredientPreferenceCommand struct {
	UserID     uuid.UUID
	Ingredient string
	Liked      bool
}

// CuisinePreferenceCommand records a 1-5 cuisine rating
type CuisinePreferenceCommand struct {
	UserID  uuid.UUID
	Cuisine recipe.CuisineType
	Rating  int
}

// SubstitutionSearchQuery asks for alternatives to one meal slot
type SubstitutionSearchQuery struct {
	PlanID               uuid.UUID
	MealIndex            int
	UserID               uuid.UUID
	MaxAlternatives      int     // 0 defaults to 5
	NutritionalTolerance float64 // 0 defaults to 0.15 (±15% calories)
}

// ApplySubstitutionCommand swaps one slot's recipe
type ApplySubstitutionCommand struct {
	PlanID      uuid.UUID
	MealIndex   int
	NewRecipeID uuid.UUID
	UserID      uuid.UUID
}

// Response DTOs

// MealPlanDTO is the data transfer object for meal plans
type MealPlanDTO struct {
	ID               uuid.UUID               `json:"id"`
	UserID           uuid.UUID               `json:"user_id"`
	StartDate        string                  `json:"start_date"`
	DurationDays     int                     `json:"duration_days"`
	IncludeSnacks    bool                    `json:"include_snacks"`
	Slots            []MealSlotDTO           `json:"slots"`
	Summary          NutritionSummaryDTO     `json:"summary"`
	DailySummaries   []DailySummaryDTO       `json:"daily_summaries"`
	TotalCost        float64                 `json:"total_cost"`
	DailyBudget      *float64                `json:"daily_budget,omitempty"`
	Restrictions     []string                `json:"dietary_restrictions,omitempty"`
	AlgorithmVersion string                  `json:"algorithm_version"`
	History          []SubstitutionRecordDTO `json:"substitution_history,omitempty"`
	Version          int64                   `json:"version"`
	CreatedAt        string                  `json:"created_at"`
	UpdatedAt        string                  `json:"updated_at"`
}

// MealSlotDTO is one (day, meal type) slot in a plan
type MealSlotDTO struct {
	MealIndex     int                 `json:"meal_index"`
	Day           int                 `json:"day"`
	MealType      recipe.MealType     `json:"meal_type"`
	RecipeID      uuid.UUID           `json:"recipe_id"`
	RecipeName    string              `json:"recipe_name"`
	Score         float64             `json:"score"`
	EstimatedCost float64             `json:"estimated_cost"`
	Nutrition     NutritionSummaryDTO `json:"nutrition"`
}

// NutritionSummaryDTO carries calories and macros
type NutritionSummaryDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailySummaryDTO is the per-day breakdown
type DailySummaryDTO struct {
	Day       int                 `json:"day"`
	Nutrition NutritionSummaryDTO `json:"nutrition"`
	Cost      float64             `json:"cost"`
}

// SubstitutionRecordDTO is one history entry
type SubstitutionRecordDTO struct {
	MealIndex        int       `json:"meal_index"`
	OriginalRecipeID uuid.UUID `json:"original_recipe_id"`
	NewRecipeID      uuid.UUID `json:"new_recipe_id"`
	Timestamp        string    `json:"timestamp"`
}

// SubstitutionCandidateDTO is one ranked replacement candidate
type SubstitutionCandidateDTO struct {
	RecipeID        uuid.UUID             `json:"recipe_id"`
	RecipeName      string                `json:"recipe_name"`
	Cuisine         recipe.CuisineType    `json:"cuisine"`
	PrepTimeMinutes int                   `json:"prep_time_minutes"`
	CostPerServing  float64               `json:"cost_per_serving"`
	TotalScore      float64               `json:"total_score"`
	Scores          SubstitutionScoresDTO `json:"scores"`
	Impact          SubstitutionImpactDTO `json:"impact"`
}

// SubstitutionScoresDTO carries the four sub-scores
type SubstitutionScoresDTO struct {
	NutritionSimilarity float64 `json:"nutrition_similarity"`
	UserPreference      float64 `json:"user_preference"`
	CostEfficiency      float64 `json:"cost_efficiency"`
	PrepTimeMatch       float64 `json:"prep_time_match"`
}

// SubstitutionImpactDTO describes how a substitution shifts the day
type SubstitutionImpactDTO struct {
	NutrientDeltas NutritionSummaryDTO `json:"nutrient_deltas"`
	NewDailyTotals NutritionSummaryDTO `json:"new_daily_totals"`
	CostDelta      float64             `json:"cost_delta"`
	Level          string              `json:"level"` // minimal, moderate, significant
}
