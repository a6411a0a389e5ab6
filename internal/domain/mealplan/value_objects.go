package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// Value Objects - Immutable objects that describe aspects of the domain

// MealSlot is one (day, meal type) assignment of a single recipe.
// Nutrition and cost are denormalized onto the slot so the plan's
// summaries stay recomputable from its slots alone.
type MealSlot struct {
	Day           int // 1..duration
	MealType      recipe.MealType
	RecipeID      uuid.UUID
	RecipeName    string
	Score         float64 // selection score at generation time
	EstimatedCost float64 // per-serving USD
	Nutrition     recipe.NutritionInfo
}

// SlotRecipe is the recipe snapshot written into a slot by a substitution
// or its undo
type SlotRecipe struct {
	RecipeID      uuid.UUID
	RecipeName    string
	EstimatedCost float64
	Nutrition     recipe.NutritionInfo
}

// SubstitutionRecord is one append-only history entry
type SubstitutionRecord struct {
	MealIndex        int
	OriginalRecipeID uuid.UUID
	NewRecipeID      uuid.UUID
	Timestamp        time.Time
}

// NutritionSummary aggregates calories and macros across slots
type NutritionSummary struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Add accumulates a recipe's nutrition into the summary
func (s *NutritionSummary) Add(n recipe.NutritionInfo) {
	s.Calories += n.Calories
	s.Protein += n.Protein
	s.Carbs += n.Carbs
	s.Fat += n.Fat
}

// DailySummary is the per-day nutrition and cost breakdown
type DailySummary struct {
	Day       int
	Nutrition NutritionSummary
	Cost      float64
}

// ComputeSummary derives the overall summary, per-day breakdown and total
// cost purely from the slots. Slots with missing nutrition contribute zero,
// never an error, so totals are always computable.
func ComputeSummary(slots []MealSlot, durationDays int) (NutritionSummary, []DailySummary, float64) {
	var overall NutritionSummary
	var totalCost float64

	days := durationDays
	for _, slot := range slots {
		if slot.Day > days {
			days = slot.Day
		}
	}

	daily := make([]DailySummary, days)
	for i := range daily {
		daily[i].Day = i + 1
	}

	for _, slot := range slots {
		overall.Add(slot.Nutrition)
		totalCost += slot.EstimatedCost

		if slot.Day >= 1 && slot.Day <= days {
			d := &daily[slot.Day-1]
			d.Nutrition.Add(slot.Nutrition)
			d.Cost += slot.EstimatedCost
		}
	}

	return overall, daily, totalCost
}
