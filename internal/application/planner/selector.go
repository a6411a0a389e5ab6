package planner

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Fixed per-serving cost fallbacks by meal type, applied when a recipe
// carries no cost data
var costFallbacks = map[recipe.MealType]float64{
	recipe.MealTypeBreakfast: 3.50,
	recipe.MealTypeLunch:     5.00,
	recipe.MealTypeDinner:    7.50,
	recipe.MealTypeSnack:     2.00,
}

// FallbackCost returns the fixed per-serving estimate for a meal type,
// used when a recipe carries no cost data
func FallbackCost(mealType recipe.MealType) float64 {
	return costFallbacks[mealType]
}

// MealSelector greedily fills the day-by-meal-type grid from scored
// candidates under a soft no-repeat rule
type MealSelector struct {
	prefs PreferenceScorer
}

// NewMealSelector creates a meal selector
func NewMealSelector() MealSelector {
	return MealSelector{}
}

// Select walks the (day, meal type) grid in order and picks the best
// candidate for each slot. Deterministic: given the same sorted input the
// same plan comes out. Slots with no candidates at all are skipped, not
// errors. If the scored list is empty (scoring degraded upstream), a
// minimal preference-only scoring of the raw pool keeps generation alive.
func (s MealSelector) Select(
	req mealplan.GenerationRequest,
	scored []RecipeScore,
	pool []*recipe.Recipe,
	profile *preference.Profile,
) []mealplan.MealSlot {
	if len(scored) == 0 {
		scored = s.rescoreFromPool(pool, profile)
	}

	byMealType := make(map[recipe.MealType][]RecipeScore)
	for _, sc := range scored {
		mt := sc.Recipe.MealType()
		byMealType[mt] = append(byMealType[mt], sc)
	}

	used := make(map[uuid.UUID]struct{})
	var slots []mealplan.MealSlot

	for day := 1; day <= req.DurationDays(); day++ {
		for _, mealType := range req.MealTypes() {
			candidates := byMealType[mealType]
			if len(candidates) == 0 {
				continue
			}

			// Variety first: restrict to unused recipes when any exist,
			// fall back to repeats rather than leaving a gap.
			pick := candidates[0]
			for _, c := range candidates {
				if _, taken := used[c.Recipe.ID()]; !taken {
					pick = c
					break
				}
			}

			cost := pick.Recipe.CostPerServing()
			if cost <= 0 {
				cost = costFallbacks[mealType]
			}

			var nutrition recipe.NutritionInfo
			if n := pick.Recipe.Nutrition(); n != nil {
				nutrition = *n
			}

			slots = append(slots, mealplan.MealSlot{
				Day:           day,
				MealType:      mealType,
				RecipeID:      pick.Recipe.ID(),
				RecipeName:    pick.Recipe.Name(),
				Score:         pick.Total,
				EstimatedCost: cost,
				Nutrition:     nutrition,
			})
			used[pick.Recipe.ID()] = struct{}{}
		}
	}

	return slots
}

// rescoreFromPool builds a minimal scored list directly from the raw
// candidate pool using only the preference score, so generation proceeds
// in degraded mode instead of failing outright. The result is sorted the
// same way as the full scoring path so selection still picks the best
// candidate first.
func (s MealSelector) rescoreFromPool(pool []*recipe.Recipe, profile *preference.Profile) []RecipeScore {
	scored := make([]RecipeScore, 0, len(pool))
	for _, rec := range pool {
		p := s.prefs.Score(profile, rec)
		scored = append(scored, RecipeScore{
			Recipe:     rec,
			Preference: p,
			Total:      p,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}
