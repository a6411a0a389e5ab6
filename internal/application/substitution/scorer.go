// Package substitution provides the meal substitution engine: finding
// ranked alternatives for one slot, applying a swap with history, and
// single-level undo.
package substitution

import (
	"strings"

	"github.com/mealforge/v1/internal/application/planner"
	"github.com/mealforge/v1/internal/application/scoring"
	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Weights for the substitution score. Nutrition similarity dominates so
// swaps stay close to what the slot already contributes.
const (
	weightNutrition  = 0.40
	weightPreference = 0.30
	weightCost       = 0.20
	weightPrepTime   = 0.10
)

const neutralScore = 0.5

// Scores carries the four sub-scores and the weighted total for one
// candidate against one slot
type Scores struct {
	NutritionSimilarity float64
	UserPreference      float64
	CostEfficiency      float64
	PrepTimeMatch       float64
	Total               float64
}

// Scorer rates replacement candidates against the slot they would fill
type Scorer struct {
	prefs planner.PreferenceScorer
}

// NewScorer creates a substitution scorer
func NewScorer() Scorer {
	return Scorer{}
}

// Score rates one candidate against the current slot. The current recipe
// may be nil when it no longer exists in the catalog; prep-time matching
// then degrades to neutral.
func (s Scorer) Score(candidate *recipe.Recipe, slot mealplan.MealSlot, current *recipe.Recipe, profile *preference.Profile) Scores {
	scores := Scores{
		NutritionSimilarity: nutritionSimilarity(candidate, slot),
		UserPreference:      s.preferenceScore(candidate, profile),
		CostEfficiency:      costEfficiency(candidate, slot),
		PrepTimeMatch:       prepTimeMatch(candidate, current),
	}
	scores.Total = weightNutrition*scores.NutritionSimilarity +
		weightPreference*scores.UserPreference +
		weightCost*scores.CostEfficiency +
		weightPrepTime*scores.PrepTimeMatch
	return scores
}

// nutritionSimilarity compares the candidate against the slot's current
// nutrition: 0.6 calorie similarity + 0.4 mean macro similarity. Missing
// nutrition on either side scores neutral.
func nutritionSimilarity(candidate *recipe.Recipe, slot mealplan.MealSlot) float64 {
	n := candidate.Nutrition()
	if n == nil || n.IsZero() || slot.Nutrition.IsZero() {
		return neutralScore
	}

	calorieSim := scoring.RatioSimilarity(n.Calories, slot.Nutrition.Calories)
	macroSim := (scoring.RatioSimilarity(n.Protein, slot.Nutrition.Protein) +
		scoring.RatioSimilarity(n.Carbs, slot.Nutrition.Carbs) +
		scoring.RatioSimilarity(n.Fat, slot.Nutrition.Fat)) / 3

	return 0.6*calorieSim + 0.4*macroSim
}

// preferenceScore starts neutral, shifts by the stored cuisine rating and
// by each liked/disliked ingredient match, then averages with the general
// preference score so swipe and rating history also weigh in
func (s Scorer) preferenceScore(candidate *recipe.Recipe, profile *preference.Profile) float64 {
	if profile == nil {
		return neutralScore
	}

	score := neutralScore
	if rating, ok := profile.CuisineRatings[candidate.Cuisine()]; ok {
		score += 0.1 * float64(rating-3)
	}

	text := candidate.IngredientText()
	if text != "" {
		for _, liked := range profile.LikedIngredients {
			if liked != "" && containsIngredient(text, liked) {
				score += 0.1
			}
		}
		for _, disliked := range profile.DislikedIngredients {
			if disliked != "" && containsIngredient(text, disliked) {
				score -= 0.2
			}
		}
	}

	general := s.prefs.Score(profile, candidate)
	return scoring.Clamp01((score + general) / 2)
}

// costEfficiency compares candidate cost against the slot's current
// estimated cost by ratio similarity. Missing cost on either side scores
// neutral rather than penalizing.
func costEfficiency(candidate *recipe.Recipe, slot mealplan.MealSlot) float64 {
	if !candidate.HasCost() || slot.EstimatedCost <= 0 {
		return neutralScore
	}
	return scoring.RatioSimilarity(candidate.CostPerServing(), slot.EstimatedCost)
}

// prepTimeMatch scores 1 - |delta|/max over prep minutes, neutral when
// either side has no prep time recorded
func prepTimeMatch(candidate, current *recipe.Recipe) float64 {
	if current == nil {
		return neutralScore
	}

	a := float64(candidate.PrepTimeMinutes())
	b := float64(current.PrepTimeMinutes())
	if a <= 0 || b <= 0 {
		return neutralScore
	}

	max := a
	if b > max {
		max = b
	}
	delta := a - b
	if delta < 0 {
		delta = -delta
	}
	return 1 - delta/max
}

// containsIngredient matches a needle against the lowercased ingredient text
func containsIngredient(text, needle string) bool {
	return strings.Contains(text, strings.ToLower(needle))
}
