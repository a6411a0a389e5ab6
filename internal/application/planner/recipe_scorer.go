package planner

import (
	"sort"
	"strings"

	"github.com/mealforge/v1/internal/application/scoring"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Weights for the combined recipe score. They sum to 1.0 so the total is
// a convex combination of the sub-scores.
const (
	weightCost       = 0.25
	weightNutrition  = 0.30
	weightVariety    = 0.15
	weightDifficulty = 0.10
	weightPreference = 0.20
)

// RecipeScore carries a candidate recipe with its five sub-scores and the
// weighted total. Ephemeral: recomputed per generation call.
type RecipeScore struct {
	Recipe     *recipe.Recipe
	Cost       float64
	Nutrition  float64
	Variety    float64
	Difficulty float64
	Preference float64
	Total      float64
}

// RecipeScorer combines cost, nutrition, variety, difficulty and learned
// preference into one weighted total per candidate
type RecipeScorer struct {
	prefs PreferenceScorer
}

// NewRecipeScorer creates a recipe scorer
func NewRecipeScorer() RecipeScorer {
	return RecipeScorer{}
}

// ScoreAll scores every candidate and returns them sorted descending by
// total score. The sort is stable: ties keep catalog iteration order.
func (s RecipeScorer) ScoreAll(
	candidates []*recipe.Recipe,
	target NutritionalTarget,
	dailyBudget *float64,
	profile *preference.Profile,
) []RecipeScore {
	scored := make([]RecipeScore, 0, len(candidates))
	for _, rec := range candidates {
		scored = append(scored, s.Score(rec, target, dailyBudget, profile))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}

// Score computes the five sub-scores and the weighted total for one recipe
func (s RecipeScorer) Score(
	rec *recipe.Recipe,
	target NutritionalTarget,
	dailyBudget *float64,
	profile *preference.Profile,
) RecipeScore {
	score := RecipeScore{
		Recipe:     rec,
		Cost:       costScore(rec, dailyBudget),
		Nutrition:  nutritionScore(rec, target),
		Variety:    varietyScore(rec, profile),
		Difficulty: difficultyScore(rec, profile),
		Preference: s.prefs.Score(profile, rec),
	}
	score.Total = weightCost*score.Cost +
		weightNutrition*score.Nutrition +
		weightVariety*score.Variety +
		weightDifficulty*score.Difficulty +
		weightPreference*score.Preference
	return score
}

// costScore rates a recipe against the daily budget. Missing cost data
// degrades to neutral; a missing budget constraint to a fixed good score.
func costScore(rec *recipe.Recipe, dailyBudget *float64) float64 {
	if !rec.HasCost() {
		return neutralScore
	}
	if dailyBudget == nil || *dailyBudget <= 0 {
		return 0.8
	}

	ratio := rec.CostPerServing() / *dailyBudget
	switch {
	case ratio <= 0.5:
		return 1.0
	case ratio <= 1.0:
		return 0.8
	case ratio <= 1.5:
		return 0.4
	default:
		return 0.1
	}
}

// nutritionScore compares the recipe against the meal type's share of the
// daily target, using the same ratio-similarity shape the substitution
// scorer uses: 0.6 calorie similarity + 0.4 macro similarity.
func nutritionScore(rec *recipe.Recipe, target NutritionalTarget) float64 {
	nutrition := rec.Nutrition()
	if nutrition == nil || nutrition.IsZero() {
		return neutralScore
	}

	slot := target.ForMealType(rec.MealType())

	calorieSim := scoring.RatioSimilarity(nutrition.Calories, slot.Calories)
	macroSim := (scoring.RatioSimilarity(nutrition.Protein, slot.ProteinG) +
		scoring.RatioSimilarity(nutrition.Carbs, slot.CarbsG) +
		scoring.RatioSimilarity(nutrition.Fat, slot.FatG)) / 3

	return 0.6*calorieSim + 0.4*macroSim
}

// varietyScore starts neutral, rewards favorite cuisines and penalizes
// disliked ingredients
func varietyScore(rec *recipe.Recipe, profile *preference.Profile) float64 {
	score := neutralScore
	if profile == nil {
		return score
	}

	if profile.IsFavoriteCuisine(rec.Cuisine()) {
		score += 0.3
	}

	text := rec.IngredientText()
	for _, disliked := range profile.DislikedIngredients {
		if disliked != "" && containsFold(text, disliked) {
			score -= 0.2
			break
		}
	}

	return scoring.Clamp01(score)
}

// difficultyScore maps recipe difficulty against user experience:
// exact match 1.0, off-by-one 0.7, else 0.3. Unknown experience counts
// as intermediate.
func difficultyScore(rec *recipe.Recipe, profile *preference.Profile) float64 {
	experience := preference.ExperienceIntermediate
	if profile != nil && profile.Experience != "" {
		experience = profile.Experience
	}

	distance := rec.Difficulty().Rank() - experience.Rank()
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0.3
	}
}

// containsFold matches a needle against the already-lowercased ingredient text
func containsFold(text, needle string) bool {
	return strings.Contains(text, strings.ToLower(needle))
}
