package planner

import (
	"strings"

	"github.com/mealforge/v1/internal/application/scoring"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Signal weights for the preference score. Absent signals are omitted from
// both numerator and denominator, not treated as zero.
const (
	weightSwipe      = 0.6
	weightRating     = 0.4
	weightIngredient = 0.2
	weightCuisine    = 0.2
	weightPrepTime   = 0.1
)

const neutralScore = 0.5

// PreferenceScorer folds swipe, rating, ingredient, cuisine and prep-time
// signals into one 0-1 score per recipe for a user
type PreferenceScorer struct{}

type signal struct {
	value  float64
	weight float64
}

// Score returns the weighted mean over the signals that exist for this
// user/recipe pair. A user with no stored signals scores neutral 0.5.
func (s PreferenceScorer) Score(profile *preference.Profile, rec *recipe.Recipe) float64 {
	if profile == nil {
		return neutralScore
	}

	var signals []signal

	if action, ok := profile.Swipes[rec.ID()]; ok {
		value := 0.0
		if action == preference.SwipeLike {
			value = 1.0
		}
		signals = append(signals, signal{value, weightSwipe})
	}

	if rating, ok := profile.Ratings[rec.ID()]; ok {
		signals = append(signals, signal{float64(rating-1) / 4, weightRating})
	}

	if value, matched := ingredientScore(profile, rec); matched {
		signals = append(signals, signal{value, weightIngredient})
	}

	if rating, ok := profile.CuisineRatings[rec.Cuisine()]; ok {
		signals = append(signals, signal{float64(rating-1) / 4, weightCuisine})
	}

	if profile.PrepTimePreference != "" {
		signals = append(signals, signal{prepTimeScore(profile.PrepTimePreference, rec.PrepBand()), weightPrepTime})
	}

	if len(signals) == 0 {
		return neutralScore
	}

	var sum, weights float64
	for _, sig := range signals {
		sum += sig.value * sig.weight
		weights += sig.weight
	}
	return sum / weights
}

// ingredientScore scans the recipe's ingredient text for liked and
// disliked matches, starting from 0.5. The second return reports whether
// any ingredient matched at all; unmatched recipes contribute no signal.
func ingredientScore(profile *preference.Profile, rec *recipe.Recipe) (float64, bool) {
	text := rec.IngredientText()
	if text == "" {
		return 0, false
	}

	score := neutralScore
	matched := false

	for _, liked := range profile.LikedIngredients {
		if liked != "" && strings.Contains(text, strings.ToLower(liked)) {
			score += 0.1
			matched = true
		}
	}
	for _, disliked := range profile.DislikedIngredients {
		if disliked != "" && strings.Contains(text, strings.ToLower(disliked)) {
			score -= 0.2
			matched = true
		}
	}

	return scoring.Clamp01(score), matched
}

// prepTimeScore compares the recipe's prep band against the preferred one:
// exact match 1.0, adjacent band 0.7, opposite 0.4
func prepTimeScore(preferred recipe.PrepBand, band recipe.PrepBand) float64 {
	distance := preferred.Rank() - band.Rank()
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0.4
	}
}
