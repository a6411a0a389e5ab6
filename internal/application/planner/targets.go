package planner

import (
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// Hardcoded fallback targets used when neither the profile nor the
// preference store carries nutrition goals
const (
	defaultDailyCalories = 2000.0
	defaultProteinPct    = 20.0
	defaultCarbPct       = 50.0
	defaultFatPct        = 30.0
)

// Per-meal-type share of the daily calorie target
const (
	shareBreakfast = 0.25
	shareLunch     = 0.35
	shareDinner    = 0.35
	shareSnack     = 0.05
	shareDefault   = 0.33
)

// NutritionalTarget holds the resolved daily calorie and macro targets
type NutritionalTarget struct {
	DailyCalories float64
	ProteinPct    float64
	CarbPct       float64
	FatPct        float64
}

// SlotTarget is the target profile for one meal slot, derived from the
// daily target and the meal type's calorie share
type SlotTarget struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// TargetResolver computes daily nutritional targets from stored goals
type TargetResolver struct{}

// Resolve returns the daily target for a user. Stored goals take
// precedence over the hardcoded fallback; zero-valued fields fall back
// individually so a partial goals record still works.
func (TargetResolver) Resolve(profile *preference.Profile) NutritionalTarget {
	target := NutritionalTarget{
		DailyCalories: defaultDailyCalories,
		ProteinPct:    defaultProteinPct,
		CarbPct:       defaultCarbPct,
		FatPct:        defaultFatPct,
	}

	if profile == nil || profile.Goals == nil {
		return target
	}

	goals := profile.Goals
	if goals.DailyCalories > 0 {
		target.DailyCalories = goals.DailyCalories
	}
	if goals.ProteinPct > 0 {
		target.ProteinPct = goals.ProteinPct
	}
	if goals.CarbPct > 0 {
		target.CarbPct = goals.CarbPct
	}
	if goals.FatPct > 0 {
		target.FatPct = goals.FatPct
	}
	return target
}

// CalorieShare returns the fraction of the daily calorie target a meal
// type should cover
func CalorieShare(mealType recipe.MealType) float64 {
	switch mealType {
	case recipe.MealTypeBreakfast:
		return shareBreakfast
	case recipe.MealTypeLunch:
		return shareLunch
	case recipe.MealTypeDinner:
		return shareDinner
	case recipe.MealTypeSnack:
		return shareSnack
	default:
		return shareDefault
	}
}

// ForMealType derives the slot-level target from the daily target.
// Macro grams use 4 kcal/g for protein and carbs, 9 kcal/g for fat.
func (t NutritionalTarget) ForMealType(mealType recipe.MealType) SlotTarget {
	share := CalorieShare(mealType)
	calories := t.DailyCalories * share
	return SlotTarget{
		Calories: calories,
		ProteinG: calories * t.ProteinPct / 100 / 4,
		CarbsG:   calories * t.CarbPct / 100 / 4,
		FatG:     calories * t.FatPct / 100 / 9,
	}
}
