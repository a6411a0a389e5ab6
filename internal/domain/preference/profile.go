// Package preference holds the user preference profile the scoring engine
// reads: swipe history, ratings, ingredient and cuisine preferences, prep
// time preference, dietary restrictions, budget and nutrition goals.
package preference

import (
	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// SwipeAction is the recorded reaction to a recipe card
type SwipeAction string

const (
	SwipeLike    SwipeAction = "like"
	SwipeDislike SwipeAction = "dislike"
)

// BudgetPeriod is the period a budget amount covers
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget is a stored grocery budget record
type Budget struct {
	Period BudgetPeriod
	Amount float64 // USD for the whole period
}

// DailyAmount converts the budget to a per-day USD ceiling
func (b Budget) DailyAmount() float64 {
	switch b.Period {
	case BudgetPeriodWeekly:
		return b.Amount / 7
	case BudgetPeriodMonthly:
		return b.Amount / 30
	default:
		return b.Amount
	}
}

// NutritionGoals holds daily calorie and macro split targets
type NutritionGoals struct {
	DailyCalories float64
	ProteinPct    float64
	CarbPct       float64
	FatPct        float64
}

// ExperienceLevel is the user's self-reported cooking experience
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Rank maps experience to an ordinal used for difficulty matching
func (e ExperienceLevel) Rank() int {
	switch e {
	case ExperienceBeginner:
		return 1
	case ExperienceAdvanced:
		return 3
	default:
		return 2
	}
}

// Profile aggregates every preference signal stored for a user.
// Absent signals stay absent: the scorer omits them from its weighted
// mean instead of defaulting them to zero.
type Profile struct {
	UserID              uuid.UUID
	DietaryRestrictions []string
	Swipes              map[uuid.UUID]SwipeAction
	Ratings             map[uuid.UUID]int // 1-5
	LikedIngredients    []string
	DislikedIngredients []string
	CuisineRatings      map[recipe.CuisineType]int // 1-5
	FavoriteCuisines    []recipe.CuisineType
	PrepTimePreference  recipe.PrepBand // empty when not set
	Experience          ExperienceLevel // empty when not set
	Budget              *Budget
	Goals               *NutritionGoals
}

// NewProfile creates an empty profile for a user
func NewProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:         userID,
		Swipes:         make(map[uuid.UUID]SwipeAction),
		Ratings:        make(map[uuid.UUID]int),
		CuisineRatings: make(map[recipe.CuisineType]int),
	}
}

// RecordSwipe stores the user's reaction to a recipe
func (p *Profile) RecordSwipe(recipeID uuid.UUID, action SwipeAction) {
	if p.Swipes == nil {
		p.Swipes = make(map[uuid.UUID]SwipeAction)
	}
	p.Swipes[recipeID] = action
}

// SetRating stores an explicit 1-5 rating for a recipe
func (p *Profile) SetRating(recipeID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if p.Ratings == nil {
		p.Ratings = make(map[uuid.UUID]int)
	}
	p.Ratings[recipeID] = rating
	return nil
}

// SetIngredientPreference records a liked or disliked ingredient,
// removing it from the opposite list if present
func (p *Profile) SetIngredientPreference(ingredient string, liked bool) {
	p.LikedIngredients = removeString(p.LikedIngredients, ingredient)
	p.DislikedIngredients = removeString(p.DislikedIngredients, ingredient)
	if liked {
		p.LikedIngredients = append(p.LikedIngredients, ingredient)
	} else {
		p.DislikedIngredients = append(p.DislikedIngredients, ingredient)
	}
}

// SetCuisineRating stores a 1-5 rating for a cuisine
func (p *Profile) SetCuisineRating(cuisine recipe.CuisineType, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if p.CuisineRatings == nil {
		p.CuisineRatings = make(map[recipe.CuisineType]int)
	}
	p.CuisineRatings[cuisine] = rating
	return nil
}

// IsFavoriteCuisine reports whether a cuisine is in the favorites list
func (p *Profile) IsFavoriteCuisine(cuisine recipe.CuisineType) bool {
	for _, c := range p.FavoriteCuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
