// Package recipe contains the catalog side of the domain: the read-only
// recipe records that meal planning and substitution score against.
package recipe

import (
	"strings"

	"github.com/google/uuid"
)

// Recipe represents a catalog recipe record.
// The planning engine treats the catalog as read-only; recipes carry the
// denormalized data scoring needs (nutrition, cost, prep time, tags).
type Recipe struct {
	id              uuid.UUID
	name            string
	mealType        MealType
	cuisine         CuisineType
	difficulty      DifficultyLevel
	ingredients     []Ingredient
	nutrition       *NutritionInfo
	prepTimeMinutes int
	costPerServing  float64
	servings        int
	dietaryTags     []string
	active          bool
}

// Snapshot carries the full state of a recipe for reconstitution from
// persistence and for test factories.
type Snapshot struct {
	ID              uuid.UUID
	Name            string
	MealType        MealType
	Cuisine         CuisineType
	Difficulty      DifficultyLevel
	Ingredients     []Ingredient
	Nutrition       *NutritionInfo
	PrepTimeMinutes int
	CostPerServing  float64
	Servings        int
	DietaryTags     []string
	Active          bool
}

// NewRecipe creates a new catalog recipe with validation
func NewRecipe(name string, mealType MealType) (*Recipe, error) {
	if len(name) < 3 {
		return nil, ErrNameTooShort
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}

	return &Recipe{
		id:         uuid.New(),
		name:       name,
		mealType:   mealType,
		cuisine:    CuisineTypeOther,
		difficulty: DifficultyLevelMedium,
		servings:   1,
		active:     true,
	}, nil
}

// Reconstitute rebuilds a recipe from stored state without re-running
// creation-time validation
func Reconstitute(s Snapshot) *Recipe {
	return &Recipe{
		id:              s.ID,
		name:            s.Name,
		mealType:        s.MealType,
		cuisine:         s.Cuisine,
		difficulty:      s.Difficulty,
		ingredients:     s.Ingredients,
		nutrition:       s.Nutrition,
		prepTimeMinutes: s.PrepTimeMinutes,
		costPerServing:  s.CostPerServing,
		servings:        s.Servings,
		dietaryTags:     s.DietaryTags,
		active:          s.Active,
	}
}

// ToSnapshot exports the recipe state for persistence
func (r *Recipe) ToSnapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		Name:            r.name,
		MealType:        r.mealType,
		Cuisine:         r.cuisine,
		Difficulty:      r.difficulty,
		Ingredients:     r.ingredients,
		Nutrition:       r.nutrition,
		PrepTimeMinutes: r.prepTimeMinutes,
		CostPerServing:  r.costPerServing,
		Servings:        r.servings,
		DietaryTags:     r.dietaryTags,
		Active:          r.active,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's display name
func (r *Recipe) Name() string {
	return r.name
}

// MealType returns the meal the recipe is intended for
func (r *Recipe) MealType() MealType {
	return r.mealType
}

// Cuisine returns the recipe's cuisine type
func (r *Recipe) Cuisine() CuisineType {
	return r.cuisine
}

// Difficulty returns the recipe's difficulty level
func (r *Recipe) Difficulty() DifficultyLevel {
	return r.difficulty
}

// Ingredients returns the recipe's ingredient lines
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Nutrition returns per-serving nutrition, nil when unknown
func (r *Recipe) Nutrition() *NutritionInfo {
	return r.nutrition
}

// PrepTimeMinutes returns the preparation time in minutes
func (r *Recipe) PrepTimeMinutes() int {
	return r.prepTimeMinutes
}

// CostPerServing returns the estimated per-serving cost in USD.
// Zero means no cost data.
func (r *Recipe) CostPerServing() float64 {
	return r.costPerServing
}

// HasCost reports whether cost data is present
func (r *Recipe) HasCost() bool {
	return r.costPerServing > 0
}

// Servings returns the number of servings the recipe yields
func (r *Recipe) Servings() int {
	return r.servings
}

// DietaryTags returns the dietary tags (vegetarian, gluten-free, ...)
func (r *Recipe) DietaryTags() []string {
	return r.dietaryTags
}

// IsActive reports whether the recipe is in the active catalog set
func (r *Recipe) IsActive() bool {
	return r.active
}

// PrepBand returns the preparation-effort band for this recipe
func (r *Recipe) PrepBand() PrepBand {
	return BandForMinutes(r.prepTimeMinutes)
}

// IngredientText returns a lowercased concatenation of ingredient names,
// used for liked/disliked ingredient matching
func (r *Recipe) IngredientText() string {
	if len(r.ingredients) == 0 {
		return ""
	}
	names := make([]string, len(r.ingredients))
	for i, ing := range r.ingredients {
		names[i] = strings.ToLower(ing.Name)
	}
	return strings.Join(names, " ")
}

// MatchesDietary reports whether the recipe satisfies every restriction.
// A restriction is satisfied when it appears among the recipe's dietary tags.
func (r *Recipe) MatchesDietary(restrictions []string) bool {
	if len(restrictions) == 0 {
		return true
	}
	tags := make(map[string]struct{}, len(r.dietaryTags))
	for _, t := range r.dietaryTags {
		tags[strings.ToLower(t)] = struct{}{}
	}
	for _, restriction := range restrictions {
		if _, ok := tags[strings.ToLower(restriction)]; !ok {
			return false
		}
	}
	return true
}
