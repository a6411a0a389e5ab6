// Package testutils provides test data factories built on gofakeit
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// RecipeFactory creates randomized catalog recipes for tests
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a seeded recipe factory
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// RecipeOption mutates the snapshot a factory recipe is built from
type RecipeOption func(*recipe.Snapshot)

// WithID pins the recipe id
func WithID(id uuid.UUID) RecipeOption {
	return func(s *recipe.Snapshot) { s.ID = id }
}

// WithName pins the recipe name
func WithName(name string) RecipeOption {
	return func(s *recipe.Snapshot) { s.Name = name }
}

// WithCuisine pins the cuisine
func WithCuisine(cuisine recipe.CuisineType) RecipeOption {
	return func(s *recipe.Snapshot) { s.Cuisine = cuisine }
}

// WithDifficulty pins the difficulty level
func WithDifficulty(difficulty recipe.DifficultyLevel) RecipeOption {
	return func(s *recipe.Snapshot) { s.Difficulty = difficulty }
}

// WithNutrition pins the nutrition block
func WithNutrition(calories, protein, carbs, fat float64) RecipeOption {
	return func(s *recipe.Snapshot) {
		s.Nutrition = &recipe.NutritionInfo{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
	}
}

// WithoutNutrition clears the nutrition block
func WithoutNutrition() RecipeOption {
	return func(s *recipe.Snapshot) { s.Nutrition = nil }
}

// WithCost pins the per-serving cost
func WithCost(cost float64) RecipeOption {
	return func(s *recipe.Snapshot) { s.CostPerServing = cost }
}

// WithoutCost clears the cost data
func WithoutCost() RecipeOption {
	return func(s *recipe.Snapshot) { s.CostPerServing = 0 }
}

// WithPrepTime pins the prep time in minutes
func WithPrepTime(minutes int) RecipeOption {
	return func(s *recipe.Snapshot) { s.PrepTimeMinutes = minutes }
}

// WithIngredients replaces the ingredient list by name
func WithIngredients(names ...string) RecipeOption {
	return func(s *recipe.Snapshot) {
		ingredients := make([]recipe.Ingredient, 0, len(names))
		for _, name := range names {
			ingredients = append(ingredients, recipe.Ingredient{Name: name, Amount: 1, Unit: "unit"})
		}
		s.Ingredients = ingredients
	}
}

// WithDietaryTags replaces the dietary tag set
func WithDietaryTags(tags ...string) RecipeOption {
	return func(s *recipe.Snapshot) { s.DietaryTags = tags }
}

// Inactive marks the recipe inactive
func Inactive() RecipeOption {
	return func(s *recipe.Snapshot) { s.Active = false }
}

// Recipe builds a recipe of the given meal type with plausible random
// data, then applies the options
func (f *RecipeFactory) Recipe(mealType recipe.MealType, opts ...RecipeOption) *recipe.Recipe {
	s := recipe.Snapshot{
		ID:       uuid.New(),
		Name:     f.mealName(mealType),
		MealType: mealType,
		Cuisine:  recipe.CuisineTypeAmerican,
		Difficulty: recipe.DifficultyLevel(
			f.faker.RandomString([]string{"easy", "medium", "hard"}),
		),
		Ingredients: []recipe.Ingredient{
			{Name: f.faker.Vegetable(), Amount: 100, Unit: "g"},
			{Name: f.faker.Fruit(), Amount: 50, Unit: "g"},
		},
		Nutrition: &recipe.NutritionInfo{
			Calories: f.faker.Float64Range(200, 800),
			Protein:  f.faker.Float64Range(5, 50),
			Carbs:    f.faker.Float64Range(10, 90),
			Fat:      f.faker.Float64Range(5, 40),
		},
		PrepTimeMinutes: f.faker.Number(5, 60),
		CostPerServing:  f.faker.Float64Range(1.0, 10.0),
		Servings:        1,
		Active:          true,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return recipe.Reconstitute(s)
}

func (f *RecipeFactory) mealName(mealType recipe.MealType) string {
	switch mealType {
	case recipe.MealTypeBreakfast:
		return f.faker.Breakfast()
	case recipe.MealTypeLunch:
		return f.faker.Lunch()
	case recipe.MealTypeDinner:
		return f.faker.Dinner()
	default:
		return f.faker.Snack()
	}
}

// ProfileFactory creates preference profiles for tests
type ProfileFactory struct{}

// NewProfileFactory creates a profile factory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Empty returns a profile with no signals
func (ProfileFactory) Empty(userID uuid.UUID) *preference.Profile {
	return preference.NewProfile(userID)
}

// WithGoals returns a profile carrying nutrition goals
func (f ProfileFactory) WithGoals(userID uuid.UUID, calories, proteinPct, carbPct, fatPct float64) *preference.Profile {
	p := f.Empty(userID)
	p.Goals = &preference.NutritionGoals{
		DailyCalories: calories,
		ProteinPct:    proteinPct,
		CarbPct:       carbPct,
		FatPct:        fatPct,
	}
	return p
}

// WithBudget returns a profile carrying a budget record
func (f ProfileFactory) WithBudget(userID uuid.UUID, period preference.BudgetPeriod, amount float64) *preference.Profile {
	p := f.Empty(userID)
	p.Budget = &preference.Budget{Period: period, Amount: amount}
	return p
}
