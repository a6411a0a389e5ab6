// Package sqlite provides SQLite database setup and seeding for local
// development and tests
package sqlite

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/mealforge/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.RecipeModel{},
		&gormModels.MealPlanModel{},
		&gormModels.PreferenceProfileModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the catalog with a starter set of recipes so a
// fresh install can generate plans immediately
func SeedDatabase(db *gorm.DB) error {
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	for _, rec := range seedRecipes() {
		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", rec.Name, err)
		}
	}

	return nil
}

// seedRecipes returns the starter catalog: a spread of meal types,
// cuisines and price points with full nutrition data
func seedRecipes() []gormModels.RecipeModel {
	return []gormModels.RecipeModel{
		{
			ID:       uuid.New(),
			Name:     "Greek Yogurt Parfait",
			MealType: "breakfast",
			Cuisine:  "mediterranean",
			Ingredients: gormModels.IngredientList{
				{Name: "greek yogurt", Amount: 200, Unit: "g"},
				{Name: "granola", Amount: 50, Unit: "g"},
				{Name: "blueberries", Amount: 80, Unit: "g"},
				{Name: "honey", Amount: 15, Unit: "g", Optional: true},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 420, Protein: 22, Carbs: 55, Fat: 12}},
			Difficulty:      "easy",
			PrepTimeMinutes: 5,
			CostPerServing:  2.80,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "gluten-free"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Vegetable Omelette",
			MealType: "breakfast",
			Cuisine:  "french",
			Ingredients: gormModels.IngredientList{
				{Name: "eggs", Amount: 3, Unit: "whole"},
				{Name: "bell pepper", Amount: 50, Unit: "g"},
				{Name: "spinach", Amount: 30, Unit: "g"},
				{Name: "cheddar cheese", Amount: 30, Unit: "g", Optional: true},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 380, Protein: 26, Carbs: 8, Fat: 27}},
			Difficulty:      "easy",
			PrepTimeMinutes: 15,
			CostPerServing:  2.20,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "gluten-free", "keto"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Overnight Oats with Banana",
			MealType: "breakfast",
			Cuisine:  "american",
			Ingredients: gormModels.IngredientList{
				{Name: "rolled oats", Amount: 60, Unit: "g"},
				{Name: "almond milk", Amount: 200, Unit: "ml"},
				{Name: "banana", Amount: 1, Unit: "whole"},
				{Name: "chia seeds", Amount: 10, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 450, Protein: 13, Carbs: 78, Fat: 11}},
			Difficulty:      "easy",
			PrepTimeMinutes: 10,
			CostPerServing:  1.60,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "vegan"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Grilled Chicken Caesar Salad",
			MealType: "lunch",
			Cuisine:  "american",
			Ingredients: gormModels.IngredientList{
				{Name: "chicken breast", Amount: 150, Unit: "g"},
				{Name: "romaine lettuce", Amount: 100, Unit: "g"},
				{Name: "parmesan", Amount: 20, Unit: "g"},
				{Name: "caesar dressing", Amount: 30, Unit: "g"},
				{Name: "croutons", Amount: 25, Unit: "g", Optional: true},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 520, Protein: 42, Carbs: 18, Fat: 31}},
			Difficulty:      "medium",
			PrepTimeMinutes: 25,
			CostPerServing:  4.80,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Chickpea Buddha Bowl",
			MealType: "lunch",
			Cuisine:  "mediterranean",
			Ingredients: gormModels.IngredientList{
				{Name: "chickpeas", Amount: 150, Unit: "g"},
				{Name: "quinoa", Amount: 80, Unit: "g"},
				{Name: "avocado", Amount: 0.5, Unit: "whole"},
				{Name: "cucumber", Amount: 60, Unit: "g"},
				{Name: "tahini", Amount: 20, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 560, Protein: 19, Carbs: 68, Fat: 24}},
			Difficulty:      "easy",
			PrepTimeMinutes: 20,
			CostPerServing:  3.90,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "vegan", "gluten-free"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Turkey Club Sandwich",
			MealType: "lunch",
			Cuisine:  "american",
			Ingredients: gormModels.IngredientList{
				{Name: "turkey breast", Amount: 100, Unit: "g"},
				{Name: "whole wheat bread", Amount: 3, Unit: "slices"},
				{Name: "bacon", Amount: 30, Unit: "g"},
				{Name: "tomato", Amount: 50, Unit: "g"},
				{Name: "lettuce", Amount: 20, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 610, Protein: 38, Carbs: 52, Fat: 27}},
			Difficulty:      "easy",
			PrepTimeMinutes: 15,
			CostPerServing:  5.40,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Salmon Teriyaki with Rice",
			MealType: "dinner",
			Cuisine:  "japanese",
			Ingredients: gormModels.IngredientList{
				{Name: "salmon fillet", Amount: 180, Unit: "g"},
				{Name: "jasmine rice", Amount: 100, Unit: "g"},
				{Name: "teriyaki sauce", Amount: 40, Unit: "ml"},
				{Name: "broccoli", Amount: 100, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 680, Protein: 44, Carbs: 72, Fat: 22}},
			Difficulty:      "medium",
			PrepTimeMinutes: 35,
			CostPerServing:  8.20,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"gluten-free"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Spaghetti Bolognese",
			MealType: "dinner",
			Cuisine:  "italian",
			Ingredients: gormModels.IngredientList{
				{Name: "spaghetti", Amount: 120, Unit: "g"},
				{Name: "ground beef", Amount: 150, Unit: "g"},
				{Name: "tomato sauce", Amount: 150, Unit: "g"},
				{Name: "onion", Amount: 50, Unit: "g"},
				{Name: "parmesan", Amount: 15, Unit: "g", Optional: true},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 740, Protein: 38, Carbs: 82, Fat: 28}},
			Difficulty:      "medium",
			PrepTimeMinutes: 45,
			CostPerServing:  5.60,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Vegetable Thai Green Curry",
			MealType: "dinner",
			Cuisine:  "thai",
			Ingredients: gormModels.IngredientList{
				{Name: "green curry paste", Amount: 30, Unit: "g"},
				{Name: "coconut milk", Amount: 200, Unit: "ml"},
				{Name: "tofu", Amount: 150, Unit: "g"},
				{Name: "eggplant", Amount: 80, Unit: "g"},
				{Name: "jasmine rice", Amount: 100, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 650, Protein: 22, Carbs: 74, Fat: 30}},
			Difficulty:      "medium",
			PrepTimeMinutes: 40,
			CostPerServing:  6.10,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "vegan", "gluten-free"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Apple with Peanut Butter",
			MealType: "snack",
			Cuisine:  "american",
			Ingredients: gormModels.IngredientList{
				{Name: "apple", Amount: 1, Unit: "whole"},
				{Name: "peanut butter", Amount: 30, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 280, Protein: 8, Carbs: 32, Fat: 16}},
			Difficulty:      "easy",
			PrepTimeMinutes: 2,
			CostPerServing:  1.20,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "vegan", "gluten-free"},
			IsActive:        true,
		},
		{
			ID:       uuid.New(),
			Name:     "Hummus with Carrot Sticks",
			MealType: "snack",
			Cuisine:  "mediterranean",
			Ingredients: gormModels.IngredientList{
				{Name: "hummus", Amount: 60, Unit: "g"},
				{Name: "carrots", Amount: 100, Unit: "g"},
			},
			Nutrition:       gormModels.NutritionJSON{Record: &gormModels.NutritionRecord{Calories: 190, Protein: 6, Carbs: 22, Fat: 9}},
			Difficulty:      "easy",
			PrepTimeMinutes: 5,
			CostPerServing:  1.50,
			Servings:        1,
			DietaryTags:     gormModels.StringSlice{"vegetarian", "vegan", "gluten-free"},
			IsActive:        true,
		},
	}
}
