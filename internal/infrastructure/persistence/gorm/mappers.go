// Package gorm provides mapping between domain snapshots and GORM models
package gorm

import (
	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(rec *recipe.Recipe) *RecipeModel {
	s := rec.ToSnapshot()

	ingredients := make(IngredientList, 0, len(s.Ingredients))
	for _, ing := range s.Ingredients {
		ingredients = append(ingredients, IngredientRecord{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}

	var nutrition NutritionJSON
	if s.Nutrition != nil {
		nutrition.Record = &NutritionRecord{
			Calories: s.Nutrition.Calories,
			Protein:  s.Nutrition.Protein,
			Carbs:    s.Nutrition.Carbs,
			Fat:      s.Nutrition.Fat,
		}
	}

	return &RecipeModel{
		ID:              s.ID,
		Name:            s.Name,
		MealType:        string(s.MealType),
		Cuisine:         string(s.Cuisine),
		Difficulty:      string(s.Difficulty),
		Ingredients:     ingredients,
		Nutrition:       nutrition,
		PrepTimeMinutes: s.PrepTimeMinutes,
		CostPerServing:  s.CostPerServing,
		Servings:        s.Servings,
		DietaryTags:     StringSlice(s.DietaryTags),
		IsActive:        s.Active,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(model.Ingredients))
	for _, ing := range model.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}

	var nutrition *recipe.NutritionInfo
	if model.Nutrition.Record != nil {
		nutrition = &recipe.NutritionInfo{
			Calories: model.Nutrition.Record.Calories,
			Protein:  model.Nutrition.Record.Protein,
			Carbs:    model.Nutrition.Record.Carbs,
			Fat:      model.Nutrition.Record.Fat,
		}
	}

	return recipe.Reconstitute(recipe.Snapshot{
		ID:              model.ID,
		Name:            model.Name,
		MealType:        recipe.MealType(model.MealType),
		Cuisine:         recipe.CuisineType(model.Cuisine),
		Difficulty:      recipe.DifficultyLevel(model.Difficulty),
		Ingredients:     ingredients,
		Nutrition:       nutrition,
		PrepTimeMinutes: model.PrepTimeMinutes,
		CostPerServing:  model.CostPerServing,
		Servings:        model.Servings,
		DietaryTags:     model.DietaryTags,
		Active:          model.IsActive,
	})
}

// PlanToModel converts a domain meal plan to a GORM model
func PlanToModel(plan *mealplan.MealPlan) *MealPlanModel {
	s := plan.ToSnapshot()

	slots := make(SlotList, 0, len(s.Slots))
	for _, slot := range s.Slots {
		slots = append(slots, SlotRecord{
			Day:           slot.Day,
			MealType:      string(slot.MealType),
			RecipeID:      slot.RecipeID,
			RecipeName:    slot.RecipeName,
			Score:         slot.Score,
			EstimatedCost: slot.EstimatedCost,
			Nutrition: NutritionRecord{
				Calories: slot.Nutrition.Calories,
				Protein:  slot.Nutrition.Protein,
				Carbs:    slot.Nutrition.Carbs,
				Fat:      slot.Nutrition.Fat,
			},
		})
	}

	history := make(HistoryList, 0, len(s.History))
	for _, rec := range s.History {
		history = append(history, HistoryRecord{
			MealIndex:        rec.MealIndex,
			OriginalRecipeID: rec.OriginalRecipeID,
			NewRecipeID:      rec.NewRecipeID,
			Timestamp:        rec.Timestamp,
		})
	}

	return &MealPlanModel{
		ID:               s.ID,
		Version:          s.Version,
		UserID:           s.UserID,
		StartDate:        s.StartDate,
		DurationDays:     s.DurationDays,
		IncludeSnacks:    s.IncludeSnacks,
		DailyBudget:      s.DailyBudget,
		Restrictions:     StringSlice(s.Restrictions),
		Slots:            slots,
		History:          history,
		AlgorithmVersion: s.AlgorithmVersion,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ModelToPlan converts a GORM model to a domain meal plan
func ModelToPlan(model *MealPlanModel) *mealplan.MealPlan {
	slots := make([]mealplan.MealSlot, 0, len(model.Slots))
	for _, slot := range model.Slots {
		slots = append(slots, mealplan.MealSlot{
			Day:           slot.Day,
			MealType:      recipe.MealType(slot.MealType),
			RecipeID:      slot.RecipeID,
			RecipeName:    slot.RecipeName,
			Score:         slot.Score,
			EstimatedCost: slot.EstimatedCost,
			Nutrition: recipe.NutritionInfo{
				Calories: slot.Nutrition.Calories,
				Protein:  slot.Nutrition.Protein,
				Carbs:    slot.Nutrition.Carbs,
				Fat:      slot.Nutrition.Fat,
			},
		})
	}

	history := make([]mealplan.SubstitutionRecord, 0, len(model.History))
	for _, rec := range model.History {
		history = append(history, mealplan.SubstitutionRecord{
			MealIndex:        rec.MealIndex,
			OriginalRecipeID: rec.OriginalRecipeID,
			NewRecipeID:      rec.NewRecipeID,
			Timestamp:        rec.Timestamp,
		})
	}

	return mealplan.Reconstitute(mealplan.PlanSnapshot{
		ID:               model.ID,
		Version:          model.Version,
		UserID:           model.UserID,
		StartDate:        model.StartDate,
		DurationDays:     model.DurationDays,
		IncludeSnacks:    model.IncludeSnacks,
		DailyBudget:      model.DailyBudget,
		Restrictions:     model.Restrictions,
		Slots:            slots,
		AlgorithmVersion: model.AlgorithmVersion,
		History:          history,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
}

// ProfileToModel converts a domain preference profile to a GORM model
func ProfileToModel(p *preference.Profile) *PreferenceProfileModel {
	swipes := make(StringMap, len(p.Swipes))
	for id, action := range p.Swipes {
		swipes[id.String()] = string(action)
	}

	ratings := make(IntMap, len(p.Ratings))
	for id, rating := range p.Ratings {
		ratings[id.String()] = rating
	}

	cuisineRatings := make(IntMap, len(p.CuisineRatings))
	for cuisine, rating := range p.CuisineRatings {
		cuisineRatings[string(cuisine)] = rating
	}

	favorites := make(StringSlice, 0, len(p.FavoriteCuisines))
	for _, cuisine := range p.FavoriteCuisines {
		favorites = append(favorites, string(cuisine))
	}

	var budget BudgetJSON
	if p.Budget != nil {
		budget.Record = &BudgetRecord{
			Period: string(p.Budget.Period),
			Amount: p.Budget.Amount,
		}
	}

	var goals GoalsJSON
	if p.Goals != nil {
		goals.Record = &GoalsRecord{
			DailyCalories: p.Goals.DailyCalories,
			ProteinPct:    p.Goals.ProteinPct,
			CarbPct:       p.Goals.CarbPct,
			FatPct:        p.Goals.FatPct,
		}
	}

	return &PreferenceProfileModel{
		UserID:              p.UserID,
		DietaryRestrictions: StringSlice(p.DietaryRestrictions),
		Swipes:              swipes,
		Ratings:             ratings,
		LikedIngredients:    StringSlice(p.LikedIngredients),
		DislikedIngredients: StringSlice(p.DislikedIngredients),
		CuisineRatings:      cuisineRatings,
		FavoriteCuisines:    favorites,
		PrepTimePreference:  string(p.PrepTimePreference),
		Experience:          string(p.Experience),
		Budget:              budget,
		Goals:               goals,
	}
}

// ModelToProfile converts a GORM model to a domain preference profile.
// Keys that fail to parse as UUIDs are skipped rather than failing the
// whole profile.
func ModelToProfile(model *PreferenceProfileModel) *preference.Profile {
	profile := preference.NewProfile(model.UserID)
	profile.DietaryRestrictions = model.DietaryRestrictions
	profile.LikedIngredients = model.LikedIngredients
	profile.DislikedIngredients = model.DislikedIngredients
	profile.PrepTimePreference = recipe.PrepBand(model.PrepTimePreference)
	profile.Experience = preference.ExperienceLevel(model.Experience)

	for key, action := range model.Swipes {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		profile.Swipes[id] = preference.SwipeAction(action)
	}

	for key, rating := range model.Ratings {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		profile.Ratings[id] = rating
	}

	for cuisine, rating := range model.CuisineRatings {
		profile.CuisineRatings[recipe.CuisineType(cuisine)] = rating
	}

	for _, cuisine := range model.FavoriteCuisines {
		profile.FavoriteCuisines = append(profile.FavoriteCuisines, recipe.CuisineType(cuisine))
	}

	if model.Budget.Record != nil {
		profile.Budget = &preference.Budget{
			Period: preference.BudgetPeriod(model.Budget.Record.Period),
			Amount: model.Budget.Record.Amount,
		}
	}

	if model.Goals.Record != nil {
		profile.Goals = &preference.NutritionGoals{
			DailyCalories: model.Goals.Record.DailyCalories,
			ProteinPct:    model.Goals.Record.ProteinPct,
			CarbPct:       model.Goals.Record.CarbPct,
			FatPct:        model.Goals.Record.FatPct,
		}
	}

	return profile
}
