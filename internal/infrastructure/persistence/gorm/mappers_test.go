package gorm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/test/testutils"
)

func TestRecipeMapping(t *testing.T) {
	t.Run("RoundTrip_ShouldPreserveAllFields", func(t *testing.T) {
		factory := testutils.NewRecipeFactory(time.Now().UnixNano())
		original := factory.Recipe(recipe.MealTypeDinner,
			testutils.WithCuisine(recipe.CuisineTypeThai),
			testutils.WithDietaryTags("vegan", "gluten-free"),
			testutils.WithIngredients("tofu", "rice noodles"),
		)

		restored := ModelToRecipe(RecipeToModel(original))

		assert.Equal(t, original.ToSnapshot(), restored.ToSnapshot())
	})

	t.Run("MissingNutrition_ShouldStayNil", func(t *testing.T) {
		factory := testutils.NewRecipeFactory(time.Now().UnixNano())
		original := factory.Recipe(recipe.MealTypeSnack, testutils.WithoutNutrition())

		restored := ModelToRecipe(RecipeToModel(original))

		assert.Nil(t, restored.Nutrition())
	})
}

func TestPlanMapping(t *testing.T) {
	req, err := mealplan.NewGenerationRequest(mealplan.GenerationParams{
		UserID:       uuid.New(),
		DurationDays: 2,
	})
	require.NoError(t, err)

	daily := 12.5
	plan := mealplan.NewMealPlan(req, &daily, []string{"vegetarian"}, "v2.1")
	plan.AddSlot(mealplan.MealSlot{
		Day:           1,
		MealType:      recipe.MealTypeLunch,
		RecipeID:      uuid.New(),
		RecipeName:    "Veggie Bowl",
		Score:         0.82,
		EstimatedCost: 5.5,
		Nutrition:     recipe.NutritionInfo{Calories: 620, Protein: 24, Carbs: 70, Fat: 18},
	})
	require.NoError(t, plan.ApplySubstitution(0, mealplan.SlotRecipe{
		RecipeID:      uuid.New(),
		RecipeName:    "Falafel Wrap",
		EstimatedCost: 6.0,
		Nutrition:     recipe.NutritionInfo{Calories: 640, Protein: 22, Carbs: 75, Fat: 20},
	}))

	restored := ModelToPlan(PlanToModel(plan))

	assert.Equal(t, plan.ToSnapshot(), restored.ToSnapshot())
	assert.Equal(t, plan.Summary(), restored.Summary())
	require.Len(t, restored.History(), 1)
}

func TestProfileMapping(t *testing.T) {
	t.Run("RoundTrip_ShouldPreserveAllSignals", func(t *testing.T) {
		userID := uuid.New()
		recipeID := uuid.New()

		original := preference.NewProfile(userID)
		original.DietaryRestrictions = []string{"vegan"}
		original.RecordSwipe(recipeID, preference.SwipeLike)
		require.NoError(t, original.SetRating(recipeID, 4))
		original.SetIngredientPreference("chickpeas", true)
		original.SetIngredientPreference("cilantro", false)
		require.NoError(t, original.SetCuisineRating(recipe.CuisineTypeIndian, 5))
		original.FavoriteCuisines = []recipe.CuisineType{recipe.CuisineTypeIndian}
		original.PrepTimePreference = recipe.PrepBandQuick
		original.Experience = preference.ExperienceAdvanced
		original.Budget = &preference.Budget{Period: preference.BudgetPeriodWeekly, Amount: 90}
		original.Goals = &preference.NutritionGoals{DailyCalories: 2200, ProteinPct: 25, CarbPct: 45, FatPct: 30}

		restored := ModelToProfile(ProfileToModel(original))

		assert.Equal(t, original.UserID, restored.UserID)
		assert.Equal(t, original.DietaryRestrictions, restored.DietaryRestrictions)
		assert.Equal(t, preference.SwipeLike, restored.Swipes[recipeID])
		assert.Equal(t, 4, restored.Ratings[recipeID])
		assert.Contains(t, restored.LikedIngredients, "chickpeas")
		assert.Contains(t, restored.DislikedIngredients, "cilantro")
		assert.Equal(t, 5, restored.CuisineRatings[recipe.CuisineTypeIndian])
		assert.Equal(t, original.FavoriteCuisines, restored.FavoriteCuisines)
		assert.Equal(t, recipe.PrepBandQuick, restored.PrepTimePreference)
		assert.Equal(t, preference.ExperienceAdvanced, restored.Experience)
		assert.Equal(t, original.Budget, restored.Budget)
		assert.Equal(t, original.Goals, restored.Goals)
	})

	t.Run("UnparseableRecipeKeys_ShouldBeSkipped", func(t *testing.T) {
		model := ProfileToModel(preference.NewProfile(uuid.New()))
		model.Swipes = StringMap{"not-a-uuid": "like"}
		model.Ratings = IntMap{"not-a-uuid": 3}

		restored := ModelToProfile(model)

		assert.Empty(t, restored.Swipes)
		assert.Empty(t, restored.Ratings)
	})
}
