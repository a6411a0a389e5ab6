package preference

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealforge/v1/internal/domain/recipe"
)

func TestProfileSignals(t *testing.T) {
	t.Run("RecordSwipe_ShouldOverwritePrevious", func(t *testing.T) {
		profile := NewProfile(uuid.New())
		recipeID := uuid.New()

		profile.RecordSwipe(recipeID, SwipeLike)
		profile.RecordSwipe(recipeID, SwipeDislike)

		assert.Equal(t, SwipeDislike, profile.Swipes[recipeID])
	})

	t.Run("SetRating_ShouldValidateRange", func(t *testing.T) {
		profile := NewProfile(uuid.New())
		recipeID := uuid.New()

		assert.ErrorIs(t, profile.SetRating(recipeID, 0), ErrInvalidRating)
		assert.ErrorIs(t, profile.SetRating(recipeID, 6), ErrInvalidRating)
		require.NoError(t, profile.SetRating(recipeID, 5))
		assert.Equal(t, 5, profile.Ratings[recipeID])
	})

	t.Run("IngredientPreference_ShouldMoveBetweenLists", func(t *testing.T) {
		profile := NewProfile(uuid.New())

		profile.SetIngredientPreference("cilantro", false)
		assert.Contains(t, profile.DislikedIngredients, "cilantro")

		profile.SetIngredientPreference("cilantro", true)
		assert.Contains(t, profile.LikedIngredients, "cilantro")
		assert.NotContains(t, profile.DislikedIngredients, "cilantro")
	})

	t.Run("SetCuisineRating_ShouldValidateRange", func(t *testing.T) {
		profile := NewProfile(uuid.New())

		assert.ErrorIs(t, profile.SetCuisineRating(recipe.CuisineTypeThai, 6), ErrInvalidRating)
		require.NoError(t, profile.SetCuisineRating(recipe.CuisineTypeThai, 4))
		assert.Equal(t, 4, profile.CuisineRatings[recipe.CuisineTypeThai])
	})
}

func TestBudgetDailyAmount(t *testing.T) {
	assert.InDelta(t, 12.0, Budget{Period: BudgetPeriodDaily, Amount: 12}.DailyAmount(), 0.001)
	assert.InDelta(t, 10.0, Budget{Period: BudgetPeriodWeekly, Amount: 70}.DailyAmount(), 0.001)
	assert.InDelta(t, 10.0, Budget{Period: BudgetPeriodMonthly, Amount: 300}.DailyAmount(), 0.001)
}

func TestExperienceRank(t *testing.T) {
	assert.Equal(t, 1, ExperienceBeginner.Rank())
	assert.Equal(t, 2, ExperienceIntermediate.Rank())
	assert.Equal(t, 3, ExperienceAdvanced.Rank())
	// Unknown levels count as intermediate
	assert.Equal(t, 2, ExperienceLevel("").Rank())
}
