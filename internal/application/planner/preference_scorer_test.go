package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/test/testutils"
)

// PreferenceScorerTestSuite provides a test suite for preference scoring
type PreferenceScorerTestSuite struct {
	suite.Suite
	scorer  PreferenceScorer
	factory *testutils.RecipeFactory
	profile *preference.Profile
}

func (suite *PreferenceScorerTestSuite) SetupTest() {
	suite.scorer = PreferenceScorer{}
	suite.factory = testutils.NewRecipeFactory(time.Now().UnixNano())
	suite.profile = preference.NewProfile(uuid.New())
}

func (suite *PreferenceScorerTestSuite) TestScore() {
	suite.Run("NilProfile_ShouldScoreNeutral", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch)

		assert.Equal(suite.T(), 0.5, suite.scorer.Score(nil, rec))
	})

	suite.Run("NoSignals_ShouldScoreNeutral", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa", "kale"),
		)

		assert.Equal(suite.T(), 0.5, suite.scorer.Score(suite.profile, rec))
	})

	suite.Run("SwipeLike_ShouldScoreOne", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
		)
		suite.profile.RecordSwipe(rec.ID(), preference.SwipeLike)

		// Only the swipe signal is present, so the weighted mean is its value
		assert.Equal(suite.T(), 1.0, suite.scorer.Score(suite.profile, rec))
	})

	suite.Run("SwipeDislike_ShouldScoreZero", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
		)
		suite.profile.RecordSwipe(rec.ID(), preference.SwipeDislike)

		assert.Equal(suite.T(), 0.0, suite.scorer.Score(suite.profile, rec))
	})

	suite.Run("RatingAlone_ShouldNormalizeToUnitRange", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
		)
		suite.Require().NoError(suite.profile.SetRating(rec.ID(), 4))

		// (4-1)/4 = 0.75
		assert.InDelta(suite.T(), 0.75, suite.scorer.Score(suite.profile, rec), 0.0001)
	})

	suite.Run("SwipeAndRating_ShouldWeightedAverage", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
		)
		suite.profile.RecordSwipe(rec.ID(), preference.SwipeLike)
		suite.Require().NoError(suite.profile.SetRating(rec.ID(), 3))

		// (0.6*1.0 + 0.4*0.5) / (0.6 + 0.4) = 0.8
		assert.InDelta(suite.T(), 0.8, suite.scorer.Score(suite.profile, rec), 0.0001)
	})

	suite.Run("LikedIngredient_ShouldLiftScore", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("chicken", "rice"),
		)
		suite.profile.SetIngredientPreference("chicken", true)

		// Ingredient signal alone: 0.5 + 0.1 = 0.6
		assert.InDelta(suite.T(), 0.6, suite.scorer.Score(suite.profile, rec), 0.0001)
	})

	suite.Run("DislikedIngredient_ShouldDropScore", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("mushroom", "rice"),
		)
		suite.profile.SetIngredientPreference("mushroom", false)

		// Ingredient signal alone: 0.5 - 0.2 = 0.3
		assert.InDelta(suite.T(), 0.3, suite.scorer.Score(suite.profile, rec), 0.0001)
	})

	suite.Run("ManyDislikedIngredients_ShouldClampAtZero", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("mushroom", "olives", "anchovy"),
		)
		suite.profile.SetIngredientPreference("mushroom", false)
		suite.profile.SetIngredientPreference("olives", false)
		suite.profile.SetIngredientPreference("anchovy", false)

		assert.Equal(suite.T(), 0.0, suite.scorer.Score(suite.profile, rec))
	})

	suite.Run("UnmatchedIngredientPreferences_ShouldContributeNoSignal", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("rice", "beans"),
		)
		suite.profile.SetIngredientPreference("mushroom", false)

		// No match means no ingredient signal, score stays neutral
		assert.Equal(suite.T(), 0.5, suite.scorer.Score(suite.profile, rec))
	})

	suite.Run("CuisineRating_ShouldNormalizeToUnitRange", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
			testutils.WithCuisine(recipe.CuisineTypeItalian),
		)
		suite.Require().NoError(suite.profile.SetCuisineRating(recipe.CuisineTypeItalian, 5))

		assert.InDelta(suite.T(), 1.0, suite.scorer.Score(suite.profile, rec), 0.0001)
	})

	suite.Run("PrepTimePreference_ShouldMatchByBandDistance", func() {
		quick := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
			testutils.WithPrepTime(10),
		)
		elaborate := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithIngredients("quinoa"),
			testutils.WithPrepTime(90),
		)
		suite.profile.PrepTimePreference = recipe.PrepBandQuick

		assert.InDelta(suite.T(), 1.0, suite.scorer.Score(suite.profile, quick), 0.0001)
		assert.InDelta(suite.T(), 0.4, suite.scorer.Score(suite.profile, elaborate), 0.0001)
	})
}

func TestPreferenceScorerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceScorerTestSuite))
}
