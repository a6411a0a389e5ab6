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

// RecipeScorerTestSuite provides a test suite for combined recipe scoring
type RecipeScorerTestSuite struct {
	suite.Suite
	scorer  RecipeScorer
	factory *testutils.RecipeFactory
	target  NutritionalTarget
}

func (suite *RecipeScorerTestSuite) SetupTest() {
	suite.scorer = NewRecipeScorer()
	suite.factory = testutils.NewRecipeFactory(time.Now().UnixNano())
	suite.target = NutritionalTarget{
		DailyCalories: 2000,
		ProteinPct:    20,
		CarbPct:       50,
		FatPct:        30,
	}
}

func (suite *RecipeScorerTestSuite) TestCostScore() {
	budget := 10.0

	suite.Run("HalfOfBudget_ShouldScoreFull", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(5.0))

		assert.Equal(suite.T(), 1.0, costScore(rec, &budget))
	})

	suite.Run("ExactBudget_ShouldScoreGood", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(10.0))

		assert.Equal(suite.T(), 0.8, costScore(rec, &budget))
	})

	suite.Run("FiftyPercentOver_ShouldScoreLow", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(15.0))

		assert.Equal(suite.T(), 0.4, costScore(rec, &budget))
	})

	suite.Run("WayOverBudget_ShouldScoreMinimal", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(15.01))

		assert.Equal(suite.T(), 0.1, costScore(rec, &budget))
	})

	suite.Run("NoCostData_ShouldScoreNeutral", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithoutCost())

		assert.Equal(suite.T(), 0.5, costScore(rec, &budget))
	})

	suite.Run("NoBudget_ShouldScoreFixedGood", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(5.0))

		assert.Equal(suite.T(), 0.8, costScore(rec, nil))
	})
}

func (suite *RecipeScorerTestSuite) TestNutritionScore() {
	suite.Run("ExactSlotTarget_ShouldScoreFull", func() {
		// Lunch is 35% of 2000 kcal: 700 kcal, 35g protein, 87.5g carbs, 23.33g fat
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithNutrition(700, 35, 87.5, 700*0.3/9),
		)

		assert.InDelta(suite.T(), 1.0, nutritionScore(rec, suite.target), 0.0001)
	})

	suite.Run("MissingNutrition_ShouldScoreNeutral", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithoutNutrition())

		assert.Equal(suite.T(), 0.5, nutritionScore(rec, suite.target))
	})

	suite.Run("HalfTheCalories_ShouldScoreProportionally", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithNutrition(350, 17.5, 43.75, 350*0.3/9),
		)

		// Every ratio is 0.5, so 0.6*0.5 + 0.4*0.5 = 0.5
		assert.InDelta(suite.T(), 0.5, nutritionScore(rec, suite.target), 0.01)
	})
}

func (suite *RecipeScorerTestSuite) TestDifficultyScore() {
	suite.Run("MatchingExperience_ShouldScoreFull", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithDifficulty(recipe.DifficultyLevelHard),
		)
		profile := preference.NewProfile(uuid.New())
		profile.Experience = preference.ExperienceAdvanced

		assert.Equal(suite.T(), 1.0, difficultyScore(rec, profile))
	})

	suite.Run("UnknownExperience_ShouldCountAsIntermediate", func() {
		easy := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithDifficulty(recipe.DifficultyLevelEasy),
		)
		medium := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithDifficulty(recipe.DifficultyLevelMedium),
		)

		assert.Equal(suite.T(), 0.7, difficultyScore(easy, nil))
		assert.Equal(suite.T(), 1.0, difficultyScore(medium, nil))
	})

	suite.Run("TwoLevelsApart_ShouldScoreLow", func() {
		rec := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithDifficulty(recipe.DifficultyLevelHard),
		)
		profile := preference.NewProfile(uuid.New())
		profile.Experience = preference.ExperienceBeginner

		assert.Equal(suite.T(), 0.3, difficultyScore(rec, profile))
	})
}

func (suite *RecipeScorerTestSuite) TestScoreAll() {
	suite.Run("Results_ShouldSortDescendingByTotal", func() {
		budget := 10.0
		cheap := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithCost(4.0),
			testutils.WithNutrition(700, 35, 87.5, 700*0.3/9),
		)
		pricey := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithCost(16.0),
			testutils.WithNutrition(700, 35, 87.5, 700*0.3/9),
		)

		scored := suite.scorer.ScoreAll(
			[]*recipe.Recipe{pricey, cheap}, suite.target, &budget, nil,
		)

		assert.Len(suite.T(), scored, 2)
		assert.Equal(suite.T(), cheap.ID(), scored[0].Recipe.ID())
		assert.Equal(suite.T(), pricey.ID(), scored[1].Recipe.ID())
		assert.Greater(suite.T(), scored[0].Total, scored[1].Total)
	})

	suite.Run("Ties_ShouldKeepInputOrder", func() {
		first := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithCost(5.0),
			testutils.WithNutrition(700, 35, 87.5, 700*0.3/9),
			testutils.WithDifficulty(recipe.DifficultyLevelMedium),
		)
		second := suite.factory.Recipe(recipe.MealTypeLunch,
			testutils.WithCost(5.0),
			testutils.WithNutrition(700, 35, 87.5, 700*0.3/9),
			testutils.WithDifficulty(recipe.DifficultyLevelMedium),
		)
		budget := 10.0

		scored := suite.scorer.ScoreAll(
			[]*recipe.Recipe{first, second}, suite.target, &budget, nil,
		)

		assert.Equal(suite.T(), first.ID(), scored[0].Recipe.ID())
		assert.Equal(suite.T(), second.ID(), scored[1].Recipe.ID())
	})

	suite.Run("Total_ShouldBeWeightedCombination", func() {
		budget := 10.0
		rec := suite.factory.Recipe(recipe.MealTypeLunch, testutils.WithCost(5.0))

		score := suite.scorer.Score(rec, suite.target, &budget, nil)

		expected := 0.25*score.Cost +
			0.30*score.Nutrition +
			0.15*score.Variety +
			0.10*score.Difficulty +
			0.20*score.Preference
		assert.InDelta(suite.T(), expected, score.Total, 0.0001)
	})
}

func TestRecipeScorerTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeScorerTestSuite))
}
