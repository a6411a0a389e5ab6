package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestNewRecipe() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Act
		rec, err := NewRecipe("Grilled Chicken Salad", MealTypeLunch)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Grilled Chicken Salad", rec.Name())
		assert.Equal(suite.T(), MealTypeLunch, rec.MealType())
		assert.Equal(suite.T(), CuisineTypeOther, rec.Cuisine())
		assert.Equal(suite.T(), DifficultyLevelMedium, rec.Difficulty())
		assert.True(suite.T(), rec.IsActive())
		assert.NotEqual(suite.T(), "", rec.ID().String())
	})

	suite.Run("ShortName_ShouldReturnError", func() {
		_, err := NewRecipe("ab", MealTypeLunch)

		assert.Equal(suite.T(), ErrNameTooShort, err)
	})

	suite.Run("UnknownMealType_ShouldReturnError", func() {
		_, err := NewRecipe("Grilled Chicken Salad", "brunch")

		assert.Equal(suite.T(), ErrInvalidMealType, err)
	})
}

func (suite *RecipeTestSuite) TestMatchesDietary() {
	rec := Reconstitute(Snapshot{
		Name:        "Lentil Curry",
		MealType:    MealTypeDinner,
		DietaryTags: []string{"Vegan", "gluten-free"},
		Active:      true,
	})

	suite.Run("AllRestrictionsTagged_ShouldMatch", func() {
		assert.True(suite.T(), rec.MatchesDietary([]string{"vegan", "gluten-free"}))
	})

	suite.Run("TagComparison_ShouldIgnoreCase", func() {
		assert.True(suite.T(), rec.MatchesDietary([]string{"VEGAN"}))
	})

	suite.Run("MissingTag_ShouldNotMatch", func() {
		assert.False(suite.T(), rec.MatchesDietary([]string{"vegan", "keto"}))
	})

	suite.Run("NoRestrictions_ShouldAlwaysMatch", func() {
		assert.True(suite.T(), rec.MatchesDietary(nil))
	})
}

func (suite *RecipeTestSuite) TestIngredientText() {
	suite.Run("Names_ShouldJoinLowercased", func() {
		rec := Reconstitute(Snapshot{
			Name:     "Mushroom Risotto",
			MealType: MealTypeDinner,
			Ingredients: []Ingredient{
				{Name: "Arborio Rice", Amount: 200, Unit: "g"},
				{Name: "Mushrooms", Amount: 150, Unit: "g"},
			},
		})

		assert.Equal(suite.T(), "arborio rice mushrooms", rec.IngredientText())
	})

	suite.Run("NoIngredients_ShouldBeEmpty", func() {
		rec := Reconstitute(Snapshot{Name: "Bare", MealType: MealTypeSnack})

		assert.Equal(suite.T(), "", rec.IngredientText())
	})
}

func (suite *RecipeTestSuite) TestSnapshotRoundTrip() {
	original := Snapshot{
		Name:            "Pad Thai",
		MealType:        MealTypeDinner,
		Cuisine:         CuisineTypeThai,
		Difficulty:      DifficultyLevelHard,
		Nutrition:       &NutritionInfo{Calories: 650, Protein: 28, Carbs: 80, Fat: 22},
		PrepTimeMinutes: 45,
		CostPerServing:  8.5,
		Servings:        2,
		DietaryTags:     []string{"pescatarian"},
		Active:          true,
	}

	restored := Reconstitute(original).ToSnapshot()

	assert.Equal(suite.T(), original, restored)
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func TestBandForMinutes(t *testing.T) {
	assert.Equal(t, PrepBandModerate, BandForMinutes(0))
	assert.Equal(t, PrepBandQuick, BandForMinutes(15))
	assert.Equal(t, PrepBandModerate, BandForMinutes(16))
	assert.Equal(t, PrepBandModerate, BandForMinutes(59))
	assert.Equal(t, PrepBandElaborate, BandForMinutes(60))
}

func TestHasCost(t *testing.T) {
	priced := Reconstitute(Snapshot{Name: "Priced", MealType: MealTypeLunch, CostPerServing: 4.2})
	free := Reconstitute(Snapshot{Name: "Unpriced", MealType: MealTypeLunch})

	assert.True(t, priced.HasCost())
	assert.False(t, free.HasCost())
}
