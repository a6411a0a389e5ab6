package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/test/testutils"
)

func storedPlan(t *testing.T, userID uuid.UUID) *mealplan.MealPlan {
	t.Helper()
	req, err := mealplan.NewGenerationRequest(mealplan.GenerationParams{
		UserID:       userID,
		DurationDays: 1,
	})
	require.NoError(t, err)

	factory := testutils.NewRecipeFactory(time.Now().UnixNano())
	lunch := factory.Recipe(recipe.MealTypeLunch)

	plan := mealplan.NewMealPlan(req, nil, nil, "v2.1")
	plan.AddSlot(mealplan.MealSlot{
		Day:           1,
		MealType:      recipe.MealTypeLunch,
		RecipeID:      lunch.ID(),
		RecipeName:    lunch.Name(),
		EstimatedCost: lunch.CostPerServing(),
	})
	return plan
}

func TestPlanRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()
	userID := uuid.New()
	plan := storedPlan(t, userID)
	require.NoError(t, repo.Create(ctx, plan))

	t.Run("OwnedPlan_ShouldBeReturned", func(t *testing.T) {
		found, err := repo.FindByID(ctx, plan.ID(), userID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, plan.ID(), found.ID())
		assert.Equal(t, plan.Summary(), found.Summary())
	})

	t.Run("WrongOwner_ShouldReturnNil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, plan.ID(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("UnknownID_ShouldReturnNil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New(), userID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPlanRepositoryCommit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("MatchingVersion_ShouldStoreAndBump", func(t *testing.T) {
		repo := NewPlanRepository()
		plan := storedPlan(t, userID)
		require.NoError(t, repo.Create(ctx, plan))

		loaded, err := repo.FindByID(ctx, plan.ID(), userID)
		require.NoError(t, err)
		require.NoError(t, loaded.ApplySubstitution(0, mealplan.SlotRecipe{
			RecipeID:   uuid.New(),
			RecipeName: "Swapped",
		}))

		require.NoError(t, repo.Commit(ctx, loaded, loaded.Version()))
		assert.Equal(t, int64(2), loaded.Version())

		fresh, err := repo.FindByID(ctx, plan.ID(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), fresh.Version())
		assert.Equal(t, "Swapped", fresh.Slots()[0].RecipeName)
	})

	t.Run("StaleVersion_ShouldConflict", func(t *testing.T) {
		repo := NewPlanRepository()
		plan := storedPlan(t, userID)
		require.NoError(t, repo.Create(ctx, plan))

		// Two readers load version 1
		first, err := repo.FindByID(ctx, plan.ID(), userID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, plan.ID(), userID)
		require.NoError(t, err)

		require.NoError(t, repo.Commit(ctx, first, first.Version()))

		err = repo.Commit(ctx, second, second.Version())
		assert.ErrorIs(t, err, mealplan.ErrVersionConflict)
	})

	t.Run("UnknownPlan_ShouldReturnNotFound", func(t *testing.T) {
		repo := NewPlanRepository()
		plan := storedPlan(t, userID)

		err := repo.Commit(ctx, plan, plan.Version())
		assert.ErrorIs(t, err, mealplan.ErrPlanNotFound)
	})
}
