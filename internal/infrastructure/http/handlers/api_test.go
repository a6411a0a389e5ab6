package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/application/planner"
	"github.com/mealforge/v1/internal/application/substitution"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/infrastructure/persistence/memory"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/test/testutils"
)

// APIHandlerTestSuite drives the HTTP layer end to end against the
// in-memory adapters
type APIHandlerTestSuite struct {
	suite.Suite
	router  chi.Router
	catalog *memory.Catalog
	factory *testutils.RecipeFactory
	userID  uuid.UUID
}

func (suite *APIHandlerTestSuite) SetupTest() {
	suite.factory = testutils.NewRecipeFactory(time.Now().UnixNano())
	suite.catalog = memory.NewCatalog()
	suite.userID = uuid.New()

	prefs := memory.NewPreferenceStore()
	plans := memory.NewPlanRepository()
	cache := memory.NewCacheRepository()
	log := zap.NewNop()

	plannerSvc := planner.NewService(suite.catalog, prefs, plans, cache, planner.Config{}, log)
	subsSvc := substitution.NewService(suite.catalog, prefs, plans, cache, substitution.Config{}, log)

	api := NewAPIHandler(plannerSvc, subsSvc, log)
	suite.router = chi.NewRouter()
	suite.router.Route("/api/v1", api.RegisterRoutes)
}

func (suite *APIHandlerTestSuite) seedCatalog() {
	for _, mealType := range []recipe.MealType{
		recipe.MealTypeBreakfast,
		recipe.MealTypeLunch,
		recipe.MealTypeDinner,
	} {
		for i := 0; i < 2; i++ {
			suite.catalog.Add(suite.factory.Recipe(mealType))
		}
	}
}

func (suite *APIHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *APIHandlerTestSuite) generatePlan() inbound.MealPlanDTO {
	rec := suite.do(http.MethodPost, "/api/v1/meal-plans", map[string]interface{}{
		"user_id":       suite.userID.String(),
		"duration_days": 1,
	})
	require.Equal(suite.T(), http.StatusCreated, rec.Code)

	var plan inbound.MealPlanDTO
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &plan))
	return plan
}

func (suite *APIHandlerTestSuite) TestMealPlanEndpoints() {
	suite.Run("Generate_ShouldReturnCreatedPlan", func() {
		suite.seedCatalog()

		plan := suite.generatePlan()

		assert.Equal(suite.T(), suite.userID, plan.UserID)
		assert.Len(suite.T(), plan.Slots, 3)
		assert.Equal(suite.T(), int64(1), plan.Version)
	})

	suite.Run("Generate_InvalidDuration_ShouldReturn400", func() {
		rec := suite.do(http.MethodPost, "/api/v1/meal-plans", map[string]interface{}{
			"user_id":       suite.userID.String(),
			"duration_days": 9,
		})

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("Generate_MalformedBody_ShouldReturn400", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/meal-plans",
			bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		suite.router.ServeHTTP(rec, req)

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("Get_ShouldReturnStoredPlan", func() {
		suite.seedCatalog()
		plan := suite.generatePlan()

		rec := suite.do(http.MethodGet,
			fmt.Sprintf("/api/v1/meal-plans/%s?user_id=%s", plan.ID, suite.userID), nil)

		require.Equal(suite.T(), http.StatusOK, rec.Code)
		var fetched inbound.MealPlanDTO
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &fetched))
		assert.Equal(suite.T(), plan.ID, fetched.ID)
	})

	suite.Run("Get_UnknownPlan_ShouldReturn404", func() {
		rec := suite.do(http.MethodGet,
			fmt.Sprintf("/api/v1/meal-plans/%s?user_id=%s", uuid.New(), suite.userID), nil)

		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	})

	suite.Run("Get_MissingUserID_ShouldReturn400", func() {
		rec := suite.do(http.MethodGet,
			fmt.Sprintf("/api/v1/meal-plans/%s", uuid.New()), nil)

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("Regenerate_ShouldReturnNewPlan", func() {
		suite.seedCatalog()
		plan := suite.generatePlan()

		rec := suite.do(http.MethodPost,
			fmt.Sprintf("/api/v1/meal-plans/%s/regenerate", plan.ID),
			map[string]interface{}{"user_id": suite.userID.String()})

		require.Equal(suite.T(), http.StatusCreated, rec.Code)
		var fresh inbound.MealPlanDTO
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &fresh))
		assert.NotEqual(suite.T(), plan.ID, fresh.ID)
		assert.Equal(suite.T(), plan.DurationDays, fresh.DurationDays)
	})
}

func (suite *APIHandlerTestSuite) TestSubstitutionEndpoints() {
	suite.Run("SearchApplyUndo_ShouldRoundTrip", func() {
		suite.seedCatalog()
		plan := suite.generatePlan()
		original := plan.Slots[0].RecipeID

		// An extra candidate close to the slot's nutrition
		slot := plan.Slots[0]
		alt := suite.factory.Recipe(slot.MealType,
			testutils.WithNutrition(slot.Nutrition.Calories, slot.Nutrition.Protein,
				slot.Nutrition.Carbs, slot.Nutrition.Fat),
		)
		suite.catalog.Add(alt)

		rec := suite.do(http.MethodPost,
			fmt.Sprintf("/api/v1/meal-plans/%s/substitutions/search", plan.ID),
			map[string]interface{}{
				"user_id":    suite.userID.String(),
				"meal_index": 0,
			})
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		var search struct {
			Candidates []inbound.SubstitutionCandidateDTO `json:"candidates"`
		}
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &search))
		require.NotEmpty(suite.T(), search.Candidates)

		rec = suite.do(http.MethodPost,
			fmt.Sprintf("/api/v1/meal-plans/%s/substitutions", plan.ID),
			map[string]interface{}{
				"user_id":       suite.userID.String(),
				"meal_index":    0,
				"new_recipe_id": alt.ID().String(),
			})
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		var swapped inbound.MealPlanDTO
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &swapped))
		assert.Equal(suite.T(), alt.ID(), swapped.Slots[0].RecipeID)
		assert.Len(suite.T(), swapped.History, 1)

		rec = suite.do(http.MethodDelete,
			fmt.Sprintf("/api/v1/meal-plans/%s/substitutions/latest?user_id=%s", plan.ID, suite.userID),
			nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		var restored inbound.MealPlanDTO
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &restored))
		assert.Equal(suite.T(), original, restored.Slots[0].RecipeID)
		assert.Empty(suite.T(), restored.History)
	})

	suite.Run("Undo_NothingToUndo_ShouldReturn409", func() {
		suite.seedCatalog()
		plan := suite.generatePlan()

		rec := suite.do(http.MethodDelete,
			fmt.Sprintf("/api/v1/meal-plans/%s/substitutions/latest?user_id=%s", plan.ID, suite.userID),
			nil)

		assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	})

	suite.Run("Apply_BadRecipeID_ShouldReturn400", func() {
		suite.seedCatalog()
		plan := suite.generatePlan()

		rec := suite.do(http.MethodPost,
			fmt.Sprintf("/api/v1/meal-plans/%s/substitutions", plan.ID),
			map[string]interface{}{
				"user_id":       suite.userID.String(),
				"meal_index":    0,
				"new_recipe_id": "not-a-uuid",
			})

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})
}

func (suite *APIHandlerTestSuite) TestPreferenceEndpoints() {
	suite.Run("Swipe_ShouldReturnNoContent", func() {
		rec := suite.do(http.MethodPost, "/api/v1/preferences/swipes", map[string]interface{}{
			"user_id":   suite.userID.String(),
			"recipe_id": uuid.New().String(),
			"action":    "like",
		})

		assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	})

	suite.Run("Swipe_InvalidAction_ShouldReturn400", func() {
		rec := suite.do(http.MethodPost, "/api/v1/preferences/swipes", map[string]interface{}{
			"user_id":   suite.userID.String(),
			"recipe_id": uuid.New().String(),
			"action":    "maybe",
		})

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("Rating_OutOfRange_ShouldReturn400", func() {
		rec := suite.do(http.MethodPost, "/api/v1/preferences/ratings", map[string]interface{}{
			"user_id":   suite.userID.String(),
			"recipe_id": uuid.New().String(),
			"rating":    6,
		})

		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("IngredientPreference_ShouldRequireLikedFlag", func() {
		rec := suite.do(http.MethodPost, "/api/v1/preferences/ingredients", map[string]interface{}{
			"user_id":    suite.userID.String(),
			"ingredient": "cilantro",
		})
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

		rec = suite.do(http.MethodPost, "/api/v1/preferences/ingredients", map[string]interface{}{
			"user_id":    suite.userID.String(),
			"ingredient": "cilantro",
			"liked":      false,
		})
		assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	})

	suite.Run("CuisinePreference_ShouldReturnNoContent", func() {
		rec := suite.do(http.MethodPost, "/api/v1/preferences/cuisines", map[string]interface{}{
			"user_id": suite.userID.String(),
			"cuisine": "italian",
			"rating":  4,
		})

		assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	})
}

func TestAPIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerTestSuite))
}
