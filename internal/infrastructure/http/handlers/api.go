// Package handlers provides the JSON API handlers for meal plan
// generation, substitutions and preference signals
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/pkg/errors"
)

// APIHandler handles the JSON API endpoints
type APIHandler struct {
	planner  inbound.PlannerService
	subs     inbound.SubstitutionService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(
	planner inbound.PlannerService,
	subs inbound.SubstitutionService,
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		planner:  planner,
		subs:     subs,
		validate: validator.New(),
		logger:   logger.Named("api"),
	}
}

// RegisterRoutes mounts the API routes on a chi router
func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/meal-plans", func(r chi.Router) {
		r.Post("/", h.GenerateMealPlan)
		r.Get("/{planID}", h.GetMealPlan)
		r.Post("/{planID}/regenerate", h.RegenerateMealPlan)
		r.Route("/{planID}/substitutions", func(r chi.Router) {
			r.Post("/search", h.SearchSubstitutes)
			r.Post("/", h.ApplySubstitution)
			r.Delete("/latest", h.UndoSubstitution)
		})
	})

	r.Route("/preferences", func(r chi.Router) {
		r.Post("/swipes", h.RecordSwipe)
		r.Post("/ratings", h.RateRecipe)
		r.Post("/ingredients", h.SetIngredientPreference)
		r.Post("/cuisines", h.SetCuisinePreference)
	})
}

// Request payloads

type generatePlanRequest struct {
	UserID         string   `json:"user_id" validate:"required,uuid"`
	DurationDays   int      `json:"duration_days" validate:"required,gte=1,lte=7"`
	StartDate      string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	BudgetOverride *float64 `json:"budget_override" validate:"omitempty,gt=0"`
	IncludeSnacks  bool     `json:"include_snacks"`
}

type regeneratePlanRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type searchSubstitutesRequest struct {
	UserID               string  `json:"user_id" validate:"required,uuid"`
	MealIndex            int     `json:"meal_index" validate:"gte=0"`
	MaxAlternatives      int     `json:"max_alternatives" validate:"gte=0,lte=20"`
	NutritionalTolerance float64 `json:"nutritional_tolerance" validate:"gte=0,lte=1"`
}

type applySubstitutionRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	MealIndex   int    `json:"meal_index" validate:"gte=0"`
	NewRecipeID string `json:"new_recipe_id" validate:"required,uuid"`
}

type swipeRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	RecipeID string `json:"recipe_id" validate:"required,uuid"`
	Action   string `json:"action" validate:"required,oneof=like dislike"`
}

type ratingRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	RecipeID string `json:"recipe_id" validate:"required,uuid"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type ingredientPreferenceRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	Ingredient string `json:"ingredient" validate:"required,min=1"`
	Liked      *bool  `json:"liked" validate:"required"`
}

type cuisinePreferenceRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Cuisine string `json:"cuisine" validate:"required,min=1"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// GenerateMealPlan handles POST /api/v1/meal-plans
func (h *APIHandler) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	cmd := inbound.GenerateMealPlanCommand{
		UserID:         uuid.MustParse(req.UserID),
		DurationDays:   req.DurationDays,
		BudgetOverride: req.BudgetOverride,
		IncludeSnacks:  req.IncludeSnacks,
	}
	if req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", req.StartDate)
		cmd.StartDate = start
	}

	plan, err := h.planner.GenerateMealPlan(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, plan)
}

// GetMealPlan handles GET /api/v1/meal-plans/{planID}
func (h *APIHandler) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathUUID(w, r, "planID")
	if !ok {
		return
	}
	userID, ok := h.queryUUID(w, r, "user_id")
	if !ok {
		return
	}

	plan, err := h.planner.GetMealPlan(r.Context(), planID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// RegenerateMealPlan handles POST /api/v1/meal-plans/{planID}/regenerate
func (h *APIHandler) RegenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathUUID(w, r, "planID")
	if !ok {
		return
	}
	var req regeneratePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.planner.RegenerateMealPlan(r.Context(), uuid.MustParse(req.UserID), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, plan)
}

// SearchSubstitutes handles POST /api/v1/meal-plans/{planID}/substitutions/search
func (h *APIHandler) SearchSubstitutes(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathUUID(w, r, "planID")
	if !ok {
		return
	}
	var req searchSubstitutesRequest
	if !h.decode(w, r, &req) {
		return
	}

	candidates, err := h.subs.FindSubstitutes(r.Context(), inbound.SubstitutionSearchQuery{
		PlanID:               planID,
		MealIndex:            req.MealIndex,
		UserID:               uuid.MustParse(req.UserID),
		MaxAlternatives:      req.MaxAlternatives,
		NutritionalTolerance: req.NutritionalTolerance,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
	})
}

// ApplySubstitution handles POST /api/v1/meal-plans/{planID}/substitutions
func (h *APIHandler) ApplySubstitution(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathUUID(w, r, "planID")
	if !ok {
		return
	}
	var req applySubstitutionRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.subs.ApplySubstitution(r.Context(), inbound.ApplySubstitutionCommand{
		PlanID:      planID,
		MealIndex:   req.MealIndex,
		NewRecipeID: uuid.MustParse(req.NewRecipeID),
		UserID:      uuid.MustParse(req.UserID),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// UndoSubstitution handles DELETE /api/v1/meal-plans/{planID}/substitutions/latest
func (h *APIHandler) UndoSubstitution(w http.ResponseWriter, r *http.Request) {
	planID, ok := h.pathUUID(w, r, "planID")
	if !ok {
		return
	}
	userID, ok := h.queryUUID(w, r, "user_id")
	if !ok {
		return
	}

	plan, err := h.subs.UndoSubstitution(r.Context(), planID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// RecordSwipe handles POST /api/v1/preferences/swipes
func (h *APIHandler) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	var req swipeRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.planner.RecordSwipe(r.Context(), inbound.RecordSwipeCommand{
		UserID:   uuid.MustParse(req.UserID),
		RecipeID: uuid.MustParse(req.RecipeID),
		Action:   preference.SwipeAction(req.Action),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStatus(w, http.StatusNoContent)
}

// RateRecipe handles POST /api/v1/preferences/ratings
func (h *APIHandler) RateRecipe(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.planner.RateRecipe(r.Context(), inbound.RateRecipeCommand{
		UserID:   uuid.MustParse(req.UserID),
		RecipeID: uuid.MustParse(req.RecipeID),
		Rating:   req.Rating,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStatus(w, http.StatusNoContent)
}

// SetIngredientPreference handles POST /api/v1/preferences/ingredients
func (h *APIHandler) SetIngredientPreference(w http.ResponseWriter, r *http.Request) {
	var req ingredientPreferenceRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.planner.SetIngredientPreference(r.Context(), inbound.IngredientPreferenceCommand{
		UserID:     uuid.MustParse(req.UserID),
		Ingredient: req.Ingredient,
		Liked:      *req.Liked,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStatus(w, http.StatusNoContent)
}

// SetCuisinePreference handles POST /api/v1/preferences/cuisines
func (h *APIHandler) SetCuisinePreference(w http.ResponseWriter, r *http.Request) {
	var req cuisinePreferenceRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.planner.SetCuisinePreference(r.Context(), inbound.CuisinePreferenceCommand{
		UserID:  uuid.MustParse(req.UserID),
		Cuisine: recipe.CuisineType(req.Cuisine),
		Rating:  req.Rating,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStatus(w, http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *APIHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Helpers

// decode parses and validates a JSON body, writing the error response on
// failure
func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.writeError(w, r, errors.NewInvalidRequestError("malformed JSON body"))
		return false
	}
	if err := h.validate.Struct(dest); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

// pathUUID parses a UUID path parameter
func (h *APIHandler) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeError(w, r, errors.NewInvalidRequestError(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses a UUID query parameter
func (h *APIHandler) queryUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		h.writeError(w, r, errors.NewInvalidRequestError(name+" query parameter must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *APIHandler) writeStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// writeError maps any error onto the AppError taxonomy and writes the
// standard error envelope with the request's status code
func (h *APIHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
