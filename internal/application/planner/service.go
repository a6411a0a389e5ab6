// Package planner provides the application layer for meal plan generation:
// target and budget resolution, multi-factor recipe scoring, greedy slot
// selection and plan persistence.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

// Config carries the planner tunables
type Config struct {
	AlgorithmVersion string
	PlanCacheTTL     time.Duration
}

// Service implements the meal plan generation use cases
type Service struct {
	catalog  outbound.CatalogReader
	prefs    outbound.PreferenceStore
	plans    outbound.PlanRepository
	cache    outbound.CacheRepository
	scorer   RecipeScorer
	selector MealSelector
	targets  TargetResolver
	budget   BudgetResolver
	config   Config
	logger   *zap.Logger
}

// NewService creates a new planner service
func NewService(
	catalog outbound.CatalogReader,
	prefs outbound.PreferenceStore,
	plans outbound.PlanRepository,
	cache outbound.CacheRepository,
	config Config,
	logger *zap.Logger,
) inbound.PlannerService {
	if config.AlgorithmVersion == "" {
		config.AlgorithmVersion = "v2.1"
	}
	if config.PlanCacheTTL == 0 {
		config.PlanCacheTTL = time.Hour
	}
	return &Service{
		catalog:  catalog,
		prefs:    prefs,
		plans:    plans,
		cache:    cache,
		scorer:   NewRecipeScorer(),
		selector: NewMealSelector(),
		config:   config,
		logger:   logger.Named("planner-service"),
	}
}

// GenerateMealPlan runs the full pipeline: resolve targets and budget,
// load the dietary-filtered candidate pool, score, select, summarize and
// persist a new plan
func (s *Service) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (*inbound.MealPlanDTO, error) {
	s.logger.Info("Generating meal plan",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("duration_days", cmd.DurationDays),
		zap.Bool("include_snacks", cmd.IncludeSnacks),
	)

	req, err := mealplan.NewGenerationRequest(mealplan.GenerationParams{
		UserID:          cmd.UserID,
		DurationDays:    cmd.DurationDays,
		StartDate:       cmd.StartDate,
		BudgetOverride:  cmd.BudgetOverride,
		IncludeSnacks:   cmd.IncludeSnacks,
		ForceRegenerate: cmd.ForceRegenerate,
	})
	if err != nil {
		return nil, errors.NewInvalidRequestError(err.Error())
	}

	profile := s.loadProfile(ctx, cmd.UserID)
	target := s.targets.Resolve(profile)
	dailyBudget := s.budget.Resolve(req, profile)

	var restrictions []string
	if profile != nil {
		restrictions = profile.DietaryRestrictions
	}

	candidates, err := s.loadCandidates(ctx, restrictions)
	if err != nil {
		return nil, errors.NewDatabaseError("load candidate recipes", err)
	}
	if len(candidates) == 0 {
		return nil, errors.NewNoCandidatesError(restrictions)
	}

	scored := s.scorer.ScoreAll(candidates, target, dailyBudget, profile)
	slots := s.selector.Select(req, scored, candidates, profile)

	plan := mealplan.NewMealPlan(req, dailyBudget, restrictions, s.config.AlgorithmVersion)
	for _, slot := range slots {
		plan.AddSlot(slot)
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, errors.NewDatabaseError("create meal plan", err)
	}

	s.logger.Info("Meal plan generated",
		zap.String("plan_id", plan.ID().String()),
		zap.Int("slots", len(plan.Slots())),
		zap.Float64("total_cost", plan.TotalCost()),
	)

	return PlanToDTO(plan), nil
}

// RegenerateMealPlan reconstructs a generation request from a stored
// plan's parameters and generates again. No anti-repeat across
// regenerations beyond the normal per-run variety rule.
func (s *Service) RegenerateMealPlan(ctx context.Context, userID, planID uuid.UUID) (*inbound.MealPlanDTO, error) {
	plan, err := s.plans.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if plan == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}

	cmd := inbound.GenerateMealPlanCommand{
		UserID:          userID,
		DurationDays:    plan.DurationDays(),
		StartDate:       plan.StartDate(),
		IncludeSnacks:   plan.IncludeSnacks(),
		ForceRegenerate: true,
	}
	if daily := plan.DailyBudget(); daily != nil {
		total := *daily * float64(plan.DurationDays())
		cmd.BudgetOverride = &total
	}

	return s.GenerateMealPlan(ctx, cmd)
}

// GetMealPlan retrieves a plan, read-through cached
func (s *Service) GetMealPlan(ctx context.Context, planID, userID uuid.UUID) (*inbound.MealPlanDTO, error) {
	if cached := s.cachedPlan(ctx, planID); cached != nil && cached.UserID == userID {
		return cached, nil
	}

	plan, err := s.plans.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if plan == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}

	dto := PlanToDTO(plan)
	s.cachePlan(ctx, dto)
	return dto, nil
}

// RecordSwipe stores a like/dislike reaction
func (s *Service) RecordSwipe(ctx context.Context, cmd inbound.RecordSwipeCommand) error {
	if cmd.Action != preference.SwipeLike && cmd.Action != preference.SwipeDislike {
		return errors.NewInvalidRequestError(preference.ErrInvalidSwipe.Error())
	}
	if err := s.prefs.RecordSwipe(ctx, cmd.UserID, cmd.RecipeID, cmd.Action); err != nil {
		return errors.NewDatabaseError("record swipe", err)
	}
	return nil
}

// RateRecipe stores an explicit 1-5 rating
func (s *Service) RateRecipe(ctx context.Context, cmd inbound.RateRecipeCommand) error {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return errors.NewInvalidRequestError(preference.ErrInvalidRating.Error())
	}
	if err := s.prefs.SetRating(ctx, cmd.UserID, cmd.RecipeID, cmd.Rating); err != nil {
		return errors.NewDatabaseError("set rating", err)
	}
	return nil
}

// SetIngredientPreference stores a liked or disliked ingredient
func (s *Service) SetIngredientPreference(ctx context.Context, cmd inbound.IngredientPreferenceCommand) error {
	if cmd.Ingredient == "" {
		return errors.NewInvalidRequestError("ingredient is required")
	}
	if err := s.prefs.SetIngredientPreference(ctx, cmd.UserID, cmd.Ingredient, cmd.Liked); err != nil {
		return errors.NewDatabaseError("set ingredient preference", err)
	}
	return nil
}

// SetCuisinePreference stores a 1-5 cuisine rating
func (s *Service) SetCuisinePreference(ctx context.Context, cmd inbound.CuisinePreferenceCommand) error {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return errors.NewInvalidRequestError(preference.ErrInvalidRating.Error())
	}
	if err := s.prefs.SetCuisinePreference(ctx, cmd.UserID, cmd.Cuisine, cmd.Rating); err != nil {
		return errors.NewDatabaseError("set cuisine preference", err)
	}
	return nil
}

// loadProfile fetches the preference profile, degrading to nil (neutral
// scoring) on store errors instead of failing generation
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) *preference.Profile {
	profile, err := s.prefs.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("Preference store unavailable, scoring neutral",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil
	}
	return profile
}

// loadCandidates fetches the candidate pool, dietary-filtered when
// restrictions exist
func (s *Service) loadCandidates(ctx context.Context, restrictions []string) ([]*recipe.Recipe, error) {
	if len(restrictions) > 0 {
		return s.catalog.FindByDietary(ctx, restrictions)
	}
	return s.catalog.FindActive(ctx)
}

// cachedPlan attempts a cache hit for a plan DTO
func (s *Service) cachedPlan(ctx context.Context, planID uuid.UUID) *inbound.MealPlanDTO {
	data, err := s.cache.Get(ctx, PlanCacheKey(planID))
	if err != nil || len(data) == 0 {
		return nil
	}
	var dto inbound.MealPlanDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil
	}
	return &dto
}

// cachePlan stores a plan DTO, best effort
func (s *Service) cachePlan(ctx context.Context, dto *inbound.MealPlanDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, PlanCacheKey(dto.ID), data, s.config.PlanCacheTTL)
}

// PlanCacheKey is the cache key for a plan's DTO. Shared with the
// substitution side, which invalidates it on apply and undo.
func PlanCacheKey(planID uuid.UUID) string {
	return fmt.Sprintf("mealplan:%s", planID.String())
}
