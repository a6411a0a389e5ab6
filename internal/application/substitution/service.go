package substitution

import (
	"context"
	stderrors "errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/application/planner"
	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

// Defaults applied when a search query leaves them zero
const (
	defaultMaxAlternatives = 5
	defaultTolerance       = 0.15
)

// Calorie delta thresholds for the impact level classification
const (
	impactMinimalKcal  = 100.0
	impactModerateKcal = 200.0
)

// Config carries the substitution tunables
type Config struct {
	MaxAlternatives      int
	NutritionalTolerance float64
}

// Service implements the substitution use cases: find ranked alternatives,
// apply a swap, undo the latest swap
type Service struct {
	catalog outbound.CatalogReader
	prefs   outbound.PreferenceStore
	plans   outbound.PlanRepository
	cache   outbound.CacheRepository
	scorer  Scorer
	config  Config
	logger  *zap.Logger
}

// NewService creates a new substitution service
func NewService(
	catalog outbound.CatalogReader,
	prefs outbound.PreferenceStore,
	plans outbound.PlanRepository,
	cache outbound.CacheRepository,
	config Config,
	logger *zap.Logger,
) inbound.SubstitutionService {
	if config.MaxAlternatives <= 0 {
		config.MaxAlternatives = defaultMaxAlternatives
	}
	if config.NutritionalTolerance <= 0 {
		config.NutritionalTolerance = defaultTolerance
	}
	return &Service{
		catalog: catalog,
		prefs:   prefs,
		plans:   plans,
		cache:   cache,
		scorer:  NewScorer(),
		config:  config,
		logger:  logger.Named("substitution-service"),
	}
}

// FindSubstitutes returns ranked replacement candidates for one meal slot.
// Candidates share the slot's meal type, respect the plan's dietary
// restrictions and pass the calorie tolerance gate.
func (s *Service) FindSubstitutes(ctx context.Context, query inbound.SubstitutionSearchQuery) ([]inbound.SubstitutionCandidateDTO, error) {
	if query.MaxAlternatives <= 0 {
		query.MaxAlternatives = s.config.MaxAlternatives
	}
	if query.NutritionalTolerance <= 0 {
		query.NutritionalTolerance = s.config.NutritionalTolerance
	}

	plan, slot, err := s.loadSlot(ctx, query.PlanID, query.UserID, query.MealIndex)
	if err != nil {
		return nil, err
	}

	profile := s.loadProfile(ctx, query.UserID)

	current, err := s.catalog.FindByID(ctx, slot.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find current recipe", err)
	}

	pool, err := s.loadCandidates(ctx, plan.Restrictions())
	if err != nil {
		return nil, errors.NewDatabaseError("load candidate recipes", err)
	}

	type scoredCandidate struct {
		recipe *recipe.Recipe
		scores Scores
	}

	var scored []scoredCandidate
	for _, cand := range pool {
		if cand.ID() == slot.RecipeID || cand.MealType() != slot.MealType {
			continue
		}
		if !passesToleranceGate(cand, slot, query.NutritionalTolerance) {
			continue
		}
		scored = append(scored, scoredCandidate{
			recipe: cand,
			scores: s.scorer.Score(cand, slot, current, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].scores.Total > scored[j].scores.Total
	})
	if len(scored) > query.MaxAlternatives {
		scored = scored[:query.MaxAlternatives]
	}

	results := make([]inbound.SubstitutionCandidateDTO, 0, len(scored))
	for _, sc := range scored {
		results = append(results, inbound.SubstitutionCandidateDTO{
			RecipeID:        sc.recipe.ID(),
			RecipeName:      sc.recipe.Name(),
			Cuisine:         sc.recipe.Cuisine(),
			PrepTimeMinutes: sc.recipe.PrepTimeMinutes(),
			CostPerServing:  sc.recipe.CostPerServing(),
			TotalScore:      sc.scores.Total,
			Scores: inbound.SubstitutionScoresDTO{
				NutritionSimilarity: sc.scores.NutritionSimilarity,
				UserPreference:      sc.scores.UserPreference,
				CostEfficiency:      sc.scores.CostEfficiency,
				PrepTimeMatch:       sc.scores.PrepTimeMatch,
			},
			Impact: computeImpact(plan, slot, sc.recipe),
		})
	}

	s.logger.Debug("Substitution search completed",
		zap.String("plan_id", query.PlanID.String()),
		zap.Int("meal_index", query.MealIndex),
		zap.Int("candidates", len(results)),
	)

	return results, nil
}

// ApplySubstitution swaps one slot's recipe for a new one, records the
// history entry and commits the plan optimistically
func (s *Service) ApplySubstitution(ctx context.Context, cmd inbound.ApplySubstitutionCommand) (*inbound.MealPlanDTO, error) {
	plan, slot, err := s.loadSlot(ctx, cmd.PlanID, cmd.UserID, cmd.MealIndex)
	if err != nil {
		return nil, err
	}

	replacement, err := s.catalog.FindByID(ctx, cmd.NewRecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find replacement recipe", err)
	}
	if replacement == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.NewRecipeID.String())
	}
	if replacement.MealType() != slot.MealType {
		return nil, errors.NewInvalidRequestError("replacement recipe has a different meal type than the slot")
	}

	if err := plan.ApplySubstitution(cmd.MealIndex, slotRecipe(replacement)); err != nil {
		return nil, errors.NewInvalidSlotError(cmd.MealIndex)
	}

	if err := s.commit(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Substitution applied",
		zap.String("plan_id", plan.ID().String()),
		zap.Int("meal_index", cmd.MealIndex),
		zap.String("new_recipe_id", cmd.NewRecipeID.String()),
	)

	return planner.PlanToDTO(plan), nil
}

// UndoSubstitution reverts the most recent substitution on a plan
func (s *Service) UndoSubstitution(ctx context.Context, planID, userID uuid.UUID) (*inbound.MealPlanDTO, error) {
	plan, err := s.loadPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	last, ok := plan.LastSubstitution()
	if !ok {
		return nil, errors.NewNothingToUndoError(planID.String())
	}

	original, err := s.catalog.FindByID(ctx, last.OriginalRecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find original recipe", err)
	}
	if original == nil {
		return nil, errors.NewRecipeNotFoundError(last.OriginalRecipeID.String())
	}

	if _, err := plan.UndoSubstitution(slotRecipe(original)); err != nil {
		if stderrors.Is(err, mealplan.ErrNothingToUndo) {
			return nil, errors.NewNothingToUndoError(planID.String())
		}
		return nil, errors.NewInvalidSlotError(last.MealIndex)
	}

	if err := s.commit(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Substitution undone",
		zap.String("plan_id", plan.ID().String()),
		zap.Int("meal_index", last.MealIndex),
	)

	return planner.PlanToDTO(plan), nil
}

// loadPlan fetches a plan or maps its absence to a not-found error
func (s *Service) loadPlan(ctx context.Context, planID, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := s.plans.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if plan == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}
	return plan, nil
}

// loadSlot fetches a plan and range-checks the meal index
func (s *Service) loadSlot(ctx context.Context, planID, userID uuid.UUID, mealIndex int) (*mealplan.MealPlan, mealplan.MealSlot, error) {
	plan, err := s.loadPlan(ctx, planID, userID)
	if err != nil {
		return nil, mealplan.MealSlot{}, err
	}

	slot, err := plan.Slot(mealIndex)
	if err != nil {
		return nil, mealplan.MealSlot{}, errors.NewInvalidSlotError(mealIndex)
	}
	return plan, slot, nil
}

// loadProfile fetches the preference profile, degrading to nil on errors
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

// loadCandidates fetches the candidate pool under the plan's restrictions
func (s *Service) loadCandidates(ctx context.Context, restrictions []string) ([]*recipe.Recipe, error) {
	if len(restrictions) > 0 {
		return s.catalog.FindByDietary(ctx, restrictions)
	}
	return s.catalog.FindActive(ctx)
}

// commit persists the mutated plan optimistically and invalidates its
// cached DTO
func (s *Service) commit(ctx context.Context, plan *mealplan.MealPlan) error {
	expected := plan.Version()
	if err := s.plans.Commit(ctx, plan, expected); err != nil {
		if stderrors.Is(err, mealplan.ErrVersionConflict) {
			return errors.NewVersionConflictError(plan.ID().String(), expected)
		}
		return errors.NewDatabaseError("commit meal plan", err)
	}

	_ = s.cache.Delete(ctx, planner.PlanCacheKey(plan.ID()))
	return nil
}

// slotRecipe snapshots a recipe into the form written onto a slot,
// applying the per-meal-type cost fallback when cost data is missing
func slotRecipe(rec *recipe.Recipe) mealplan.SlotRecipe {
	cost := rec.CostPerServing()
	if cost <= 0 {
		cost = planner.FallbackCost(rec.MealType())
	}

	var nutrition recipe.NutritionInfo
	if n := rec.Nutrition(); n != nil {
		nutrition = *n
	}

	return mealplan.SlotRecipe{
		RecipeID:      rec.ID(),
		RecipeName:    rec.Name(),
		EstimatedCost: cost,
		Nutrition:     nutrition,
	}
}

// passesToleranceGate checks the candidate's calories against the slot's
// current calories within the relative tolerance. Missing nutrition on
// either side auto-passes so sparse catalogs still produce candidates.
func passesToleranceGate(cand *recipe.Recipe, slot mealplan.MealSlot, tolerance float64) bool {
	current := slot.Nutrition.Calories
	if current <= 0 {
		return true
	}

	n := cand.Nutrition()
	if n == nil || n.Calories <= 0 {
		return true
	}

	delta := n.Calories - current
	if delta < 0 {
		delta = -delta
	}
	return delta <= tolerance*current
}

// computeImpact describes how swapping in the candidate would shift the
// slot's day: nutrient deltas, new daily totals and a coarse level
func computeImpact(plan *mealplan.MealPlan, slot mealplan.MealSlot, cand *recipe.Recipe) inbound.SubstitutionImpactDTO {
	var candNutrition recipe.NutritionInfo
	if n := cand.Nutrition(); n != nil {
		candNutrition = *n
	}

	deltas := inbound.NutritionSummaryDTO{
		Calories: candNutrition.Calories - slot.Nutrition.Calories,
		Protein:  candNutrition.Protein - slot.Nutrition.Protein,
		Carbs:    candNutrition.Carbs - slot.Nutrition.Carbs,
		Fat:      candNutrition.Fat - slot.Nutrition.Fat,
	}

	var totals inbound.NutritionSummaryDTO
	if day, ok := plan.DailySummaryFor(slot.Day); ok {
		totals = inbound.NutritionSummaryDTO{
			Calories: day.Nutrition.Calories + deltas.Calories,
			Protein:  day.Nutrition.Protein + deltas.Protein,
			Carbs:    day.Nutrition.Carbs + deltas.Carbs,
			Fat:      day.Nutrition.Fat + deltas.Fat,
		}
	}

	candCost := cand.CostPerServing()
	if candCost <= 0 {
		candCost = planner.FallbackCost(cand.MealType())
	}

	return inbound.SubstitutionImpactDTO{
		NutrientDeltas: deltas,
		NewDailyTotals: totals,
		CostDelta:      candCost - slot.EstimatedCost,
		Level:          impactLevel(deltas.Calories),
	}
}

// impactLevel buckets the absolute calorie delta: up to 100 kcal is
// minimal, up to 200 kcal is moderate, anything above is significant
func impactLevel(calorieDelta float64) string {
	if calorieDelta < 0 {
		calorieDelta = -calorieDelta
	}
	switch {
	case calorieDelta <= impactMinimalKcal:
		return "minimal"
	case calorieDelta <= impactModerateKcal:
		return "moderate"
	default:
		return "significant"
	}
}
