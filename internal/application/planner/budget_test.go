package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
)

func budgetRequest(t *testing.T, days int, override *float64) mealplan.GenerationRequest {
	t.Helper()
	req, err := mealplan.NewGenerationRequest(mealplan.GenerationParams{
		UserID:         uuid.New(),
		DurationDays:   days,
		BudgetOverride: override,
	})
	require.NoError(t, err)
	return req
}

func TestBudgetResolver(t *testing.T) {
	var resolver BudgetResolver

	t.Run("Override_ShouldDivideByDuration", func(t *testing.T) {
		override := 70.0
		req := budgetRequest(t, 7, &override)

		daily := resolver.Resolve(req, nil)

		require.NotNil(t, daily)
		assert.InDelta(t, 10.0, *daily, 0.001)
	})

	t.Run("Override_ShouldWinOverStoredBudget", func(t *testing.T) {
		override := 30.0
		req := budgetRequest(t, 3, &override)
		profile := preference.NewProfile(uuid.New())
		profile.Budget = &preference.Budget{Period: preference.BudgetPeriodDaily, Amount: 99}

		daily := resolver.Resolve(req, profile)

		require.NotNil(t, daily)
		assert.InDelta(t, 10.0, *daily, 0.001)
	})

	t.Run("WeeklyBudget_ShouldDivideBySeven", func(t *testing.T) {
		req := budgetRequest(t, 3, nil)
		profile := preference.NewProfile(uuid.New())
		profile.Budget = &preference.Budget{Period: preference.BudgetPeriodWeekly, Amount: 84}

		daily := resolver.Resolve(req, profile)

		require.NotNil(t, daily)
		assert.InDelta(t, 12.0, *daily, 0.001)
	})

	t.Run("MonthlyBudget_ShouldDivideByThirty", func(t *testing.T) {
		req := budgetRequest(t, 3, nil)
		profile := preference.NewProfile(uuid.New())
		profile.Budget = &preference.Budget{Period: preference.BudgetPeriodMonthly, Amount: 300}

		daily := resolver.Resolve(req, profile)

		require.NotNil(t, daily)
		assert.InDelta(t, 10.0, *daily, 0.001)
	})

	t.Run("NoBudgetAnywhere_ShouldReturnNil", func(t *testing.T) {
		req := budgetRequest(t, 3, nil)

		assert.Nil(t, resolver.Resolve(req, nil))
		assert.Nil(t, resolver.Resolve(req, preference.NewProfile(uuid.New())))
	})
}
