package planner

import (
	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
)

// BudgetResolver converts a period budget into a per-day USD ceiling
type BudgetResolver struct{}

// Resolve returns the daily budget for a generation request. An explicit
// request override wins; otherwise the stored budget record is converted
// by its period. nil means unconstrained, and downstream cost scoring
// degrades to a fixed good score instead of failing.
func (BudgetResolver) Resolve(req mealplan.GenerationRequest, profile *preference.Profile) *float64 {
	if override := req.BudgetOverride(); override != nil {
		daily := *override / float64(req.DurationDays())
		return &daily
	}

	if profile != nil && profile.Budget != nil {
		daily := profile.Budget.DailyAmount()
		return &daily
	}

	return nil
}
