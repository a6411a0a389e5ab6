package planner

import (
	"time"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// PlanToDTO maps the meal plan aggregate to its transport representation
func PlanToDTO(plan *mealplan.MealPlan) *inbound.MealPlanDTO {
	slots := make([]inbound.MealSlotDTO, 0, len(plan.Slots()))
	for i, slot := range plan.Slots() {
		slots = append(slots, inbound.MealSlotDTO{
			MealIndex:     i,
			Day:           slot.Day,
			MealType:      slot.MealType,
			RecipeID:      slot.RecipeID,
			RecipeName:    slot.RecipeName,
			Score:         slot.Score,
			EstimatedCost: slot.EstimatedCost,
			Nutrition: inbound.NutritionSummaryDTO{
				Calories: slot.Nutrition.Calories,
				Protein:  slot.Nutrition.Protein,
				Carbs:    slot.Nutrition.Carbs,
				Fat:      slot.Nutrition.Fat,
			},
		})
	}

	dailies := make([]inbound.DailySummaryDTO, 0, len(plan.DailySummaries()))
	for _, day := range plan.DailySummaries() {
		dailies = append(dailies, inbound.DailySummaryDTO{
			Day: day.Day,
			Nutrition: inbound.NutritionSummaryDTO{
				Calories: day.Nutrition.Calories,
				Protein:  day.Nutrition.Protein,
				Carbs:    day.Nutrition.Carbs,
				Fat:      day.Nutrition.Fat,
			},
			Cost: day.Cost,
		})
	}

	var history []inbound.SubstitutionRecordDTO
	for _, rec := range plan.History() {
		history = append(history, inbound.SubstitutionRecordDTO{
			MealIndex:        rec.MealIndex,
			OriginalRecipeID: rec.OriginalRecipeID,
			NewRecipeID:      rec.NewRecipeID,
			Timestamp:        rec.Timestamp.Format(time.RFC3339),
		})
	}

	summary := plan.Summary()
	return &inbound.MealPlanDTO{
		ID:            plan.ID(),
		UserID:        plan.UserID(),
		StartDate:     plan.StartDate().Format("2006-01-02"),
		DurationDays:  plan.DurationDays(),
		IncludeSnacks: plan.IncludeSnacks(),
		Slots:         slots,
		Summary: inbound.NutritionSummaryDTO{
			Calories: summary.Calories,
			Protein:  summary.Protein,
			Carbs:    summary.Carbs,
			Fat:      summary.Fat,
		},
		DailySummaries:   dailies,
		TotalCost:        plan.TotalCost(),
		DailyBudget:      plan.DailyBudget(),
		Restrictions:     plan.Restrictions(),
		AlgorithmVersion: plan.AlgorithmVersion(),
		History:          history,
		Version:          plan.Version(),
		CreatedAt:        plan.CreatedAt().Format(time.RFC3339),
		UpdatedAt:        plan.UpdatedAt().Format(time.RFC3339),
	}
}
