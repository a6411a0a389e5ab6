// Package mealplan contains the meal plan aggregate: the day-by-meal slot
// grid, its derived nutrition and cost summaries, and the substitution
// history stack. Every slot mutation recomputes the summaries in the same
// operation so they can never drift from the slots.
package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is the aggregate root for a generated plan
type MealPlan struct {
	id           uuid.UUID
	version      int64 // optimistic locking
	userID       uuid.UUID
	startDate    time.Time
	durationDays int

	includeSnacks bool
	dailyBudget   *float64 // USD per day, nil when unconstrained
	restrictions  []string // dietary restrictions used at generation time

	slots          []MealSlot
	summary        NutritionSummary
	dailySummaries []DailySummary
	totalCost      float64

	algorithmVersion string
	history          []SubstitutionRecord

	createdAt time.Time
	updatedAt time.Time
}

// PlanSnapshot carries the full plan state for persistence mapping
type PlanSnapshot struct {
	ID               uuid.UUID
	Version          int64
	UserID           uuid.UUID
	StartDate        time.Time
	DurationDays     int
	IncludeSnacks    bool
	DailyBudget      *float64
	Restrictions     []string
	Slots            []MealSlot
	AlgorithmVersion string
	History          []SubstitutionRecord
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewMealPlan creates a plan shell from a validated generation request.
// Slots are added by the selector; summaries start empty.
func NewMealPlan(req GenerationRequest, dailyBudget *float64, restrictions []string, algorithmVersion string) *MealPlan {
	now := time.Now()
	return &MealPlan{
		id:               uuid.New(),
		version:          1,
		userID:           req.UserID(),
		startDate:        req.StartDate(),
		durationDays:     req.DurationDays(),
		includeSnacks:    req.IncludeSnacks(),
		dailyBudget:      dailyBudget,
		restrictions:     restrictions,
		algorithmVersion: algorithmVersion,
		createdAt:        now,
		updatedAt:        now,
	}
}

// Reconstitute rebuilds a plan from stored state and recomputes the
// summaries from the slots (the no-drift invariant holds structurally:
// summaries are never loaded, always derived)
func Reconstitute(s PlanSnapshot) *MealPlan {
	p := &MealPlan{
		id:               s.ID,
		version:          s.Version,
		userID:           s.UserID,
		startDate:        s.StartDate,
		durationDays:     s.DurationDays,
		includeSnacks:    s.IncludeSnacks,
		dailyBudget:      s.DailyBudget,
		restrictions:     s.Restrictions,
		slots:            s.Slots,
		algorithmVersion: s.AlgorithmVersion,
		history:          s.History,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
	p.recompute()
	return p
}

// ToSnapshot exports the plan state for persistence
func (p *MealPlan) ToSnapshot() PlanSnapshot {
	return PlanSnapshot{
		ID:               p.id,
		Version:          p.version,
		UserID:           p.userID,
		StartDate:        p.startDate,
		DurationDays:     p.durationDays,
		IncludeSnacks:    p.includeSnacks,
		DailyBudget:      p.dailyBudget,
		Restrictions:     p.restrictions,
		Slots:            p.slots,
		AlgorithmVersion: p.algorithmVersion,
		History:          p.history,
		CreatedAt:        p.createdAt,
		UpdatedAt:        p.updatedAt,
	}
}

// ID returns the plan's unique identifier
func (p *MealPlan) ID() uuid.UUID {
	return p.id
}

// Version returns the optimistic-locking version
func (p *MealPlan) Version() int64 {
	return p.version
}

// IncrementVersion bumps the version after a successful commit
func (p *MealPlan) IncrementVersion() {
	p.version++
}

// UserID returns the owning user's identifier
func (p *MealPlan) UserID() uuid.UUID {
	return p.userID
}

// StartDate returns the plan's first day
func (p *MealPlan) StartDate() time.Time {
	return p.startDate
}

// DurationDays returns the plan length in days
func (p *MealPlan) DurationDays() int {
	return p.durationDays
}

// IncludeSnacks reports whether the plan carries a snack slot per day
func (p *MealPlan) IncludeSnacks() bool {
	return p.includeSnacks
}

// DailyBudget returns the per-day USD ceiling, nil when unconstrained
func (p *MealPlan) DailyBudget() *float64 {
	return p.dailyBudget
}

// Restrictions returns the dietary restrictions used at generation time
func (p *MealPlan) Restrictions() []string {
	return p.restrictions
}

// AlgorithmVersion returns the generation algorithm tag
func (p *MealPlan) AlgorithmVersion() string {
	return p.algorithmVersion
}

// Slots returns the ordered meal slots
func (p *MealPlan) Slots() []MealSlot {
	return p.slots
}

// Slot returns the slot at the given meal index
func (p *MealPlan) Slot(index int) (MealSlot, error) {
	if index < 0 || index >= len(p.slots) {
		return MealSlot{}, ErrSlotOutOfRange
	}
	return p.slots[index], nil
}

// Summary returns the overall nutrition summary
func (p *MealPlan) Summary() NutritionSummary {
	return p.summary
}

// DailySummaries returns the per-day breakdown, one entry per plan day
func (p *MealPlan) DailySummaries() []DailySummary {
	return p.dailySummaries
}

// DailySummaryFor returns the breakdown for one day (1-based)
func (p *MealPlan) DailySummaryFor(day int) (DailySummary, bool) {
	if day < 1 || day > len(p.dailySummaries) {
		return DailySummary{}, false
	}
	return p.dailySummaries[day-1], true
}

// TotalCost returns the estimated cost across all slots
func (p *MealPlan) TotalCost() float64 {
	return p.totalCost
}

// History returns the append-only substitution history, oldest first
func (p *MealPlan) History() []SubstitutionRecord {
	return p.history
}

// LastSubstitution returns the most recent history entry
func (p *MealPlan) LastSubstitution() (SubstitutionRecord, bool) {
	if len(p.history) == 0 {
		return SubstitutionRecord{}, false
	}
	return p.history[len(p.history)-1], true
}

// CreatedAt returns when the plan was generated
func (p *MealPlan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plan was last modified
func (p *MealPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

// AddSlot appends a selected slot during generation
func (p *MealPlan) AddSlot(slot MealSlot) {
	p.slots = append(p.slots, slot)
	p.touch()
}

// ApplySubstitution overwrites the slot at mealIndex with the replacement
// recipe, pushes a history entry and recomputes the summaries. This is the
// only path that swaps a slot's recipe.
func (p *MealPlan) ApplySubstitution(mealIndex int, replacement SlotRecipe) error {
	if mealIndex < 0 || mealIndex >= len(p.slots) {
		return ErrSlotOutOfRange
	}

	slot := &p.slots[mealIndex]
	p.history = append(p.history, SubstitutionRecord{
		MealIndex:        mealIndex,
		OriginalRecipeID: slot.RecipeID,
		NewRecipeID:      replacement.RecipeID,
		Timestamp:        time.Now(),
	})

	slot.RecipeID = replacement.RecipeID
	slot.RecipeName = replacement.RecipeName
	slot.EstimatedCost = replacement.EstimatedCost
	slot.Nutrition = replacement.Nutrition

	p.touch()
	return nil
}

// UndoSubstitution pops the most recent history entry and restores the
// recorded slot to the original recipe. Single-level stack discipline:
// older entries remain but are not replayed.
func (p *MealPlan) UndoSubstitution(original SlotRecipe) (SubstitutionRecord, error) {
	last, ok := p.LastSubstitution()
	if !ok {
		return SubstitutionRecord{}, ErrNothingToUndo
	}
	if last.MealIndex < 0 || last.MealIndex >= len(p.slots) {
		return SubstitutionRecord{}, ErrSlotOutOfRange
	}

	slot := &p.slots[last.MealIndex]
	slot.RecipeID = original.RecipeID
	slot.RecipeName = original.RecipeName
	slot.EstimatedCost = original.EstimatedCost
	slot.Nutrition = original.Nutrition

	p.history = p.history[:len(p.history)-1]
	p.touch()
	return last, nil
}

// touch recomputes derived state after any mutation
func (p *MealPlan) touch() {
	p.recompute()
	p.updatedAt = time.Now()
}

func (p *MealPlan) recompute() {
	p.summary, p.dailySummaries, p.totalCost = ComputeSummary(p.slots, p.durationDays)
}
