package mealplan

import "errors"

// Domain errors for meal plan operations

var (
	// Request validation errors
	ErrInvalidDuration = errors.New("plan duration must be between 1 and 7 days")

	// Slot errors
	ErrSlotOutOfRange = errors.New("meal index is out of range for this plan")

	// History errors
	ErrNothingToUndo = errors.New("no substitutions to undo")

	// Persistence errors
	ErrPlanNotFound    = errors.New("meal plan not found")
	ErrVersionConflict = errors.New("meal plan was modified concurrently")
)
