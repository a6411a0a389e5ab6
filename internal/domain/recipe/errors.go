package recipe

import "errors"

// Domain errors for catalog recipes

var (
	ErrNameTooShort    = errors.New("recipe name must be at least 3 characters")
	ErrInvalidMealType = errors.New("unknown meal type")
	ErrNegativeCost    = errors.New("cost per serving cannot be negative")
	ErrRecipeNotFound  = errors.New("recipe not found")
)
