package recipe

import "errors"

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents an ingredient line in a catalog recipe
type Ingredient struct {
	Name     string
	Amount   float64
	Unit     string
	Optional bool
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	if i.Amount < 0 {
		return errors.New("ingredient amount cannot be negative")
	}
	return nil
}

// NutritionInfo contains per-serving nutritional information
type NutritionInfo struct {
	Calories float64
	Protein  float64 // in grams
	Carbs    float64 // in grams
	Fat      float64 // in grams
}

// IsZero reports whether no nutrition data is present
func (n NutritionInfo) IsZero() bool {
	return n.Calories == 0 && n.Protein == 0 && n.Carbs == 0 && n.Fat == 0
}

// MealType represents the meal a recipe is intended for
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Valid reports whether the meal type is a known value
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// CuisineType represents different cuisine types
type CuisineType string

const (
	CuisineTypeItalian       CuisineType = "italian"
	CuisineTypeFrench        CuisineType = "french"
	CuisineTypeChinese       CuisineType = "chinese"
	CuisineTypeJapanese      CuisineType = "japanese"
	CuisineTypeIndian        CuisineType = "indian"
	CuisineTypeMexican       CuisineType = "mexican"
	CuisineTypeAmerican      CuisineType = "american"
	CuisineTypeMediterranean CuisineType = "mediterranean"
	CuisineTypeThai          CuisineType = "thai"
	CuisineTypeOther         CuisineType = "other"
)

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyLevelEasy   DifficultyLevel = "easy"
	DifficultyLevelMedium DifficultyLevel = "medium"
	DifficultyLevelHard   DifficultyLevel = "hard"
)

// Rank maps difficulty to an ordinal used for experience matching
func (d DifficultyLevel) Rank() int {
	switch d {
	case DifficultyLevelEasy:
		return 1
	case DifficultyLevelHard:
		return 3
	default:
		return 2
	}
}

// PrepBand buckets recipes by preparation effort
type PrepBand string

const (
	PrepBandQuick     PrepBand = "quick"     // 15 minutes or less
	PrepBandModerate  PrepBand = "moderate"  // between quick and elaborate
	PrepBandElaborate PrepBand = "elaborate" // 60 minutes or more
)

// Rank maps prep bands to an ordinal used for adjacency checks
func (b PrepBand) Rank() int {
	switch b {
	case PrepBandQuick:
		return 1
	case PrepBandElaborate:
		return 3
	default:
		return 2
	}
}

// BandForMinutes classifies a prep time into a band. Zero or unknown
// minutes classify as moderate.
func BandForMinutes(minutes int) PrepBand {
	switch {
	case minutes <= 0:
		return PrepBandModerate
	case minutes <= 15:
		return PrepBandQuick
	case minutes >= 60:
		return PrepBandElaborate
	default:
		return PrepBandModerate
	}
}
