// Package gorm provides GORM model definitions and repository
// implementations for the recipe catalog, meal plans and preference
// profiles
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID              uuid.UUID      `gorm:"type:char(36);primaryKey"`
	Name            string         `gorm:"type:varchar(255);not null;index"`
	MealType        string         `gorm:"type:varchar(20);not null;index"`
	Cuisine         string         `gorm:"type:varchar(50);index"`
	Difficulty      string         `gorm:"type:varchar(20)"`
	Ingredients     IngredientList `gorm:"type:json"`
	Nutrition       NutritionJSON  `gorm:"type:json"`
	PrepTimeMinutes int            `gorm:"column:prep_time_minutes;default:0"`
	CostPerServing  float64        `gorm:"default:0"`
	Servings        int            `gorm:"default:1"`
	DietaryTags     StringSlice    `gorm:"type:json"`
	IsActive        bool           `gorm:"default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// MealPlanModel represents the GORM model for meal plans. Summaries are
// not stored: they are recomputed from the slots on reconstitution.
type MealPlanModel struct {
	ID               uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Version          int64       `gorm:"default:1"`
	UserID           uuid.UUID   `gorm:"type:char(36);not null;index"`
	StartDate        time.Time   `gorm:"not null"`
	DurationDays     int         `gorm:"not null"`
	IncludeSnacks    bool        `gorm:"default:false"`
	DailyBudget      *float64    `gorm:""`
	Restrictions     StringSlice `gorm:"type:json"`
	Slots            SlotList    `gorm:"type:json"`
	History          HistoryList `gorm:"type:json"`
	AlgorithmVersion string      `gorm:"type:varchar(20)"`
	CreatedAt        time.Time   `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName overrides the table name
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// PreferenceProfileModel represents the GORM model for preference profiles
type PreferenceProfileModel struct {
	UserID              uuid.UUID   `gorm:"type:char(36);primaryKey"`
	DietaryRestrictions StringSlice `gorm:"type:json"`
	Swipes              StringMap   `gorm:"type:json"`
	Ratings             IntMap      `gorm:"type:json"`
	LikedIngredients    StringSlice `gorm:"type:json"`
	DislikedIngredients StringSlice `gorm:"type:json"`
	CuisineRatings      IntMap      `gorm:"type:json"`
	FavoriteCuisines    StringSlice `gorm:"type:json"`
	PrepTimePreference  string      `gorm:"type:varchar(20)"`
	Experience          string      `gorm:"type:varchar(20)"`
	Budget              BudgetJSON  `gorm:"type:json"`
	Goals               GoalsJSON   `gorm:"type:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides the table name
func (PreferenceProfileModel) TableName() string {
	return "preference_profiles"
}

// JSON record shapes stored inside the columns above

// IngredientRecord is the JSON shape of one ingredient
type IngredientRecord struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// NutritionRecord is the JSON shape of a nutrition block
type NutritionRecord struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SlotRecord is the JSON shape of one meal slot
type SlotRecord struct {
	Day           int             `json:"day"`
	MealType      string          `json:"meal_type"`
	RecipeID      uuid.UUID       `json:"recipe_id"`
	RecipeName    string          `json:"recipe_name"`
	Score         float64         `json:"score"`
	EstimatedCost float64         `json:"estimated_cost"`
	Nutrition     NutritionRecord `json:"nutrition"`
}

// HistoryRecord is the JSON shape of one substitution history entry
type HistoryRecord struct {
	MealIndex        int       `json:"meal_index"`
	OriginalRecipeID uuid.UUID `json:"original_recipe_id"`
	NewRecipeID      uuid.UUID `json:"new_recipe_id"`
	Timestamp        time.Time `json:"timestamp"`
}

// BudgetRecord is the JSON shape of a stored budget
type BudgetRecord struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

// GoalsRecord is the JSON shape of stored nutrition goals
type GoalsRecord struct {
	DailyCalories float64 `json:"daily_calories"`
	ProteinPct    float64 `json:"protein_pct"`
	CarbPct       float64 `json:"carb_pct"`
	FatPct        float64 `json:"fat_pct"`
}

// Custom column types implementing sql.Scanner / driver.Valuer

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// StringMap custom type for string-to-string JSON columns
type StringMap map[string]string

// Scan implements the sql.Scanner interface
func (m *StringMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements the driver.Valuer interface
func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// IntMap custom type for string-to-int JSON columns
type IntMap map[string]int

// Scan implements the sql.Scanner interface
func (m *IntMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements the driver.Valuer interface
func (m IntMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// IngredientList custom type for ingredient JSON columns
type IngredientList []IngredientRecord

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// NutritionJSON custom type for an optional nutrition block
type NutritionJSON struct {
	Record *NutritionRecord
}

// Scan implements the sql.Scanner interface
func (n *NutritionJSON) Scan(value interface{}) error {
	n.Record = nil
	if value == nil {
		return nil
	}
	var rec NutritionRecord
	if err := scanJSON(value, &rec); err != nil {
		return err
	}
	n.Record = &rec
	return nil
}

// Value implements the driver.Valuer interface
func (n NutritionJSON) Value() (driver.Value, error) {
	if n.Record == nil {
		return nil, nil
	}
	return json.Marshal(n.Record)
}

// SlotList custom type for meal slot JSON columns
type SlotList []SlotRecord

// Scan implements the sql.Scanner interface
func (l *SlotList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements the driver.Valuer interface
func (l SlotList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// HistoryList custom type for substitution history JSON columns
type HistoryList []HistoryRecord

// Scan implements the sql.Scanner interface
func (l *HistoryList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements the driver.Valuer interface
func (l HistoryList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// BudgetJSON custom type for an optional budget block
type BudgetJSON struct {
	Record *BudgetRecord
}

// Scan implements the sql.Scanner interface
func (b *BudgetJSON) Scan(value interface{}) error {
	b.Record = nil
	if value == nil {
		return nil
	}
	var rec BudgetRecord
	if err := scanJSON(value, &rec); err != nil {
		return err
	}
	b.Record = &rec
	return nil
}

// Value implements the driver.Valuer interface
func (b BudgetJSON) Value() (driver.Value, error) {
	if b.Record == nil {
		return nil, nil
	}
	return json.Marshal(b.Record)
}

// GoalsJSON custom type for an optional nutrition goals block
type GoalsJSON struct {
	Record *GoalsRecord
}

// Scan implements the sql.Scanner interface
func (g *GoalsJSON) Scan(value interface{}) error {
	g.Record = nil
	if value == nil {
		return nil
	}
	var rec GoalsRecord
	if err := scanJSON(value, &rec); err != nil {
		return err
	}
	g.Record = &rec
	return nil
}

// Value implements the driver.Valuer interface
func (g GoalsJSON) Value() (driver.Value, error) {
	if g.Record == nil {
		return nil, nil
	}
	return json.Marshal(g.Record)
}

// scanJSON decodes a JSON column value into dest
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, dest)
	}
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
