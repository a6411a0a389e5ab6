// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
)

// CatalogReader is the read-only view of the recipe catalog the planning
// engine consumes. Lookups return (nil, nil) when the recipe is absent.
type CatalogReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindActive(ctx context.Context) ([]*recipe.Recipe, error)
	FindByDietary(ctx context.Context, restrictions []string) ([]*recipe.Recipe, error)
}

// PreferenceStore persists user preference profiles and the signals that
// feed them. Get returns (nil, nil) for users with no stored profile.
// Two variants exist: persistent-backed and memory-backed; the engine never
// branches on which one it got.
type PreferenceStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*preference.Profile, error)
	RecordSwipe(ctx context.Context, userID, recipeID uuid.UUID, action preference.SwipeAction) error
	SetRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) error
	SetIngredientPreference(ctx context.Context, userID uuid.UUID, ingredient string, liked bool) error
	SetCuisinePreference(ctx context.Context, userID uuid.UUID, cuisine recipe.CuisineType, rating int) error
}

// PlanRepository persists generated meal plans.
// Commit performs an optimistic read-modify-write: it fails with a version
// conflict when the stored plan no longer matches expectedVersion.
type PlanRepository interface {
	Create(ctx context.Context, plan *mealplan.MealPlan) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*mealplan.MealPlan, error)
	Commit(ctx context.Context, plan *mealplan.MealPlan, expectedVersion int64) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
