// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// CatalogRepository implements the read-only catalog port using GORM
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ outbound.CatalogReader = (*CatalogRepository)(nil)

// Save inserts or updates a catalog recipe (used by seeding and admin paths)
func (r *CatalogRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a recipe by ID, (nil, nil) when absent
func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindActive returns all active recipes ordered by creation time
func (r *CatalogRepository) FindActive(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToRecipes(models), nil
}

// FindByDietary returns active recipes whose tags satisfy every
// restriction. Tag matching happens in memory: the tag set is a JSON
// column and catalogs are small enough to filter after the active scan.
func (r *CatalogRepository) FindByDietary(ctx context.Context, restrictions []string) ([]*recipe.Recipe, error) {
	active, err := r.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*recipe.Recipe
	for _, rec := range active {
		if rec.MatchesDietary(restrictions) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Count returns the number of catalog rows, used by seeding
func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count).Error
	return count, err
}

func modelsToRecipes(models []RecipeModel) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes
}
