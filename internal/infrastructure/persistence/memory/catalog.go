package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/recipe"
)

// Catalog implements an in-memory recipe catalog. Iteration order is the
// insertion order, which keeps selection deterministic in tests.
type Catalog struct {
	recipes []*recipe.Recipe
	byID    map[uuid.UUID]*recipe.Recipe
	mutex   sync.RWMutex
}

// NewCatalog creates an in-memory catalog, optionally pre-populated
func NewCatalog(recipes ...*recipe.Recipe) *Catalog {
	c := &Catalog{
		byID: make(map[uuid.UUID]*recipe.Recipe),
	}
	for _, rec := range recipes {
		c.Add(rec)
	}
	return c
}

// Add inserts or replaces a recipe
func (c *Catalog) Add(rec *recipe.Recipe) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.byID[rec.ID()]; !exists {
		c.recipes = append(c.recipes, rec)
	} else {
		for i, existing := range c.recipes {
			if existing.ID() == rec.ID() {
				c.recipes[i] = rec
				break
			}
		}
	}
	c.byID[rec.ID()] = rec
}

// FindByID returns a recipe by id, (nil, nil) when absent
func (c *Catalog) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.byID[id], nil
}

// FindActive returns all active recipes in insertion order
func (c *Catalog) FindActive(ctx context.Context) ([]*recipe.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var active []*recipe.Recipe
	for _, rec := range c.recipes {
		if rec.IsActive() {
			active = append(active, rec)
		}
	}
	return active, nil
}

// FindByDietary returns active recipes whose tags satisfy every restriction
func (c *Catalog) FindByDietary(ctx context.Context, restrictions []string) ([]*recipe.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var matched []*recipe.Recipe
	for _, rec := range c.recipes {
		if rec.IsActive() && rec.MatchesDietary(restrictions) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}
