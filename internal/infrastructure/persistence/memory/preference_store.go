package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mealforge/v1/internal/domain/preference"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/outbound"
)

// PreferenceStore implements an in-memory preference profile store.
// Profiles are created lazily on the first recorded signal.
type PreferenceStore struct {
	profiles map[uuid.UUID]*preference.Profile
	mutex    sync.RWMutex
}

// NewPreferenceStore creates an in-memory preference store
func NewPreferenceStore() outbound.PreferenceStore {
	return &PreferenceStore{
		profiles: make(map[uuid.UUID]*preference.Profile),
	}
}

// Get returns the stored profile, (nil, nil) for unknown users
func (s *PreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*preference.Profile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.profiles[userID], nil
}

// Put stores a complete profile, replacing any existing one
func (s *PreferenceStore) Put(profile *preference.Profile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.profiles[profile.UserID] = profile
}

// RecordSwipe stores a like/dislike reaction
func (s *PreferenceStore) RecordSwipe(ctx context.Context, userID, recipeID uuid.UUID, action preference.SwipeAction) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.profileLocked(userID).RecordSwipe(recipeID, action)
	return nil
}

// SetRating stores an explicit recipe rating
func (s *PreferenceStore) SetRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.profileLocked(userID).SetRating(recipeID, rating)
}

// SetIngredientPreference stores a liked or disliked ingredient
func (s *PreferenceStore) SetIngredientPreference(ctx context.Context, userID uuid.UUID, ingredient string, liked bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.profileLocked(userID).SetIngredientPreference(ingredient, liked)
	return nil
}

// SetCuisinePreference stores a cuisine rating
func (s *PreferenceStore) SetCuisinePreference(ctx context.Context, userID uuid.UUID, cuisine recipe.CuisineType, rating int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.profileLocked(userID).SetCuisineRating(cuisine, rating)
}

// profileLocked returns the user's profile, creating it if needed.
// Caller must hold the write lock.
func (s *PreferenceStore) profileLocked(userID uuid.UUID) *preference.Profile {
	profile, exists := s.profiles[userID]
	if !exists {
		profile = preference.NewProfile(userID)
		s.profiles[userID] = profile
	}
	return profile
}
