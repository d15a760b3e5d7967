package preferences

import (
	"context"
	"errors"
	"log"

	"coolstream/internal/kv"
	"coolstream/models"
)

var ErrStoreRequired = errors.New("preferences store not provided")

// Service manages persistence and retrieval of per-user playback preferences.
type Service struct {
	store kv.Store
}

// NewService creates a preferences service writing through store.
func NewService(store kv.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store}, nil
}

func key(userID string) string {
	return kv.NewNamespace(models.StoragePrefix, userID, models.DefaultUserID).Key(models.KeyPreferences)
}

// Get returns the effective preferences of userID. The value is always complete: fields
// missing from storage or holding out-of-range values take their defaults.
func (s *Service) Get(ctx context.Context, userID string) kv.Result[models.UserPreferences] {
	stored := kv.Read(ctx, s.store, key(userID), models.PreferencesPatch{})
	if stored.Degraded() {
		log.Printf("[preferences] read for user %q degraded (%s): %v", userID, stored.Status, stored.Err)
	}
	return kv.Result[models.UserPreferences]{
		Value:  effective(stored.Value),
		Status: stored.Status,
		Err:    stored.Err,
	}
}

// Update validates patch, merges it over the effective record and persists the full result.
// An invalid patch is rejected with a *models.ValidationError and nothing is written.
func (s *Service) Update(ctx context.Context, userID string, patch models.PreferencesPatch) (models.UserPreferences, error) {
	if err := patch.Validate(); err != nil {
		return models.UserPreferences{}, err
	}

	var merged models.UserPreferences
	err := kv.Mutate(ctx, s.store, key(userID), func(current models.PreferencesPatch) (models.PreferencesPatch, error) {
		merged = models.MergePreferences(effective(current), patch)
		return patchOf(merged), nil
	})
	if err != nil {
		return models.UserPreferences{}, err
	}
	return merged, nil
}

// Reset removes the stored record so subsequent reads return the defaults.
func (s *Service) Reset(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, key(userID))
}

func effective(stored models.PreferencesPatch) models.UserPreferences {
	return models.MergePreferences(models.DefaultUserPreferences(), stored.Sanitized())
}

// patchOf converts a full record into a patch with every field set, which encodes to the same JSON.
func patchOf(p models.UserPreferences) models.PreferencesPatch {
	return models.PreferencesPatch{
		PreferredProvider: &p.PreferredProvider,
		Autoplay:          &p.Autoplay,
		Volume:            &p.Volume,
		Quality:           &p.Quality,
		Subtitles:         &p.Subtitles,
		Theme:             &p.Theme,
	}
}
