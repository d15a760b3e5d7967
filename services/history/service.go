package history

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"coolstream/internal/kv"
	"coolstream/models"
)

// MaxEntries caps the continue-watching list. The least recently watched entry falls off first.
const MaxEntries = 20

var ErrStoreRequired = errors.New("continue watching store not provided")

// Service persists playback progress per user as a bounded, most-recent-first list.
type Service struct {
	store kv.Store
	now   func() time.Time
}

// NewService creates a continue-watching service writing through store.
func NewService(store kv.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store, now: func() time.Time { return time.Now().UTC() }}, nil
}

func key(userID string) string {
	return kv.NewNamespace(models.StoragePrefix, userID, models.DefaultUserID).Key(models.KeyContinueWatching)
}

// List returns the user's in-progress titles, most recently watched first.
func (s *Service) List(ctx context.Context, userID string) kv.Result[[]models.WatchProgress] {
	res := kv.Read(ctx, s.store, key(userID), []models.WatchProgress{})
	if res.Degraded() {
		log.Printf("[history] continue watching read for user %q degraded (%s): %v", userID, res.Status, res.Err)
	}
	res.Value = normaliseEntries(res.Value)
	return res
}

// Get returns the progress record for (id, contentType).
func (s *Service) Get(ctx context.Context, userID string, id int, contentType models.ContentType) (models.WatchProgress, bool) {
	target := models.ContentKey(contentType, id)
	for _, entry := range s.List(ctx, userID).Value {
		if entry.Key() == target {
			return entry, true
		}
	}
	return models.WatchProgress{}, false
}

// Upsert records progress. An existing entry for the same identity is replaced where it
// stands; a new identity goes to the front and the list is trimmed to MaxEntries.
func (s *Service) Upsert(ctx context.Context, userID string, update models.WatchProgressUpdate) (models.WatchProgress, error) {
	update.ContentType = models.ContentType(strings.ToLower(strings.TrimSpace(string(update.ContentType))))
	if err := update.Validate(); err != nil {
		return models.WatchProgress{}, err
	}

	entry := models.WatchProgress{
		ContentID:       update.ContentID,
		ContentType:     update.ContentType,
		Title:           update.Title,
		PosterPath:      update.PosterPath,
		Progress:        clampProgress(update.Progress),
		DurationSeconds: update.DurationSeconds,
		LastWatched:     s.now(),
		Provider:        strings.TrimSpace(update.Provider),
	}

	err := kv.Mutate(ctx, s.store, key(userID), func(entries []models.WatchProgress) ([]models.WatchProgress, error) {
		entries = normaliseEntries(entries)
		for i := range entries {
			if entries[i].Key() == entry.Key() {
				entries[i] = entry
				return entries, nil
			}
		}
		entries = append([]models.WatchProgress{entry}, entries...)
		if len(entries) > MaxEntries {
			entries = entries[:MaxEntries]
		}
		return entries, nil
	})
	if err != nil {
		return models.WatchProgress{}, err
	}
	return entry, nil
}

// Remove drops the entry for (id, contentType). Removing an absent identity is a no-op.
func (s *Service) Remove(ctx context.Context, userID string, id int, contentType models.ContentType) (bool, error) {
	target := models.ContentKey(contentType, id)
	removed := false
	err := kv.Mutate(ctx, s.store, key(userID), func(entries []models.WatchProgress) ([]models.WatchProgress, error) {
		// Backends may rerun fn after a conflicting write.
		removed = false
		entries = normaliseEntries(entries)
		kept := entries[:0]
		for _, entry := range entries {
			if entry.Key() == target {
				removed = true
				continue
			}
			kept = append(kept, entry)
		}
		if !removed {
			return nil, kv.ErrUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// normaliseEntries drops records without a valid identity, keeps the first of any
// duplicate identity and enforces the cap on lists written by older versions.
func normaliseEntries(entries []models.WatchProgress) []models.WatchProgress {
	out := make([]models.WatchProgress, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry.ContentType = models.ContentType(strings.ToLower(strings.TrimSpace(string(entry.ContentType))))
		if entry.ContentID <= 0 || !entry.ContentType.Valid() {
			continue
		}
		if _, dup := seen[entry.Key()]; dup {
			continue
		}
		seen[entry.Key()] = struct{}{}
		entry.Progress = clampProgress(entry.Progress)
		out = append(out, entry)
		if len(out) == MaxEntries {
			break
		}
	}
	return out
}
