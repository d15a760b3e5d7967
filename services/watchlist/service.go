package watchlist

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"coolstream/internal/kv"
	"coolstream/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mozillazg/go-unidecode"
)

var ErrStoreRequired = errors.New("watchlist store not provided")

// Service manages persistence and retrieval of user watchlist items.
// Each user's list is a single record, newest first.
type Service struct {
	store kv.Store
	now   func() time.Time
}

// NewService creates a watchlist service writing through store.
func NewService(store kv.Store) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store, now: func() time.Time { return time.Now().UTC() }}, nil
}

func key(userID string) string {
	return kv.NewNamespace(models.StoragePrefix, userID, models.DefaultUserID).Key(models.KeyWatchlist)
}

// List returns the user's watchlist, newest first. It never fails: a missing or unreadable
// record yields an empty list and the Result status says which.
func (s *Service) List(ctx context.Context, userID string) kv.Result[[]models.WatchlistItem] {
	res := kv.Read(ctx, s.store, key(userID), []models.WatchlistItem{})
	if res.Degraded() {
		log.Printf("[watchlist] read for user %q degraded (%s): %v", userID, res.Status, res.Err)
	}
	res.Value = normaliseItems(res.Value)
	return res
}

// Add saves a title at the front of the list. Adding an identity that is already present
// changes nothing and returns the stored item with added=false.
func (s *Service) Add(ctx context.Context, userID string, input models.WatchlistAdd) (models.WatchlistItem, bool, error) {
	input.Type = models.ContentType(strings.ToLower(strings.TrimSpace(string(input.Type))))
	if err := input.Validate(); err != nil {
		return models.WatchlistItem{}, false, err
	}

	var (
		result models.WatchlistItem
		added  bool
	)
	err := kv.Mutate(ctx, s.store, key(userID), func(items []models.WatchlistItem) ([]models.WatchlistItem, error) {
		// Backends may rerun fn after a conflicting write.
		result, added = models.WatchlistItem{}, false
		items = normaliseItems(items)
		for _, item := range items {
			if item.Key() == input.Key() {
				result = item
				return nil, kv.ErrUnchanged
			}
		}

		result = models.WatchlistItem{
			ID:          input.ID,
			Type:        input.Type,
			Title:       input.Title,
			PosterPath:  input.PosterPath,
			VoteAverage: input.VoteAverage,
			AddedAt:     s.now(),
		}
		added = true
		return append([]models.WatchlistItem{result}, items...), nil
	})
	if err != nil {
		return models.WatchlistItem{}, false, err
	}
	return result, added, nil
}

// Remove deletes the entry for (id, contentType). Removing an absent identity is a no-op.
func (s *Service) Remove(ctx context.Context, userID string, id int, contentType models.ContentType) (bool, error) {
	target := models.ContentKey(contentType, id)
	removed := false
	err := kv.Mutate(ctx, s.store, key(userID), func(items []models.WatchlistItem) ([]models.WatchlistItem, error) {
		removed = false
		items = normaliseItems(items)
		filtered := items[:0]
		for _, item := range items {
			if item.Key() == target {
				removed = true
				continue
			}
			filtered = append(filtered, item)
		}
		if !removed {
			return nil, kv.ErrUnchanged
		}
		return filtered, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Contains reports whether (id, contentType) is on the list.
func (s *Service) Contains(ctx context.Context, userID string, id int, contentType models.ContentType) bool {
	target := models.ContentKey(contentType, id)
	for _, item := range s.List(ctx, userID).Value {
		if item.Key() == target {
			return true
		}
	}
	return false
}

// Search filters the list by a fuzzy, accent-insensitive title match, keeping list order.
func (s *Service) Search(ctx context.Context, userID, query string) kv.Result[[]models.WatchlistItem] {
	res := s.List(ctx, userID)
	query = strings.TrimSpace(query)
	if query == "" {
		return res
	}

	asciiQuery := strings.ToLower(unidecode.Unidecode(query))
	matches := make([]models.WatchlistItem, 0, len(res.Value))
	for _, item := range res.Value {
		if fuzzy.MatchNormalizedFold(query, item.Title) ||
			fuzzy.MatchFold(asciiQuery, strings.ToLower(unidecode.Unidecode(item.Title))) {
			matches = append(matches, item)
		}
	}
	res.Value = matches
	return res
}

// normaliseItems drops entries without a valid identity and later duplicates of an identity.
func normaliseItems(items []models.WatchlistItem) []models.WatchlistItem {
	out := make([]models.WatchlistItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item.Type = models.ContentType(strings.ToLower(strings.TrimSpace(string(item.Type))))
		if item.ID <= 0 || !item.Type.Valid() {
			continue
		}
		if _, dup := seen[item.Key()]; dup {
			continue
		}
		seen[item.Key()] = struct{}{}
		out = append(out, item)
	}
	return out
}
