// Package userdata operates on everything stored under one user namespace at once.
package userdata

import (
	"context"
	"errors"
	"fmt"
	"log"

	"coolstream/internal/kv"
	"coolstream/models"
)

var ErrStoreRequired = errors.New("user data store not provided")

// Snapshot is every per-user record in its effective form.
type Snapshot struct {
	UserID           string                 `json:"userId"`
	Watchlist        []models.WatchlistItem `json:"watchlist"`
	ContinueWatching []models.WatchProgress `json:"continueWatching"`
	Preferences      models.UserPreferences `json:"preferences"`
}

type watchlistReader interface {
	List(ctx context.Context, userID string) kv.Result[[]models.WatchlistItem]
}

type historyReader interface {
	List(ctx context.Context, userID string) kv.Result[[]models.WatchProgress]
}

type preferencesReader interface {
	Get(ctx context.Context, userID string) kv.Result[models.UserPreferences]
}

// Service clears and exports a user's namespace.
type Service struct {
	store       kv.Store
	watchlist   watchlistReader
	history     historyReader
	preferences preferencesReader
}

// NewService creates the service. The readers are only needed by Snapshot and may be nil.
func NewService(store kv.Store, watchlist watchlistReader, history historyReader, preferences preferencesReader) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &Service{store: store, watchlist: watchlist, history: history, preferences: preferences}, nil
}

// Clear deletes the watchlist, continue-watching and preference records of userID.
// Every key is attempted; failures are joined.
func (s *Service) Clear(ctx context.Context, userID string) error {
	ns := kv.NewNamespace(models.StoragePrefix, userID, models.DefaultUserID)
	var errs []error
	for _, logical := range models.UserDataKeys {
		if err := s.store.Delete(ctx, ns.Key(logical)); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", logical, err))
		}
	}
	if len(errs) > 0 {
		log.Printf("[userdata] clear for user %q failed: %v", ns.UserID, errs)
	}
	return errors.Join(errs...)
}

// Snapshot gathers the effective records of userID and the weakest read status among them.
func (s *Service) Snapshot(ctx context.Context, userID string) (Snapshot, kv.ReadStatus) {
	ns := kv.NewNamespace(models.StoragePrefix, userID, models.DefaultUserID)
	snap := Snapshot{
		UserID:           ns.UserID,
		Watchlist:        []models.WatchlistItem{},
		ContinueWatching: []models.WatchProgress{},
		Preferences:      models.DefaultUserPreferences(),
	}
	status := kv.StatusMissing

	if s.watchlist != nil {
		res := s.watchlist.List(ctx, ns.UserID)
		snap.Watchlist = res.Value
		status = worst(status, res.Status)
	}
	if s.history != nil {
		res := s.history.List(ctx, ns.UserID)
		snap.ContinueWatching = res.Value
		status = worst(status, res.Status)
	}
	if s.preferences != nil {
		res := s.preferences.Get(ctx, ns.UserID)
		snap.Preferences = res.Value
		status = worst(status, res.Status)
	}
	return snap, status
}

// worst orders statuses failed > corrupt > found > missing.
func worst(a, b kv.ReadStatus) kv.ReadStatus {
	rank := func(s kv.ReadStatus) int {
		switch s {
		case kv.StatusFailed:
			return 3
		case kv.StatusCorrupt:
			return 2
		case kv.StatusFound:
			return 1
		}
		return 0
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
