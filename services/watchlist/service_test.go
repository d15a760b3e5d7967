package watchlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"coolstream/internal/kv"
	"coolstream/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	svc, err := NewService(store)
	require.NoError(t, err)
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return svc, store
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrStoreRequired)
}

func TestAddPrependsAndIgnoresDuplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, added, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 1, Type: models.ContentMovie, Title: "Alpha"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.False(t, first.AddedAt.IsZero())

	_, added, err = svc.Add(ctx, "u1", models.WatchlistAdd{ID: 2, Type: models.ContentTV, Title: "Beta"})
	require.NoError(t, err)
	assert.True(t, added)

	again, added, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 1, Type: models.ContentMovie, Title: "Renamed"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "Alpha", again.Title)
	assert.True(t, again.AddedAt.Equal(first.AddedAt))

	res := svc.List(ctx, "u1")
	assert.Equal(t, kv.StatusFound, res.Status)
	require.Len(t, res.Value, 2)
	assert.Equal(t, "tv:2", res.Value[0].Key())
	assert.Equal(t, "movie:1", res.Value[1].Key())
}

func TestSameIDDifferentTypeAreDistinct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "", models.WatchlistAdd{ID: 7, Type: models.ContentMovie, Title: "Film"})
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "", models.WatchlistAdd{ID: 7, Type: models.ContentTV, Title: "Show"})
	require.NoError(t, err)

	assert.True(t, svc.Contains(ctx, "", 7, models.ContentMovie))
	assert.True(t, svc.Contains(ctx, models.DefaultUserID, 7, models.ContentTV))
	assert.Len(t, svc.List(ctx, models.DefaultUserID).Value, 2)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 0, Type: models.ContentMovie})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)

	_, _, err = svc.Add(ctx, "u1", models.WatchlistAdd{ID: 3, Type: "anime"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "type", verr.Field)
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 1, Type: models.ContentMovie, Title: "Alpha"})
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, "u1", 1, models.ContentTV)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = svc.Remove(ctx, "u1", 1, models.ContentMovie)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.List(ctx, "u1").Value)
}

func TestUsersAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Add(ctx, "a", models.WatchlistAdd{ID: 1, Type: models.ContentMovie, Title: "Alpha"})
	require.NoError(t, err)

	assert.Empty(t, svc.List(ctx, "b").Value)
	assert.Equal(t, kv.StatusMissing, svc.List(ctx, "b").Status)
}

func TestListCorruptRecordFallsBackToEmpty(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, key("u1"), []byte("{not json")))

	res := svc.List(ctx, "u1")
	assert.Equal(t, kv.StatusCorrupt, res.Status)
	assert.NotNil(t, res.Value)
	assert.Empty(t, res.Value)

	_, added, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 4, Type: models.ContentMovie, Title: "Delta"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, svc.List(ctx, "u1").Value, 1)
}

func TestListDropsInvalidStoredEntries(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	raw := `[{"id":1,"type":"movie","title":"A"},{"id":0,"type":"movie"},{"id":2,"type":"book"},{"id":1,"type":"movie","title":"dup"}]`
	require.NoError(t, store.Put(ctx, key("u1"), []byte(raw)))

	items := svc.List(ctx, "u1").Value
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)
}

func TestSearchIsAccentInsensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i, title := range []string{"Amélie", "The Matrix", "Pokémon"} {
		_, _, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: i + 1, Type: models.ContentMovie, Title: title})
		require.NoError(t, err)
	}

	res := svc.Search(ctx, "u1", "amelie")
	require.Len(t, res.Value, 1)
	assert.Equal(t, "Amélie", res.Value[0].Title)

	res = svc.Search(ctx, "u1", "matrix")
	require.Len(t, res.Value, 1)

	assert.Len(t, svc.Search(ctx, "u1", "  ").Value, 3)
	assert.Empty(t, svc.Search(ctx, "u1", "zzz").Value)
}

// conflictStore runs the first update function once against the current value, applies a
// competing write, then performs the real update, as an optimistic backend does on a retry.
type conflictStore struct {
	*kv.MemoryStore
	competing func(ctx context.Context, store *kv.MemoryStore)
}

func (s *conflictStore) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	if s.competing != nil {
		current, err := s.MemoryStore.Get(ctx, key)
		if err != nil && !errors.Is(err, kv.ErrNotFound) {
			return err
		}
		_, _ = fn(current, err == nil)
		competing := s.competing
		s.competing = nil
		competing(ctx, s.MemoryStore)
	}
	return s.MemoryStore.Update(ctx, key, fn)
}

func TestAddRetriedAfterConflictingInsert(t *testing.T) {
	ctx := context.Background()
	store := &conflictStore{MemoryStore: kv.NewMemoryStore()}
	store.competing = func(ctx context.Context, inner *kv.MemoryStore) {
		raw := `[{"id":9,"type":"movie","title":"Other","addedAt":"2024-01-01T00:00:00Z"}]`
		require.NoError(t, inner.Put(ctx, key("u1"), []byte(raw)))
	}
	svc, err := NewService(store)
	require.NoError(t, err)

	item, added, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 9, Type: models.ContentMovie, Title: "Mine"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "Other", item.Title)
	assert.Len(t, svc.List(ctx, "u1").Value, 1)
}

func TestRemoveRetriedAfterConflictingRemove(t *testing.T) {
	ctx := context.Background()
	store := &conflictStore{MemoryStore: kv.NewMemoryStore()}
	svc, err := NewService(store)
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "u1", models.WatchlistAdd{ID: 3, Type: models.ContentTV, Title: "Gone"})
	require.NoError(t, err)

	store.competing = func(ctx context.Context, inner *kv.MemoryStore) {
		require.NoError(t, inner.Delete(ctx, key("u1")))
	}
	removed, err := svc.Remove(ctx, "u1", 3, models.ContentTV)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAddedAtUsesWallClock(t *testing.T) {
	svc, err := NewService(kv.NewMemoryStore())
	require.NoError(t, err)
	ctx := context.Background()
	before := time.Now()

	item, added, err := svc.Add(ctx, "u1", models.WatchlistAdd{ID: 1, Type: models.ContentMovie, Title: "Now"})
	require.NoError(t, err)
	require.True(t, added)
	assert.False(t, item.AddedAt.After(time.Now()))
	assert.False(t, item.AddedAt.Before(before.Add(-time.Second)))
}
