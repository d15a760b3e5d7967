package history

import (
	"context"
	"encoding/json"
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
		tick = tick.Add(time.Second)
		return tick
	}
	return svc, store
}

func progress(id int, title string, pct float64) models.WatchProgressUpdate {
	return models.WatchProgressUpdate{
		ContentID:       id,
		ContentType:     models.ContentMovie,
		Title:           title,
		Progress:        pct,
		DurationSeconds: 5400,
		Provider:        "vidsrc",
	}
}

func titles(entries []models.WatchProgress) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func TestUpsertNewEntriesGoToFront(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i, title := range []string{"C", "B", "A"} {
		_, err := svc.Upsert(ctx, "u1", progress(i+1, title, 10))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C"}, titles(svc.List(ctx, "u1").Value))
}

func TestUpsertExistingEntryKeepsPosition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i, title := range []string{"C", "B", "A"} {
		_, err := svc.Upsert(ctx, "u1", progress(i+1, title, 10))
		require.NoError(t, err)
	}

	updated, err := svc.Upsert(ctx, "u1", progress(2, "B", 55))
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Progress)

	entries := svc.List(ctx, "u1").Value
	assert.Equal(t, []string{"A", "B", "C"}, titles(entries))
	assert.Equal(t, 55.0, entries[1].Progress)
	assert.Equal(t, updated.LastWatched, entries[1].LastWatched)
}

func TestUpsertCapsListAtMaxEntries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		_, err := svc.Upsert(ctx, "u1", progress(i, "", 1))
		require.NoError(t, err)
	}

	entries := svc.List(ctx, "u1").Value
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, 25, entries[0].ContentID)
	assert.Equal(t, 6, entries[MaxEntries-1].ContentID)

	_, found := svc.Get(ctx, "u1", 5, models.ContentMovie)
	assert.False(t, found)
}

func TestUpsertClampsProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	high, err := svc.Upsert(ctx, "u1", progress(1, "High", 140))
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.Progress)

	low, err := svc.Upsert(ctx, "u1", progress(2, "Low", -3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.Progress)
}

func TestUpsertRejectsInvalidIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	update := progress(1, "X", 10)
	update.ContentType = "podcast"

	_, err := svc.Upsert(context.Background(), "u1", update)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "contentType", verr.Field)
}

func TestRemoveAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "u1", progress(9, "Nine", 40))
	require.NoError(t, err)

	got, found := svc.Get(ctx, "u1", 9, models.ContentMovie)
	require.True(t, found)
	assert.Equal(t, "Nine", got.Title)

	removed, err := svc.Remove(ctx, "u1", 9, models.ContentMovie)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Remove(ctx, "u1", 9, models.ContentMovie)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListTrimsOversizedStoredList(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	stored := make([]models.WatchProgress, 0, 30)
	for i := 1; i <= 30; i++ {
		stored = append(stored, models.WatchProgress{ContentID: i, ContentType: models.ContentTV})
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, key("u1"), raw))

	res := svc.List(ctx, "u1")
	assert.Equal(t, kv.StatusFound, res.Status)
	assert.Len(t, res.Value, MaxEntries)
}

func TestListCorruptRecord(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, key("u1"), []byte(`{"oops":`)))

	res := svc.List(ctx, "u1")
	assert.Equal(t, kv.StatusCorrupt, res.Status)
	assert.Empty(t, res.Value)
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

func TestRemoveRetriedAfterConflictingRemove(t *testing.T) {
	ctx := context.Background()
	store := &conflictStore{MemoryStore: kv.NewMemoryStore()}
	svc, err := NewService(store)
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "u1", progress(1, "A", 10))
	require.NoError(t, err)

	store.competing = func(ctx context.Context, inner *kv.MemoryStore) {
		require.NoError(t, inner.Delete(ctx, key("u1")))
	}
	removed, err := svc.Remove(ctx, "u1", 1, models.ContentMovie)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, svc.List(ctx, "u1").Value)
}
