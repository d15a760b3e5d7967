package handlers

import (
	"context"
	"net/http"

	"coolstream/internal/kv"
	"coolstream/models"
	"coolstream/services/history"
)

type continueWatchingService interface {
	List(ctx context.Context, userID string) kv.Result[[]models.WatchProgress]
	Get(ctx context.Context, userID string, id int, contentType models.ContentType) (models.WatchProgress, bool)
	Upsert(ctx context.Context, userID string, update models.WatchProgressUpdate) (models.WatchProgress, error)
	Remove(ctx context.Context, userID string, id int, contentType models.ContentType) (bool, error)
}

var _ continueWatchingService = (*history.Service)(nil)

// HistoryHandler serves the continue-watching list.
type HistoryHandler struct {
	Service continueWatchingService
}

func NewHistoryHandler(service continueWatchingService) *HistoryHandler {
	return &HistoryHandler{Service: service}
}

// ListContinueWatching returns in-progress titles, most recent first.
func (h *HistoryHandler) ListContinueWatching(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.Service.List(r.Context(), userIDFrom(r)))
}

// UpdateProgress records a progress report from the player.
func (h *HistoryHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var update models.WatchProgressUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	entry, err := h.Service.Upsert(r.Context(), userIDFrom(r), update)
	if err != nil {
		writeStoreError(w, "history", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// GetProgress returns the saved position of one title so playback can resume.
func (h *HistoryHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	contentType, id, ok := contentIdentity(w, r)
	if !ok {
		return
	}
	entry, found := h.Service.Get(r.Context(), userIDFrom(r), id, contentType)
	if !found {
		writeJSONError(w, "progress not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *HistoryHandler) RemoveProgress(w http.ResponseWriter, r *http.Request) {
	contentType, id, ok := contentIdentity(w, r)
	if !ok {
		return
	}
	removed, err := h.Service.Remove(r.Context(), userIDFrom(r), id, contentType)
	if err != nil {
		writeStoreError(w, "history", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}
