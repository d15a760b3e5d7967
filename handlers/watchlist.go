package handlers

import (
	"context"
	"net/http"

	"coolstream/internal/kv"
	"coolstream/models"
	"coolstream/services/watchlist"
)

type watchlistService interface {
	List(ctx context.Context, userID string) kv.Result[[]models.WatchlistItem]
	Add(ctx context.Context, userID string, input models.WatchlistAdd) (models.WatchlistItem, bool, error)
	Remove(ctx context.Context, userID string, id int, contentType models.ContentType) (bool, error)
	Contains(ctx context.Context, userID string, id int, contentType models.ContentType) bool
	Search(ctx context.Context, userID, query string) kv.Result[[]models.WatchlistItem]
}

var _ watchlistService = (*watchlist.Service)(nil)

type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

// WatchlistMembership is the body of GET /watchlist/{type}/{id}.
type WatchlistMembership struct {
	ID          int                `json:"id"`
	Type        models.ContentType `json:"type"`
	InWatchlist bool               `json:"inWatchlist"`
}

// WatchlistRemoval is the body of DELETE /watchlist/{type}/{id}.
type WatchlistRemoval struct {
	Removed bool `json:"removed"`
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.Service.List(r.Context(), userIDFrom(r)))
}

func (h *WatchlistHandler) Search(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.Service.Search(r.Context(), userIDFrom(r), r.URL.Query().Get("q")))
}

// Add saves a title. A new entry answers 201, an existing one 200 with the stored item.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input models.WatchlistAdd
	if !decodeBody(w, r, &input) {
		return
	}

	item, added, err := h.Service.Add(r.Context(), userIDFrom(r), input)
	if err != nil {
		writeStoreError(w, "watchlist", err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, item)
}

func (h *WatchlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	contentType, id, ok := contentIdentity(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, WatchlistMembership{
		ID:          id,
		Type:        contentType,
		InWatchlist: h.Service.Contains(r.Context(), userIDFrom(r), id, contentType),
	})
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	contentType, id, ok := contentIdentity(w, r)
	if !ok {
		return
	}
	removed, err := h.Service.Remove(r.Context(), userIDFrom(r), id, contentType)
	if err != nil {
		writeStoreError(w, "watchlist", err)
		return
	}
	writeJSON(w, http.StatusOK, WatchlistRemoval{Removed: removed})
}
