package handlers

import (
	"context"
	"net/http"

	"coolstream/internal/kv"
	"coolstream/services/userdata"
)

type userDataService interface {
	Clear(ctx context.Context, userID string) error
	Snapshot(ctx context.Context, userID string) (userdata.Snapshot, kv.ReadStatus)
}

var _ userDataService = (*userdata.Service)(nil)

type UserDataHandler struct {
	Service userDataService
}

func NewUserDataHandler(service userDataService) *UserDataHandler {
	return &UserDataHandler{Service: service}
}

// Export returns every record of the user in one document.
func (h *UserDataHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, status := h.Service.Snapshot(r.Context(), userIDFrom(r))
	w.Header().Set(StorageStatusHeader, status.String())
	writeJSON(w, http.StatusOK, snap)
}

// Clear removes the user's watchlist, continue-watching list and preferences.
func (h *UserDataHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(r.Context(), userIDFrom(r)); err != nil {
		writeStoreError(w, "userdata", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
