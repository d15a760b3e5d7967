package handlers

import (
	"context"
	"net/http"

	"coolstream/internal/kv"
	"coolstream/models"
	"coolstream/services/preferences"
)

type preferencesService interface {
	Get(ctx context.Context, userID string) kv.Result[models.UserPreferences]
	Update(ctx context.Context, userID string, patch models.PreferencesPatch) (models.UserPreferences, error)
	Reset(ctx context.Context, userID string) error
}

var _ preferencesService = (*preferences.Service)(nil)

type PreferencesHandler struct {
	Service preferencesService
}

func NewPreferencesHandler(service preferencesService) *PreferencesHandler {
	return &PreferencesHandler{Service: service}
}

// GetPreferences returns the effective preferences, always fully populated.
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.Service.Get(r.Context(), userIDFrom(r)))
}

// PatchPreferences merges the fields present in the body over the stored preferences.
func (h *PreferencesHandler) PatchPreferences(w http.ResponseWriter, r *http.Request) {
	var patch models.PreferencesPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.Service.Update(r.Context(), userIDFrom(r), patch)
	if err != nil {
		writeStoreError(w, "preferences", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ResetPreferences drops the stored record and returns the defaults.
func (h *PreferencesHandler) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Reset(r.Context(), userIDFrom(r)); err != nil {
		writeStoreError(w, "preferences", err)
		return
	}
	writeJSON(w, http.StatusOK, models.DefaultUserPreferences())
}
