package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"coolstream/internal/kv"
	"coolstream/models"

	"github.com/gorilla/mux"
)

// StorageStatusHeader tells callers whether a per-user read came from storage or is a fallback.
const StorageStatusHeader = "X-Storage-Status"

const (
	msgInternal           = "Internal server error"
	msgStorageUnavailable = "storage unavailable"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func writeJSONError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeResult[T any](w http.ResponseWriter, res kv.Result[T]) {
	w.Header().Set(StorageStatusHeader, res.Status.String())
	writeJSON(w, http.StatusOK, res.Value)
}

// writeStoreError maps a failed store write. Validation problems are the caller's fault;
// everything else is reported as an unavailable store without backend detail.
func writeStoreError(w http.ResponseWriter, component string, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSONError(w, verr.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[%s] store write failed: %v", component, err)
	writeJSONError(w, msgStorageUnavailable, http.StatusServiceUnavailable)
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func userIDFrom(r *http.Request) string {
	userID := strings.TrimSpace(mux.Vars(r)["userID"])
	if userID == "" {
		return models.DefaultUserID
	}
	return userID
}

// contentIdentity reads the {type}/{id} path variables.
func contentIdentity(w http.ResponseWriter, r *http.Request) (models.ContentType, int, bool) {
	vars := mux.Vars(r)
	contentType, err := models.ParseContentType(vars["type"])
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return "", 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(vars["id"]))
	if err != nil || id <= 0 {
		writeJSONError(w, "id must be a positive integer", http.StatusBadRequest)
		return "", 0, false
	}
	return contentType, id, true
}
