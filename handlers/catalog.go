package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"coolstream/models"
	"coolstream/services/catalog"

	"github.com/gorilla/mux"
)

//go:generate mockgen -destination=mock_catalog_test.go -package=handlers . catalogService

type catalogService interface {
	SearchMovies(ctx context.Context, query string) (models.Page[models.Movie], error)
	SearchTV(ctx context.Context, query string) (models.Page[models.TVShow], error)
	TrendingMovies(ctx context.Context, window models.TimeWindow) (models.Page[models.Movie], error)
	TrendingTV(ctx context.Context, window models.TimeWindow) (models.Page[models.TVShow], error)
	PopularMovies(ctx context.Context, page int) (models.Page[models.Movie], error)
	PopularTV(ctx context.Context, page int) (models.Page[models.TVShow], error)
	MovieDetails(ctx context.Context, id int) (models.MovieDetails, error)
	TVDetails(ctx context.Context, id int) (models.TVShowDetails, error)
	Home(ctx context.Context) (models.Home, error)
	Genres(kind models.ContentType) ([]models.Genre, error)
}

var _ catalogService = (*catalog.Service)(nil)

// CatalogHandler serves the normalized TMDB proxy endpoints.
type CatalogHandler struct {
	Service catalogService
}

func NewCatalogHandler(s catalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func (h *CatalogHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.SearchMovies(r.Context(), r.URL.Query().Get("q"))
	h.respond(w, "movie search", page, err)
}

func (h *CatalogHandler) SearchTV(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.SearchTV(r.Context(), r.URL.Query().Get("q"))
	h.respond(w, "tv search", page, err)
}

func (h *CatalogHandler) TrendingMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.TrendingMovies(r.Context(), models.TimeWindow(r.URL.Query().Get("time_window")))
	h.respond(w, "movie trending", page, err)
}

func (h *CatalogHandler) TrendingTV(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.TrendingTV(r.Context(), models.TimeWindow(r.URL.Query().Get("time_window")))
	h.respond(w, "tv trending", page, err)
}

func (h *CatalogHandler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	pageNum, ok := pageParam(w, r)
	if !ok {
		return
	}
	page, err := h.Service.PopularMovies(r.Context(), pageNum)
	h.respond(w, "movie popular", page, err)
}

func (h *CatalogHandler) PopularTV(w http.ResponseWriter, r *http.Request) {
	pageNum, ok := pageParam(w, r)
	if !ok {
		return
	}
	page, err := h.Service.PopularTV(r.Context(), pageNum)
	h.respond(w, "tv popular", page, err)
}

func (h *CatalogHandler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	details, err := h.Service.MovieDetails(r.Context(), id)
	h.respond(w, "movie details", details, err)
}

func (h *CatalogHandler) TVDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	details, err := h.Service.TVDetails(r.Context(), id)
	h.respond(w, "tv details", details, err)
}

// Home returns the dashboard rows.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.Service.Home(r.Context())
	h.respond(w, "home", home, err)
}

// Genres returns the genre table for {type}.
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	kind := models.ContentType(strings.ToLower(strings.TrimSpace(mux.Vars(r)["type"])))
	genres, err := h.Service.Genres(kind)
	h.respond(w, "genres", genres, err)
}

// respond writes body, or maps err: validation problems become 400 with their message,
// anything else is logged and hidden behind a generic 500.
func (h *CatalogHandler) respond(w http.ResponseWriter, op string, body any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, body)
		return
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSONError(w, verr.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[catalog] %s failed: %v", op, err)
	writeJSONError(w, msgInternal, http.StatusInternalServerError)
}

func pageParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 0, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		writeJSONError(w, "page must be an integer", http.StatusBadRequest)
		return 0, false
	}
	if page == 0 {
		// 0 means "default" to the service; an explicit 0 is out of range.
		page = -1
	}
	return page, true
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(mux.Vars(r)["id"]))
	if err != nil || id <= 0 {
		writeJSONError(w, "id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
