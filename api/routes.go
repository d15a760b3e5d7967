package api

import (
	"net/http"

	"coolstream/handlers"

	"github.com/gorilla/mux"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Catalog     *handlers.CatalogHandler
	Watchlist   *handlers.WatchlistHandler
	History     *handlers.HistoryHandler
	Preferences *handlers.PreferencesHandler
	UserData    *handlers.UserDataHandler
}

// Register mounts the metrics endpoint, the catalog proxy and the per-user routes onto r.
// limiter and metrics may be nil.
func Register(r *mux.Router, h Handlers, metrics *Metrics, limiter *IPRateLimiter) {
	r.Use(RequestIDMiddleware)
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	if limiter != nil {
		api.Use(limiter.Middleware)
	}

	// Catalog proxy
	api.HandleFunc("/movies/search", h.Catalog.SearchMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies/trending", h.Catalog.TrendingMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies/popular", h.Catalog.PopularMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", h.Catalog.MovieDetails).Methods(http.MethodGet)
	api.HandleFunc("/tv/search", h.Catalog.SearchTV).Methods(http.MethodGet)
	api.HandleFunc("/tv/trending", h.Catalog.TrendingTV).Methods(http.MethodGet)
	api.HandleFunc("/tv/popular", h.Catalog.PopularTV).Methods(http.MethodGet)
	api.HandleFunc("/tv/{id}", h.Catalog.TVDetails).Methods(http.MethodGet)
	api.HandleFunc("/home", h.Catalog.Home).Methods(http.MethodGet)
	api.HandleFunc("/genres/{type}", h.Catalog.Genres).Methods(http.MethodGet)

	users := api.PathPrefix("/users/{userID}").Subrouter()

	// Watchlist
	users.HandleFunc("/watchlist", h.Watchlist.List).Methods(http.MethodGet)
	users.HandleFunc("/watchlist", h.Watchlist.Add).Methods(http.MethodPost)
	users.HandleFunc("/watchlist/search", h.Watchlist.Search).Methods(http.MethodGet)
	users.HandleFunc("/watchlist/{type}/{id}", h.Watchlist.Contains).Methods(http.MethodGet)
	users.HandleFunc("/watchlist/{type}/{id}", h.Watchlist.Remove).Methods(http.MethodDelete)

	// Continue watching
	users.HandleFunc("/continue-watching", h.History.ListContinueWatching).Methods(http.MethodGet)
	users.HandleFunc("/continue-watching", h.History.UpdateProgress).Methods(http.MethodPut)
	users.HandleFunc("/continue-watching/{type}/{id}", h.History.GetProgress).Methods(http.MethodGet)
	users.HandleFunc("/continue-watching/{type}/{id}", h.History.RemoveProgress).Methods(http.MethodDelete)

	// Preferences
	users.HandleFunc("/preferences", h.Preferences.GetPreferences).Methods(http.MethodGet)
	users.HandleFunc("/preferences", h.Preferences.PatchPreferences).Methods(http.MethodPatch)
	users.HandleFunc("/preferences", h.Preferences.ResetPreferences).Methods(http.MethodDelete)

	// Bulk user data
	users.HandleFunc("/data", h.UserData.Export).Methods(http.MethodGet)
	users.HandleFunc("/data", h.UserData.Clear).Methods(http.MethodDelete)
}
