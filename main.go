package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"coolstream/api"
	"coolstream/config"
	"coolstream/handlers"
	"coolstream/internal/kv"
	"coolstream/services/catalog"
	"coolstream/services/history"
	"coolstream/services/preferences"
	"coolstream/services/userdata"
	"coolstream/services/watchlist"
	"coolstream/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	storageOverride := flag.String("storage", "", "override storage backend (memory, file, bolt, sqlite, postgres, redis)")
	flag.Parse()

	fmt.Println("🚀 coolstream backend starting...")

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	configPath := os.Getenv("COOLSTREAM_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	// Init config manager and load settings (creates defaults if missing)
	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	if err := settings.ApplyEnv(os.Getenv); err != nil {
		log.Fatalf("invalid environment: %v", err)
	}
	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}
	if *storageOverride != "" {
		settings.Storage.Backend = *storageOverride
	}

	logger := setupLogging(settings.Log)

	if settings.Metadata.TMDBAPIKey == "" {
		logger.Warn("no TMDB API key configured; catalog requests will fail", "env", config.EnvTMDBAPIKey)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kv.Open(ctx, kv.Options{
		Backend:       settings.Storage.Backend,
		Path:          settings.Storage.Path,
		DSN:           settings.Storage.DSN,
		RedisAddr:     settings.Storage.RedisAddr,
		RedisPassword: settings.Storage.RedisPassword,
		RedisDB:       settings.Storage.RedisDB,
	})
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", settings.Storage.Backend, err)
	}
	defer store.Close()
	logger.Info("storage ready", "backend", settings.Storage.Backend)

	watchlistService, err := watchlist.NewService(store)
	if err != nil {
		log.Fatalf("failed to init watchlist service: %v", err)
	}
	historyService, err := history.NewService(store)
	if err != nil {
		log.Fatalf("failed to init continue watching service: %v", err)
	}
	preferencesService, err := preferences.NewService(store)
	if err != nil {
		log.Fatalf("failed to init preferences service: %v", err)
	}
	userDataService, err := userdata.NewService(store, watchlistService, historyService, preferencesService)
	if err != nil {
		log.Fatalf("failed to init user data service: %v", err)
	}

	catalogService := catalog.NewService(catalog.Options{
		APIKey:       settings.Metadata.TMDBAPIKey,
		Language:     settings.Metadata.Language,
		BaseURL:      settings.Metadata.BaseURL,
		ImageBaseURL: settings.Metadata.ImageBaseURL,
		Timeout:      settings.Metadata.Timeout(),
		Streaming: catalog.StreamingHosts{
			Vidsrc:      settings.Streaming.VidsrcBaseURL,
			VikingEmbed: settings.Streaming.VikingEmbedBaseURL,
			Filmku:      settings.Streaming.FilmkuBaseURL,
		},
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := api.NewMetrics(registry)

	var limiter *api.IPRateLimiter
	if settings.RateLimit.Enabled {
		limiter = api.NewIPRateLimiter(ctx, settings.RateLimit.RequestsPerMinute, settings.RateLimit.Burst)
		limiter.OnReject = metrics.RateLimited.Inc
	}

	// Construct router
	var r *mux.Router = utils.NewRouter()
	r.Use(api.LoggingMiddleware(logger))
	api.Register(r, api.Handlers{
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Watchlist:   handlers.NewWatchlistHandler(watchlistService),
		History:     handlers.NewHistoryHandler(historyService),
		Preferences: handlers.NewPreferencesHandler(preferencesService),
		UserData:    handlers.NewUserDataHandler(userDataService),
	}, metrics, limiter)

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}

// setupLogging mirrors std log output to a rotating file when one is configured and
// returns the structured logger used for startup and request lines.
func setupLogging(cfg config.LogConfig) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		logDir := filepath.Dir(cfg.File)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			out = io.MultiWriter(os.Stdout, fileWriter)
			log.Printf("Logging to file: %s", cfg.File)
		}
	}

	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.Level)}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
