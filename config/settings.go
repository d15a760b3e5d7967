package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server    ServerSettings    `json:"server"`
	Metadata  MetadataSettings  `json:"metadata"`
	Streaming StreamingSettings `json:"streaming"`
	Storage   StorageSettings   `json:"storage"`
	RateLimit RateLimitSettings `json:"rateLimit"`
	Log       LogConfig         `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// MetadataSettings configures the TMDB proxy.
type MetadataSettings struct {
	TMDBAPIKey     string `json:"tmdbApiKey"`
	Language       string `json:"language"`
	BaseURL        string `json:"baseUrl"`
	ImageBaseURL   string `json:"imageBaseUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Timeout returns the upstream request timeout.
func (m MetadataSettings) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// StreamingSettings holds the base URLs of the embeddable players.
type StreamingSettings struct {
	VidsrcBaseURL      string `json:"vidsrcBaseUrl"`
	VikingEmbedBaseURL string `json:"vikingEmbedBaseUrl"`
	FilmkuBaseURL      string `json:"filmkuBaseUrl"`
}

// StorageSettings selects the key-value backend for per-user data.
type StorageSettings struct {
	Backend       string `json:"backend"` // memory, file, bolt, sqlite, postgres, redis
	Path          string `json:"path"`
	DSN           string `json:"dsn"`
	RedisAddr     string `json:"redisAddr"`
	RedisPassword string `json:"redisPassword"`
	RedisDB       int    `json:"redisDb"`
}

// RateLimitSettings configures the per-IP limiter on /api.
type RateLimitSettings struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requestsPerMinute"`
	Burst             int  `json:"burst"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 7777},
		Metadata: MetadataSettings{
			Language:       "en-US",
			BaseURL:        "https://api.themoviedb.org/3",
			ImageBaseURL:   "https://image.tmdb.org/t/p",
			TimeoutSeconds: 15,
		},
		Streaming: StreamingSettings{
			VidsrcBaseURL:      "https://vidsrc.wtf",
			VikingEmbedBaseURL: "https://vembed.stream",
			FilmkuBaseURL:      "https://filmku.stream",
		},
		Storage: StorageSettings{
			Backend: "bolt",
			Path:    filepath.Join("cache", "coolstream.db"),
		},
		RateLimit: RateLimitSettings{Enabled: true, RequestsPerMinute: 300, Burst: 60},
		Log: LogConfig{
			File:       filepath.Join("cache", "logs", "backend.log"),
			Level:      "info",
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 5,
			Compress:   true,
		},
	}
}

type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// Path returns the location of settings.json.
func (m *Manager) Path() string { return m.path }

func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings.json from disk or creates defaults if missing.
// Fields absent from the file keep their default values.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s := DefaultSettings()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode %s: %w", m.path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}

func (s *Settings) normalize() {
	def := DefaultSettings()
	s.Storage.Backend = strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	if s.Storage.Backend == "" {
		s.Storage.Backend = def.Storage.Backend
	}
	if s.Server.Port <= 0 {
		s.Server.Port = def.Server.Port
	}
	if s.Metadata.TimeoutSeconds <= 0 {
		s.Metadata.TimeoutSeconds = def.Metadata.TimeoutSeconds
	}
	s.Metadata.TMDBAPIKey = strings.TrimSpace(s.Metadata.TMDBAPIKey)
}

// Environment variables that override settings.json.
const (
	EnvTMDBAPIKey  = "TMDB_API_KEY"
	EnvPort        = "COOLSTREAM_PORT"
	EnvStorage     = "COOLSTREAM_STORAGE"
	EnvStorageDSN  = "COOLSTREAM_STORAGE_DSN"
	EnvStoragePath = "COOLSTREAM_STORAGE_PATH"
	EnvRedisAddr   = "COOLSTREAM_REDIS_ADDR"
)

// LoadDotEnv loads variables from the given .env files into the process environment.
// Missing files are skipped; variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvTMDBAPIKey)); v != "" {
		s.Metadata.TMDBAPIKey = v
	}
	if v := strings.TrimSpace(getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		s.Server.Port = port
	}
	if v := strings.TrimSpace(getenv(EnvStorage)); v != "" {
		s.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvStorageDSN)); v != "" {
		s.Storage.DSN = v
	}
	if v := strings.TrimSpace(getenv(EnvStoragePath)); v != "" {
		s.Storage.Path = v
	}
	if v := strings.TrimSpace(getenv(EnvRedisAddr)); v != "" {
		s.Storage.RedisAddr = v
	}
	return nil
}
