package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Options configures Open.
type Options struct {
	Backend       string
	Path          string // directory for file, database file for bolt/sqlite
	DSN           string // postgres connection string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open constructs the backend named in opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), opts.Path)
	case "", BackendBolt:
		path := opts.Path
		if path == "" {
			path = filepath.Join("cache", "coolstream.db")
		}
		return NewBoltStore(path)
	case BackendSQLite:
		path := opts.Path
		if path == "" {
			path = filepath.Join("cache", "coolstream.sqlite")
		}
		return OpenSQLite(ctx, path)
	case BackendPostgres:
		if strings.TrimSpace(opts.DSN) == "" {
			return nil, fmt.Errorf("postgres backend requires a dsn")
		}
		return OpenPostgres(ctx, opts.DSN)
	case BackendRedis:
		addr := opts.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		return NewRedisStore(ctx, addr, opts.RedisPassword, opts.RedisDB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
