package models

const (
	// DefaultUserID is the namespace used when no access key is active.
	DefaultUserID = "default"
	// StoragePrefix is the first segment of every persisted key.
	StoragePrefix = "coolstream"
)

// Logical keys of the per-user records.
const (
	KeyWatchlist        = "watchlist"
	KeyContinueWatching = "continue_watching"
	KeyPreferences      = "preferences"
)

// UserDataKeys lists every logical key owned by a user namespace.
var UserDataKeys = []string{KeyWatchlist, KeyContinueWatching, KeyPreferences}
