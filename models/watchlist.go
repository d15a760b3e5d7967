package models

import "time"

// WatchlistItem represents a title saved by the user for later.
type WatchlistItem struct {
	ID          int         `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	PosterPath  *string     `json:"posterPath"`
	VoteAverage float64     `json:"voteAverage"`
	AddedAt     time.Time   `json:"addedAt"`
}

// WatchlistAdd captures the data needed to save a title. AddedAt is stamped by the store.
type WatchlistAdd struct {
	ID          int         `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	PosterPath  *string     `json:"posterPath"`
	VoteAverage float64     `json:"voteAverage"`
}

// Key returns a stable identifier for the watchlist item combining content type and ID.
func (w WatchlistItem) Key() string {
	return ContentKey(w.Type, w.ID)
}

// Key returns a stable identifier for the watchlist item combining content type and ID.
func (w WatchlistAdd) Key() string {
	return ContentKey(w.Type, w.ID)
}

// Validate checks the identity fields.
func (w WatchlistAdd) Validate() error {
	if w.ID <= 0 {
		return NewValidationError("id", "must be a positive integer")
	}
	if !w.Type.Valid() {
		return NewValidationError("type", ErrInvalidContentType.Error())
	}
	return nil
}
