package models

import "time"

// WatchProgress records how far a user got into a title.
type WatchProgress struct {
	ContentID       int         `json:"contentId"`
	ContentType     ContentType `json:"contentType"`
	Title           string      `json:"title"`
	PosterPath      *string     `json:"posterPath"`
	Progress        float64     `json:"progress"` // percentage 0-100
	DurationSeconds int         `json:"duration"`
	LastWatched     time.Time   `json:"lastWatched"`
	Provider        string      `json:"provider"`
}

// WatchProgressUpdate is a progress report from the player. LastWatched is stamped by the store.
type WatchProgressUpdate struct {
	ContentID       int         `json:"contentId"`
	ContentType     ContentType `json:"contentType"`
	Title           string      `json:"title"`
	PosterPath      *string     `json:"posterPath"`
	Progress        float64     `json:"progress"`
	DurationSeconds int         `json:"duration"`
	Provider        string      `json:"provider"`
}

// Key returns the identity key of the record.
func (p WatchProgress) Key() string {
	return ContentKey(p.ContentType, p.ContentID)
}

// Key returns the identity key of the record being updated.
func (u WatchProgressUpdate) Key() string {
	return ContentKey(u.ContentType, u.ContentID)
}

// Validate checks identity and numeric ranges.
func (u WatchProgressUpdate) Validate() error {
	if u.ContentID <= 0 {
		return NewValidationError("contentId", "must be a positive integer")
	}
	if !u.ContentType.Valid() {
		return NewValidationError("contentType", ErrInvalidContentType.Error())
	}
	if u.DurationSeconds < 0 {
		return NewValidationError("duration", "must not be negative")
	}
	return nil
}
