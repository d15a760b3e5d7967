package models

import (
	"errors"
	"strconv"
	"strings"
)

// ContentType distinguishes movies from TV shows. Together with a numeric id it
// identifies a catalog item across every store.
type ContentType string

const (
	ContentMovie ContentType = "movie"
	ContentTV    ContentType = "tv"
)

var ErrInvalidContentType = errors.New("content type must be movie or tv")

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	return c == ContentMovie || c == ContentTV
}

// ParseContentType normalises user input into a ContentType.
func ParseContentType(value string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(value)))
	if !ct.Valid() {
		return "", ErrInvalidContentType
	}
	return ct, nil
}

// ContentKey returns the stable identity key for an (id, type) pair.
func ContentKey(contentType ContentType, id int) string {
	return string(contentType) + ":" + strconv.Itoa(id)
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
