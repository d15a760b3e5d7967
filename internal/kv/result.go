package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ReadStatus reports how a typed read was satisfied.
type ReadStatus int

const (
	StatusFound ReadStatus = iota
	StatusMissing
	StatusCorrupt
	StatusFailed
)

func (s ReadStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusMissing:
		return "missing"
	case StatusCorrupt:
		return "corrupt"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result carries a decoded value together with the reason it looks the way it does.
// Value is always usable: on anything but StatusFound it holds the caller's fallback.
type Result[T any] struct {
	Value  T
	Status ReadStatus
	Err    error
}

// OK reports whether the value came from storage.
func (r Result[T]) OK() bool { return r.Status == StatusFound }

// Degraded reports whether the value is a fallback caused by a failure rather than absence.
func (r Result[T]) Degraded() bool {
	return r.Status == StatusCorrupt || r.Status == StatusFailed
}

// Read loads and decodes the JSON value at key, substituting fallback when absent or unreadable.
func Read[T any](ctx context.Context, store Store, key string, fallback T) Result[T] {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return Result[T]{Value: fallback, Status: StatusMissing}
	}
	if err != nil {
		return Result[T]{Value: fallback, Status: StatusFailed, Err: err}
	}
	value, err := Decode[T](raw)
	if err != nil {
		return Result[T]{Value: fallback, Status: StatusCorrupt, Err: err}
	}
	return Result[T]{Value: value, Status: StatusFound}
}

// Decode unmarshals raw JSON into T.
func Decode[T any](raw []byte) (T, error) {
	var value T
	if len(raw) == 0 {
		return value, errors.New("kv: empty payload")
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, err
	}
	return value, nil
}

// Mutate runs fn over the decoded value at key inside one atomic update and stores the result.
// A missing or corrupt value reaches fn as the zero value of T. fn may return ErrUnchanged.
func Mutate[T any](ctx context.Context, store Store, key string, fn func(current T) (T, error)) error {
	return store.Update(ctx, key, func(raw []byte, found bool) ([]byte, error) {
		var current T
		if found {
			if decoded, err := Decode[T](raw); err == nil {
				current = decoded
			}
		}
		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		return json.Marshal(next)
	})
}
