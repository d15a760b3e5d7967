// Package kv is the namespaced key-value layer every per-user store writes through.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("kv: key not found")
	// ErrUnchanged may be returned by an UpdateFunc to skip the write.
	ErrUnchanged = errors.New("kv: value unchanged")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("kv: store closed")
)

// UpdateFunc receives the current raw value (nil when absent) and returns the value to store.
// Returning ErrUnchanged leaves the record untouched and makes Update return nil.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// Store is a durable key-value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Update performs an atomic read-modify-write of key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

// StorageError wraps a backend failure with the operation and key involved.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("kv %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// callbackError marks an error returned by an UpdateFunc so it reaches the caller unwrapped.
type callbackError struct{ err error }

func (e callbackError) Error() string { return e.err.Error() }
func (e callbackError) Unwrap() error { return e.err }

func storageErr(op, key string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var ce callbackError
	if errors.As(err, &ce) {
		return ce.err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Key: key, Err: err}
}

// Namespace scopes logical keys to one user: prefix:userID:logicalKey.
type Namespace struct {
	Prefix string
	UserID string
}

// NewNamespace builds a namespace, substituting defaultUser for a blank user id.
func NewNamespace(prefix, userID, defaultUser string) Namespace {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = defaultUser
	}
	return Namespace{Prefix: prefix, UserID: userID}
}

// Key returns the physical key for logicalKey.
func (n Namespace) Key(logicalKey string) string {
	return n.Prefix + ":" + n.UserID + ":" + logicalKey
}

// runUpdate applies fn and reports whether a write is needed.
func runUpdate(fn UpdateFunc, current []byte, found bool) ([]byte, bool, error) {
	next, err := fn(current, found)
	if errors.Is(err, ErrUnchanged) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, callbackError{err: err}
	}
	return next, true, nil
}
