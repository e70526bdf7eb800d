// Package storage persists the study-entry list as one serialized value
// under a single logical key. Every write replaces the whole list.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"
)

// EntriesKey is the logical key the entry list is stored under.
const EntriesKey = "studyEntries"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is durable storage for the full entry list.
//
// Read never fails because of the stored value itself: a missing or
// undecodable value reads as an empty list. Errors are reserved for the
// storage medium (permissions, disk, database).
type Store interface {
	Read() ([]model.Entry, error)
	Write(entries []model.Entry) error
	Clear() error
	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Backend string
	Dir     string
}

// Open returns the Store for opts.Backend rooted at opts.Dir.
func Open(opts Options, log *zap.Logger) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir, log), nil
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(opts.Dir, "studylog.db"), log)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// encode serializes entries as the persisted JSON array.
func encode(entries []model.Entry) ([]byte, error) {
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return data, nil
}

// decode parses a persisted value. Blank input is an empty list, not an error.
func decode(data []byte) ([]model.Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Entry{}, nil
	}
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}
