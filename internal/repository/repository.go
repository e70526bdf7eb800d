// Package repository provides typed operations over a storage.Store.
// Every call reads the current persisted list; nothing is cached between calls.
package repository

import (
	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/storage"
)

// Repository adds, removes and lists study entries.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New returns a Repository over store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Add prepends entry to the stored list. The caller owns ID assignment.
func (r *Repository) Add(entry model.Entry) error {
	entries, err := r.store.Read()
	if err != nil {
		return err
	}
	updated := make([]model.Entry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)
	if err := r.store.Write(updated); err != nil {
		return err
	}
	r.log.Debug("entry added", zap.Int64("id", entry.ID), zap.Stringer("date", entry.Date))
	return nil
}

// Remove drops every entry with the given id. An unknown id is a no-op.
func (r *Repository) Remove(id int64) error {
	entries, err := r.store.Read()
	if err != nil {
		return err
	}
	kept := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := r.store.Write(kept); err != nil {
		return err
	}
	r.log.Debug("entry removed", zap.Int64("id", id), zap.Int("removed", len(entries)-len(kept)))
	return nil
}

// ListAll returns the stored list in persisted (newest-created first) order.
func (r *Repository) ListAll() ([]model.Entry, error) {
	return r.store.Read()
}

// ClearAll removes every entry.
func (r *Repository) ClearAll() error {
	if err := r.store.Clear(); err != nil {
		return err
	}
	r.log.Debug("all entries cleared")
	return nil
}

// LastID returns the largest stored id, or 0 for an empty store.
func (r *Repository) LastID() (int64, error) {
	entries, err := r.store.Read()
	if err != nil {
		return 0, err
	}
	var last int64
	for _, e := range entries {
		if e.ID > last {
			last = e.ID
		}
	}
	return last, nil
}
