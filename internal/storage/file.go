package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"
)

// FileStore keeps the entry list in a single JSON file.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore returns a store backed by dir/entries.json.
func NewFileStore(dir string, log *zap.Logger) *FileStore {
	return &FileStore{path: filepath.Join(dir, "entries.json"), log: log}
}

// Path returns the location of the entries file.
func (s *FileStore) Path() string {
	return s.path
}

// Read loads the entry list. A corrupt file is moved aside to <path>.corrupt
// and reads as empty.
func (s *FileStore) Read() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	entries, err := decode(data)
	if err != nil {
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		s.log.Warn("corrupt entries file, starting empty",
			zap.String("path", s.path),
			zap.String("backup", backupPath),
			zap.Error(err))
		return []model.Entry{}, nil
	}
	return entries, nil
}

// Write atomically replaces the entries file.
func (s *FileStore) Write(entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := encode(entries)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	s.log.Debug("entries written", zap.String("path", s.path), zap.Int("count", len(entries)))
	return nil
}

// Clear removes the entries file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage error removing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
