package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the serialized entry list in a key-value table.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string, log *zap.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLiteStore{db: db, log: log}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read() ([]model.Entry, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, EntriesKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	entries, err := decode([]byte(value))
	if err != nil {
		s.log.Warn("corrupt entries value, starting empty", zap.String("key", EntriesKey), zap.Error(err))
		return []model.Entry{}, nil
	}
	return entries, nil
}

func (s *SQLiteStore) Write(entries []model.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}
	const stmt = `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;
`
	if _, err := s.db.Exec(stmt, EntriesKey, string(data)); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	s.log.Debug("entries written", zap.String("key", EntriesKey), zap.Int("count", len(entries)))
	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, EntriesKey); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
