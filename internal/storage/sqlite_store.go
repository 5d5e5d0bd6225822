package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/liftlog-dev/liftlog/internal/models"
	_ "modernc.org/sqlite"
)

// The collections and settings are stored as opaque JSON values keyed
// by document name, so the SQLite file carries exactly the same
// snapshots as the JSON store.
const (
	docLibrary  = "library"
	docPresets  = "presets"
	docWorkouts = "workouts"
	docSettings = "settings"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists snapshots in a single-table SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return s.SaveSettings(DefaultSettings())
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'liftlog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getDoc reads one JSON document into dest. A missing key is not an
// error: dest is left untouched and ok is false.
func (s *SQLiteStore) getDoc(key string, dest any) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) putDoc(key string, src any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	value, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO documents (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) LoadCollections() (models.Collections, error) {
	var c models.Collections
	if _, err := s.getDoc(docLibrary, &c.Library); err != nil {
		return models.Collections{}, err
	}
	if _, err := s.getDoc(docPresets, &c.Presets); err != nil {
		return models.Collections{}, err
	}
	if _, err := s.getDoc(docWorkouts, &c.Workouts); err != nil {
		return models.Collections{}, err
	}
	return c, nil
}

func (s *SQLiteStore) SaveCollections(c models.Collections) error {
	if err := s.putDoc(docLibrary, c.Library); err != nil {
		return err
	}
	if err := s.putDoc(docPresets, c.Presets); err != nil {
		return err
	}
	return s.putDoc(docWorkouts, c.Workouts)
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	settings := DefaultSettings()
	if _, err := s.getDoc(docSettings, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	return s.putDoc(docSettings, settings)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
