package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/liftlog-dev/liftlog/internal/models"
)

type fileStore struct {
	Version  int               `json:"version"`
	Settings Settings          `json:"settings"`
	Library  []models.Exercise `json:"library"`
	Presets  []models.Preset   `json:"presets"`
	Workouts []models.Workout  `json:"workouts"`
}

// JSONStore persists the whole store as a single indented JSON document.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version:  1,
		Settings: DefaultSettings(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'liftlog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Absent keys leave the collections at their empty defaults; only
	// the settings need backfilling so old files pick up new fields.
	if s.store.Settings.Theme == "" {
		s.store.Settings.Theme = "dark"
	}
	if s.store.Settings.RestTimerSec == 0 {
		s.store.Settings.RestTimerSec = DefaultRestSeconds
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) LoadCollections() (models.Collections, error) {
	if s.store == nil {
		return models.Collections{}, fmt.Errorf("storage not loaded")
	}
	return models.Collections{
		Library:  s.store.Library,
		Presets:  s.store.Presets,
		Workouts: s.store.Workouts,
	}, nil
}

func (s *JSONStore) SaveCollections(c models.Collections) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Library = c.Library
	s.store.Presets = c.Presets
	s.store.Workouts = c.Workouts
	return s.save()
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
