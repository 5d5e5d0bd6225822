// Package transfer reads and writes the portable backup file: one JSON
// document carrying all three collections plus an export timestamp.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// ErrInvalidFormat is returned when an import file is not a liftlog
// export: unparseable JSON, or missing the presets or workouts keys.
var ErrInvalidFormat = errors.New("invalid file format")

// Export is the backup file layout. Library is optional on import for
// compatibility with files produced before the exercise library
// existed.
type Export struct {
	Presets    []models.Preset   `json:"presets"`
	Workouts   []models.Workout  `json:"workouts"`
	Library    []models.Exercise `json:"library"`
	ExportDate string            `json:"exportDate"`
}

// DefaultFilename returns the conventional export filename for the
// given day, liftlog-YYYY-MM-DD.json.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("liftlog-%s.json", now.Format("2006-01-02"))
}

// Write serializes the collections with the current timestamp.
func Write(w io.Writer, c models.Collections, now time.Time) error {
	doc := Export{
		Presets:    c.Presets,
		Workouts:   c.Workouts,
		Library:    c.Library,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	if doc.Presets == nil {
		doc.Presets = []models.Preset{}
	}
	if doc.Workouts == nil {
		doc.Workouts = []models.Workout{}
	}
	if doc.Library == nil {
		doc.Library = []models.Exercise{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile exports to a file path with 0600 permissions.
func WriteFile(path string, c models.Collections, now time.Time) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	return Write(f, c, now)
}

// Read parses an export document. The presets and workouts keys are
// required; library defaults to empty; exportDate is ignored. A failed
// read carries no partial state: the caller only replaces its
// collections on a nil error.
func Read(r io.Reader) (models.Collections, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Collections{}, fmt.Errorf("failed to read import file: %w", err)
	}

	// The key-presence check needs raw messages: a present-but-empty
	// list is valid, a missing key is not.
	var probe struct {
		Presets  json.RawMessage `json:"presets"`
		Workouts json.RawMessage `json:"workouts"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.Collections{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if probe.Presets == nil || probe.Workouts == nil {
		return models.Collections{}, ErrInvalidFormat
	}

	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Collections{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	c := models.Collections{
		Presets:  doc.Presets,
		Workouts: doc.Workouts,
		Library:  doc.Library,
	}
	if c.Library == nil {
		c.Library = []models.Exercise{}
	}
	return c, nil
}

// ReadFile imports from a file path.
func ReadFile(path string) (models.Collections, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Collections{}, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
