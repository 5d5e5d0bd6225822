package store

import (
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// PresetSession is the edit buffer for a preset: a deep copy of the
// selection taken at edit-start, committed wholesale on Save. Unlike
// workout sessions it is not a propagation target; the refs are
// re-validated against the library at toggle time instead.
type PresetSession struct {
	store    *Store
	presetID string // empty while creating a new preset

	Name      string
	Exercises []models.ExerciseRef
}

// NewPresetSession opens an empty buffer for a new preset.
func (s *Store) NewPresetSession() *PresetSession {
	return &PresetSession{store: s}
}

// EditPreset opens a buffer over an existing preset.
func (s *Store) EditPreset(id string) (*PresetSession, error) {
	p, ok := s.Preset(id)
	if !ok {
		return nil, fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}
	return &PresetSession{
		store:     s,
		presetID:  p.ID,
		Name:      p.Name,
		Exercises: p.Exercises, // Preset already deep-copies
	}, nil
}

// Toggle adds the exercise to the selection, or removes it if already
// selected. Unknown library ids are ignored.
func (ps *PresetSession) Toggle(exerciseID string) {
	for i, ref := range ps.Exercises {
		if ref.ID == exerciseID {
			ps.Exercises = append(ps.Exercises[:i], ps.Exercises[i+1:]...)
			return
		}
	}
	if ex, ok := ps.store.Exercise(exerciseID); ok {
		ps.Exercises = append(ps.Exercises, models.ExerciseRef{ID: ex.ID, Name: ex.Name})
	}
}

// Selected reports whether the exercise is in the current selection.
func (ps *PresetSession) Selected(exerciseID string) bool {
	for _, ref := range ps.Exercises {
		if ref.ID == exerciseID {
			return true
		}
	}
	return false
}

// Save commits the buffer as a create or a wholesale update.
func (ps *PresetSession) Save() (models.Preset, error) {
	if ps.presetID == "" {
		return ps.store.CreatePreset(ps.Name, ps.Exercises)
	}
	return ps.store.UpdatePreset(ps.presetID, ps.Name, ps.Exercises)
}
