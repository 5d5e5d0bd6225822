package store

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/storage"
)

// customWorkoutName is the preset-name snapshot used for ad hoc workouts.
const customWorkoutName = "Custom Workout"

// Store owns the three collections and all mutation rules. Every
// successful mutation is synchronously flushed through the persistence
// gateway, so the in-memory state and the stored state never diverge.
//
// The store is single-goroutine: the CLI and TUI both drive it from
// the program's event loop and it carries no locking.
type Store struct {
	provider storage.Provider

	library  []models.Exercise
	presets  []models.Preset
	workouts []models.Workout

	// sessions is the set of currently-open workout edit buffers, the
	// only targets (besides presets) of exercise-update propagation.
	sessions map[*WorkoutSession]struct{}
}

// New creates a store backed by the given provider. Call Load before
// using it.
func New(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		sessions: make(map[*WorkoutSession]struct{}),
	}
}

// Load reads the three collections from the provider. Collections
// absent from storage come back as their empty defaults.
func (s *Store) Load() error {
	c, err := s.provider.LoadCollections()
	if err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}
	s.library = c.Library
	s.presets = c.Presets
	s.workouts = c.Workouts
	return nil
}

func (s *Store) flush() error {
	return s.provider.SaveCollections(models.Collections{
		Library:  s.library,
		Presets:  s.presets,
		Workouts: s.workouts,
	})
}

// Collections returns a deep copy of the current state, used by export.
func (s *Store) Collections() models.Collections {
	c := models.Collections{
		Library:  make([]models.Exercise, len(s.library)),
		Presets:  make([]models.Preset, len(s.presets)),
		Workouts: make([]models.Workout, len(s.workouts)),
	}
	for i, ex := range s.library {
		c.Library[i] = cloneExercise(ex)
	}
	for i, p := range s.presets {
		c.Presets[i] = clonePreset(p)
	}
	for i, w := range s.workouts {
		c.Workouts[i] = cloneWorkout(w)
	}
	return c
}

// ReplaceAll swaps in a whole new set of collections and persists them.
// Used by import; there is no merging.
func (s *Store) ReplaceAll(c models.Collections) error {
	s.library = c.Library
	s.presets = c.Presets
	s.workouts = c.Workouts
	return s.flush()
}

// Exercises

// CreateExercise adds a new exercise to the library. The name is
// trimmed and title-cased; an empty name or a case-insensitive
// collision with an existing exercise is rejected without side effects.
func (s *Store) CreateExercise(name string, tags []string, notes string, details models.ExerciseDetails) (models.Exercise, error) {
	name = titleCase(strings.TrimSpace(name))
	if name == "" {
		return models.Exercise{}, ErrEmptyName
	}
	if s.nameTaken(name, "") {
		return models.Exercise{}, ErrDuplicateName
	}

	ex := models.Exercise{
		ID:           uuid.NewString(),
		Name:         name,
		Tags:         cleanTags(tags),
		Notes:        strings.TrimSpace(notes),
		LastWeight:   strings.TrimSpace(details.LastWeight),
		PR:           strings.TrimSpace(details.PR),
		WarmupWeight: strings.TrimSpace(details.WarmupWeight),
		SetSpec:      strings.TrimSpace(details.SetSpec),
	}

	s.library = append(s.library, ex)
	if err := s.flush(); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

// UpdateExercise replaces the exercise record and fans the new name and
// notes out to every preset and open workout buffer referencing it.
// The duplicate check excludes the exercise being edited.
func (s *Store) UpdateExercise(id string, name string, tags []string, notes string, details models.ExerciseDetails) (models.Exercise, error) {
	idx := s.exerciseIndex(id)
	if idx < 0 {
		return models.Exercise{}, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}

	name = titleCase(strings.TrimSpace(name))
	if name == "" {
		return models.Exercise{}, ErrEmptyName
	}
	if s.nameTaken(name, id) {
		return models.Exercise{}, ErrDuplicateName
	}

	ex := models.Exercise{
		ID:           id,
		Name:         name,
		Tags:         cleanTags(tags),
		Notes:        strings.TrimSpace(notes),
		LastWeight:   strings.TrimSpace(details.LastWeight),
		PR:           strings.TrimSpace(details.PR),
		WarmupWeight: strings.TrimSpace(details.WarmupWeight),
		SetSpec:      strings.TrimSpace(details.SetSpec),
	}

	s.library[idx] = ex
	s.propagateExercise(ex)

	if err := s.flush(); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

// DeleteExercise removes the exercise from the library and cascades the
// removal of its reference out of every preset. Workouts keep their
// cached name/notes copies: they are an append-only historical record.
// Deleting an unknown id is a no-op.
func (s *Store) DeleteExercise(id string) error {
	idx := s.exerciseIndex(id)
	if idx < 0 {
		return nil
	}

	s.library = append(s.library[:idx], s.library[idx+1:]...)
	for pi := range s.presets {
		refs := s.presets[pi].Exercises[:0]
		for _, ref := range s.presets[pi].Exercises {
			if ref.ID != id {
				refs = append(refs, ref)
			}
		}
		s.presets[pi].Exercises = refs
	}

	return s.flush()
}

// Exercise looks up an exercise by id.
func (s *Store) Exercise(id string) (models.Exercise, bool) {
	idx := s.exerciseIndex(id)
	if idx < 0 {
		return models.Exercise{}, false
	}
	return cloneExercise(s.library[idx]), true
}

// Exercises returns the library sorted by name, case-insensitively.
func (s *Store) Exercises() []models.Exercise {
	out := make([]models.Exercise, len(s.library))
	for i, ex := range s.library {
		out[i] = cloneExercise(ex)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (s *Store) exerciseIndex(id string) int {
	for i, ex := range s.library {
		if ex.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken reports whether any exercise other than excludeID already
// uses the name, compared case-insensitively.
func (s *Store) nameTaken(name, excludeID string) bool {
	lower := strings.ToLower(name)
	for _, ex := range s.library {
		if ex.ID != excludeID && strings.ToLower(ex.Name) == lower {
			return true
		}
	}
	return false
}

// Presets

// CreatePreset adds a named template. A preset needs a name and at
// least one exercise.
func (s *Store) CreatePreset(name string, refs []models.ExerciseRef) (models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Preset{}, ErrEmptyName
	}
	if len(refs) == 0 {
		return models.Preset{}, ErrEmptyExerciseList
	}

	p := models.Preset{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: cloneRefs(refs),
	}

	s.presets = append(s.presets, p)
	if err := s.flush(); err != nil {
		return models.Preset{}, err
	}
	return p, nil
}

// UpdatePreset replaces the preset record wholesale.
func (s *Store) UpdatePreset(id string, name string, refs []models.ExerciseRef) (models.Preset, error) {
	idx := s.presetIndex(id)
	if idx < 0 {
		return models.Preset{}, fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Preset{}, ErrEmptyName
	}
	if len(refs) == 0 {
		return models.Preset{}, ErrEmptyExerciseList
	}

	p := models.Preset{
		ID:        id,
		Name:      name,
		Exercises: cloneRefs(refs),
	}

	s.presets[idx] = p
	if err := s.flush(); err != nil {
		return models.Preset{}, err
	}
	return p, nil
}

// DeletePreset removes the preset. Workouts derived from it keep their
// cached preset name; deleting an unknown id is a no-op.
func (s *Store) DeletePreset(id string) error {
	idx := s.presetIndex(id)
	if idx < 0 {
		return nil
	}
	s.presets = append(s.presets[:idx], s.presets[idx+1:]...)
	return s.flush()
}

// Preset looks up a preset by id.
func (s *Store) Preset(id string) (models.Preset, bool) {
	idx := s.presetIndex(id)
	if idx < 0 {
		return models.Preset{}, false
	}
	return clonePreset(s.presets[idx]), true
}

// Presets returns all presets sorted by name, case-insensitively.
func (s *Store) Presets() []models.Preset {
	out := make([]models.Preset, len(s.presets))
	for i, p := range s.presets {
		out[i] = clonePreset(p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (s *Store) presetIndex(id string) int {
	for i, p := range s.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Workouts

// CreateWorkout records a session. The preset name is captured at this
// instant: if presetID resolves, the preset's current name is cached on
// the workout; otherwise the workout is a custom one. Exercises with no
// sets get a single warmup set so the one-set floor holds from birth.
func (s *Store) CreateWorkout(date string, presetID string, exercises []models.WorkoutExercise, cardio []models.CardioEntry) (models.Workout, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return models.Workout{}, ErrMissingDate
	}
	if len(exercises) == 0 {
		return models.Workout{}, ErrEmptyExerciseList
	}

	presetName := customWorkoutName
	if presetID != "" {
		if p, ok := s.Preset(presetID); ok {
			presetName = p.Name
		} else {
			presetID = ""
		}
	}

	w := models.Workout{
		ID:         uuid.NewString(),
		PresetID:   presetID,
		PresetName: presetName,
		Date:       date,
		Exercises:  ensureSetFloor(cloneWorkoutExercises(exercises)),
		Cardio:     cloneCardio(cardio),
	}

	s.workouts = append(s.workouts, w)
	if err := s.flush(); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// UpdateWorkout replaces the workout record, keeping its id and cached
// preset name/id untouched.
func (s *Store) UpdateWorkout(id string, date string, exercises []models.WorkoutExercise, cardio []models.CardioEntry) (models.Workout, error) {
	idx := s.workoutIndex(id)
	if idx < 0 {
		return models.Workout{}, fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return models.Workout{}, ErrMissingDate
	}
	if len(exercises) == 0 {
		return models.Workout{}, ErrEmptyExerciseList
	}

	w := s.workouts[idx]
	w.Date = date
	w.Exercises = ensureSetFloor(cloneWorkoutExercises(exercises))
	w.Cardio = cloneCardio(cardio)

	s.workouts[idx] = w
	if err := s.flush(); err != nil {
		return models.Workout{}, err
	}
	return cloneWorkout(w), nil
}

// DeleteWorkout removes the workout; unknown ids are a no-op.
func (s *Store) DeleteWorkout(id string) error {
	idx := s.workoutIndex(id)
	if idx < 0 {
		return nil
	}
	s.workouts = append(s.workouts[:idx], s.workouts[idx+1:]...)
	return s.flush()
}

// Workout looks up a workout by id.
func (s *Store) Workout(id string) (models.Workout, bool) {
	idx := s.workoutIndex(id)
	if idx < 0 {
		return models.Workout{}, false
	}
	return cloneWorkout(s.workouts[idx]), true
}

// Workouts returns the history in descending date order. The sort is
// stable, so workouts sharing a date keep their insertion order.
func (s *Store) Workouts() []models.Workout {
	out := make([]models.Workout, len(s.workouts))
	for i, w := range s.workouts {
		out[i] = cloneWorkout(w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func (s *Store) workoutIndex(id string) int {
	for i, w := range s.workouts {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Helpers

// titleCase capitalizes the first letter of every word, matching the
// auto-capitalization applied to exercise names on save.
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) && !prevLetter {
			out[i] = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return string(out)
}

// cleanTags trims each tag and drops empties. Tags keep their original
// case for display; filtering lower-cases them at comparison time.
func cleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ensureSetFloor gives any exercise with no sets a single warmup set.
func ensureSetFloor(exercises []models.WorkoutExercise) []models.WorkoutExercise {
	for i := range exercises {
		if len(exercises[i].Sets) == 0 {
			exercises[i].Sets = []models.Set{{Type: models.SetWarmup}}
		}
	}
	return exercises
}

func cloneExercise(ex models.Exercise) models.Exercise {
	out := ex
	out.Tags = append([]string(nil), ex.Tags...)
	return out
}

func cloneRefs(refs []models.ExerciseRef) []models.ExerciseRef {
	return append([]models.ExerciseRef(nil), refs...)
}

func clonePreset(p models.Preset) models.Preset {
	out := p
	out.Exercises = cloneRefs(p.Exercises)
	return out
}

func cloneWorkoutExercises(exercises []models.WorkoutExercise) []models.WorkoutExercise {
	out := make([]models.WorkoutExercise, len(exercises))
	for i, ex := range exercises {
		out[i] = ex
		out[i].Sets = append([]models.Set(nil), ex.Sets...)
	}
	return out
}

func cloneCardio(cardio []models.CardioEntry) []models.CardioEntry {
	return append([]models.CardioEntry(nil), cardio...)
}

func cloneWorkout(w models.Workout) models.Workout {
	out := w
	out.Exercises = cloneWorkoutExercises(w.Exercises)
	out.Cardio = cloneCardio(w.Cardio)
	return out
}
