package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// WorkoutSession is the edit buffer for a workout being logged or
// re-edited. It holds a deep copy of the workout's exercises and cardio
// taken at edit-start; nothing is written back until Save, which
// commits the whole buffer at once.
//
// While a session is open it is registered with the store, which makes
// it a propagation target: renaming a library exercise updates the
// buffer's cached name/notes live. Saved workouts outside any open
// session are untouched.
type WorkoutSession struct {
	store     *Store
	workoutID string // empty while logging a new workout

	PresetID  string
	Date      string
	Custom    bool
	Exercises []models.WorkoutExercise
	Cardio    []models.CardioEntry
}

// NewWorkoutSession opens an empty buffer for logging a new workout,
// dated today.
func (s *Store) NewWorkoutSession() *WorkoutSession {
	sess := &WorkoutSession{
		store: s,
		Date:  time.Now().Format("2006-01-02"),
	}
	s.attach(sess)
	return sess
}

// EditWorkout opens a buffer over an existing workout.
func (s *Store) EditWorkout(id string) (*WorkoutSession, error) {
	w, ok := s.Workout(id)
	if !ok {
		return nil, fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}

	sess := &WorkoutSession{
		store:     s,
		workoutID: w.ID,
		PresetID:  w.PresetID,
		Date:      w.Date,
		Custom:    w.PresetID == "",
		Exercises: w.Exercises, // Workout already deep-copies
		Cardio:    w.Cardio,
	}
	s.attach(sess)
	return sess, nil
}

// ApplyPreset replaces the buffer's exercises with the preset's list,
// pulling current notes from the library and seeding each exercise with
// one warmup set.
func (sess *WorkoutSession) ApplyPreset(presetID string) error {
	p, ok := sess.store.Preset(presetID)
	if !ok {
		return fmt.Errorf("preset %s: %w", presetID, ErrNotFound)
	}

	exercises := make([]models.WorkoutExercise, len(p.Exercises))
	for i, ref := range p.Exercises {
		notes := ""
		if ex, ok := sess.store.Exercise(ref.ID); ok {
			notes = ex.Notes
		}
		exercises[i] = models.WorkoutExercise{
			ID:    ref.ID,
			Name:  ref.Name,
			Notes: notes,
			Sets:  []models.Set{{Type: models.SetWarmup}},
		}
	}

	sess.PresetID = presetID
	sess.Custom = false
	sess.Exercises = exercises
	return nil
}

// SetCustom switches the buffer to an ad hoc workout, clearing any
// preset-derived exercises.
func (sess *WorkoutSession) SetCustom() {
	sess.PresetID = ""
	sess.Custom = true
	sess.Exercises = nil
}

// AddExercise appends a library exercise to the buffer with one warmup
// set. An exercise already in the buffer is rejected.
func (sess *WorkoutSession) AddExercise(exerciseID string) error {
	ex, ok := sess.store.Exercise(exerciseID)
	if !ok {
		return fmt.Errorf("exercise %s: %w", exerciseID, ErrNotFound)
	}
	for _, entry := range sess.Exercises {
		if entry.ID == exerciseID {
			return ErrExerciseInWorkout
		}
	}

	sess.Exercises = append(sess.Exercises, models.WorkoutExercise{
		ID:    ex.ID,
		Name:  ex.Name,
		Notes: ex.Notes,
		Sets:  []models.Set{{Type: models.SetWarmup}},
	})
	return nil
}

// RemoveExercise drops an exercise from the buffer.
func (sess *WorkoutSession) RemoveExercise(exerciseID string) {
	for i, entry := range sess.Exercises {
		if entry.ID == exerciseID {
			sess.Exercises = append(sess.Exercises[:i], sess.Exercises[i+1:]...)
			return
		}
	}
}

// AddSet appends a zeroed normal set to the exercise.
func (sess *WorkoutSession) AddSet(exerciseID string) {
	for i := range sess.Exercises {
		if sess.Exercises[i].ID == exerciseID {
			sess.Exercises[i].Sets = append(sess.Exercises[i].Sets, models.Set{Type: models.SetNormal})
			return
		}
	}
}

// RemoveSet deletes a set by index. Removing the last remaining set is
// a no-op: an exercise never drops below one set.
func (sess *WorkoutSession) RemoveSet(exerciseID string, index int) {
	for i := range sess.Exercises {
		if sess.Exercises[i].ID != exerciseID {
			continue
		}
		sets := sess.Exercises[i].Sets
		if len(sets) <= 1 || index < 0 || index >= len(sets) {
			return
		}
		sess.Exercises[i].Sets = append(sets[:index], sets[index+1:]...)
		return
	}
}

// UpdateSetField mutates one field of one set from raw input. Invalid
// numeric input coerces to zero; out-of-range lookups and unknown
// fields are no-ops. It never fails.
func (sess *WorkoutSession) UpdateSetField(exerciseID string, index int, field, value string) {
	for i := range sess.Exercises {
		if sess.Exercises[i].ID != exerciseID {
			continue
		}
		if index < 0 || index >= len(sess.Exercises[i].Sets) {
			return
		}
		set := &sess.Exercises[i].Sets[index]
		switch field {
		case "type":
			set.Type = models.NormalizeSetType(value)
		case "weight":
			set.Weight = coerceFloat(value)
		case "reps":
			set.Reps = coerceInt(value)
		}
		return
	}
}

// AddCardio appends an empty cardio row and returns it.
func (sess *WorkoutSession) AddCardio() models.CardioEntry {
	entry := models.CardioEntry{ID: uuid.NewString()}
	sess.Cardio = append(sess.Cardio, entry)
	return entry
}

// UpdateCardio mutates one field of a cardio row from raw input, with
// the same coercion rules as sets.
func (sess *WorkoutSession) UpdateCardio(cardioID string, field, value string) {
	for i := range sess.Cardio {
		if sess.Cardio[i].ID != cardioID {
			continue
		}
		switch field {
		case "type":
			sess.Cardio[i].Type = value
		case "duration":
			sess.Cardio[i].DurationMin = coerceInt(value)
		}
		return
	}
}

// RemoveCardio drops a cardio row.
func (sess *WorkoutSession) RemoveCardio(cardioID string) {
	for i, entry := range sess.Cardio {
		if entry.ID == cardioID {
			sess.Cardio = append(sess.Cardio[:i], sess.Cardio[i+1:]...)
			return
		}
	}
}

// Save commits the buffer: create for a new workout, wholesale replace
// for an existing one. Cardio rows with a blank type or no duration are
// dropped. On success the session closes and stops receiving
// propagation; on a validation error it stays open for correction.
func (sess *WorkoutSession) Save() (models.Workout, error) {
	cardio := make([]models.CardioEntry, 0, len(sess.Cardio))
	for _, entry := range sess.Cardio {
		if strings.TrimSpace(entry.Type) != "" && entry.DurationMin > 0 {
			cardio = append(cardio, entry)
		}
	}

	var (
		w   models.Workout
		err error
	)
	if sess.workoutID == "" {
		w, err = sess.store.CreateWorkout(sess.Date, sess.PresetID, sess.Exercises, cardio)
	} else {
		w, err = sess.store.UpdateWorkout(sess.workoutID, sess.Date, sess.Exercises, cardio)
	}
	if err != nil {
		return models.Workout{}, err
	}

	sess.store.detach(sess)
	return w, nil
}

// Discard closes the session without writing anything back.
func (sess *WorkoutSession) Discard() {
	sess.store.detach(sess)
}

// syncExercise is the propagation hook: the buffer's cached name and
// notes follow the library while the session is open.
func (sess *WorkoutSession) syncExercise(ex models.Exercise) {
	for i := range sess.Exercises {
		if sess.Exercises[i].ID == ex.ID {
			sess.Exercises[i].Name = ex.Name
			sess.Exercises[i].Notes = ex.Notes
		}
	}
}

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
