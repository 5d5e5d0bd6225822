package store

import (
	"errors"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func TestSessionApplyPreset(t *testing.T) {
	s := newTestStore(t)
	ex, err := s.CreateExercise("Bench Press", nil, "elbows tucked", models.ExerciseDetails{})
	if err != nil {
		t.Fatalf("create exercise failed: %v", err)
	}
	p, _ := s.CreatePreset("Push Day", []models.ExerciseRef{{ID: ex.ID, Name: ex.Name}})

	sess := s.NewWorkoutSession()
	defer sess.Discard()
	if err := sess.ApplyPreset(p.ID); err != nil {
		t.Fatalf("apply preset failed: %v", err)
	}

	if len(sess.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(sess.Exercises))
	}
	got := sess.Exercises[0]
	if got.Notes != "elbows tucked" {
		t.Fatalf("notes not pulled from library: %q", got.Notes)
	}
	if len(got.Sets) != 1 || got.Sets[0].Type != models.SetWarmup {
		t.Fatalf("expected one warmup set, got %+v", got.Sets)
	}
}

func TestSessionRejectsDuplicateExercise(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	defer sess.Discard()
	if err := sess.AddExercise(ex.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := sess.AddExercise(ex.ID); !errors.Is(err, ErrExerciseInWorkout) {
		t.Fatalf("got %v, want ErrExerciseInWorkout", err)
	}
	if err := sess.AddExercise("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSessionSetFloor(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	defer sess.Discard()
	sess.AddExercise(ex.ID)

	sess.RemoveSet(ex.ID, 0)
	if len(sess.Exercises[0].Sets) != 1 {
		t.Fatal("removing the last set should be a no-op")
	}

	sess.AddSet(ex.ID)
	sess.AddSet(ex.ID)
	sess.RemoveSet(ex.ID, 1)
	if len(sess.Exercises[0].Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sess.Exercises[0].Sets))
	}
	sess.RemoveSet(ex.ID, 99)
	if len(sess.Exercises[0].Sets) != 2 {
		t.Fatal("out-of-range remove should be a no-op")
	}
}

func TestSessionFieldCoercion(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	defer sess.Discard()
	sess.AddExercise(ex.ID)

	sess.UpdateSetField(ex.ID, 0, "weight", " 102.5 ")
	sess.UpdateSetField(ex.ID, 0, "reps", "8")
	sess.UpdateSetField(ex.ID, 0, "type", "failure")
	set := sess.Exercises[0].Sets[0]
	if set.Weight != 102.5 || set.Reps != 8 || set.Type != models.SetFailure {
		t.Fatalf("valid input not applied: %+v", set)
	}

	sess.UpdateSetField(ex.ID, 0, "weight", "heavy")
	sess.UpdateSetField(ex.ID, 0, "reps", "-3")
	set = sess.Exercises[0].Sets[0]
	if set.Weight != 0 || set.Reps != 0 {
		t.Fatalf("invalid input should coerce to zero: %+v", set)
	}

	// Legacy one-letter set types from old exports still normalize.
	sess.UpdateSetField(ex.ID, 0, "type", "W")
	if sess.Exercises[0].Sets[0].Type != models.SetWarmup {
		t.Fatalf("legacy type not normalized: %v", sess.Exercises[0].Sets[0].Type)
	}
}

func TestSessionSaveFiltersInvalidCardio(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	sess.AddExercise(ex.ID)

	keep := sess.AddCardio()
	sess.UpdateCardio(keep.ID, "type", "rowing")
	sess.UpdateCardio(keep.ID, "duration", "15")

	blankType := sess.AddCardio()
	sess.UpdateCardio(blankType.ID, "duration", "10")

	zeroDuration := sess.AddCardio()
	sess.UpdateCardio(zeroDuration.ID, "type", "cycling")

	w, err := sess.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(w.Cardio) != 1 || w.Cardio[0].Type != "rowing" {
		t.Fatalf("expected only the valid cardio row, got %+v", w.Cardio)
	}
}

func TestSessionSaveCreatesThenUpdates(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	sess.Date = "2026-08-01"
	sess.AddExercise(ex.ID)
	w, err := sess.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	edit, err := s.EditWorkout(w.ID)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	edit.UpdateSetField(ex.ID, 0, "weight", "135")
	w2, err := edit.Save()
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if w2.ID != w.ID {
		t.Fatal("editing created a new workout instead of updating")
	}
	if len(s.Workouts()) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(s.Workouts()))
	}
	got, _ := s.Workout(w.ID)
	if got.Exercises[0].Sets[0].Weight != 135 {
		t.Fatalf("edit not persisted: %+v", got.Exercises[0].Sets[0])
	}
}

func TestSessionSaveFailureKeepsSessionOpen(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	defer sess.Discard()
	sess.AddExercise(ex.ID)
	sess.Date = ""

	if _, err := sess.Save(); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("got %v, want ErrMissingDate", err)
	}

	// A failed save leaves the buffer attached: propagation still lands.
	if _, err := s.UpdateExercise(ex.ID, "Front Squat", nil, "", models.ExerciseDetails{}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if sess.Exercises[0].Name != "Front Squat" {
		t.Fatalf("open session missed propagation: %q", sess.Exercises[0].Name)
	}
}

func TestSessionDiscardLeavesStoreUntouched(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	sess.AddExercise(ex.ID)
	sess.Discard()

	if len(s.Workouts()) != 0 {
		t.Fatal("discard wrote to the store")
	}
}

func TestPropagationStopsAfterSave(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	sess := s.NewWorkoutSession()
	sess.Date = "2026-08-01"
	sess.AddExercise(ex.ID)
	w, err := sess.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := s.UpdateExercise(ex.ID, "Front Squat", nil, "", models.ExerciseDetails{}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := s.Workout(w.ID)
	if got.Exercises[0].Name != "Squat" {
		t.Fatalf("saved workout rewritten after session closed: %q", got.Exercises[0].Name)
	}
}

func TestEditWorkoutBufferIsIsolated(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	w, _ := s.CreateWorkout("2026-08-01", "", oneExercise(ex), nil)

	sess, err := s.EditWorkout(w.ID)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	defer sess.Discard()
	sess.UpdateSetField(ex.ID, 0, "weight", "999")

	got, _ := s.Workout(w.ID)
	if got.Exercises[0].Sets[0].Weight == 999 {
		t.Fatal("buffer edit leaked into the store before save")
	}
}

func TestPresetSessionToggleAndSave(t *testing.T) {
	s := newTestStore(t)
	bench := mustCreateExercise(t, s, "Bench Press")
	squat := mustCreateExercise(t, s, "Squat")

	sess := s.NewPresetSession()
	sess.Name = "Full Body"
	sess.Toggle(bench.ID)
	sess.Toggle(squat.ID)
	sess.Toggle(bench.ID) // toggled back off

	p, err := sess.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(p.Exercises) != 1 || p.Exercises[0].ID != squat.ID {
		t.Fatalf("expected only squat selected, got %+v", p.Exercises)
	}
}
