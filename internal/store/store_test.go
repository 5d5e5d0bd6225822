package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	p := storage.NewJSONStore(filepath.Join(t.TempDir(), "liftlog.json"))
	if err := p.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	s := New(p)
	if err := s.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return s
}

func mustCreateExercise(t *testing.T, s *Store, name string, tags ...string) models.Exercise {
	t.Helper()
	ex, err := s.CreateExercise(name, tags, "", models.ExerciseDetails{})
	if err != nil {
		t.Fatalf("create exercise %q failed: %v", name, err)
	}
	return ex
}

func oneExercise(ex models.Exercise) []models.WorkoutExercise {
	return []models.WorkoutExercise{
		{ID: ex.ID, Name: ex.Name, Sets: []models.Set{{Type: models.SetNormal, Weight: 100, Reps: 5}}},
	}
}

func TestCreateExerciseTitleCasesName(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "  incline bench press ")
	if ex.Name != "Incline Bench Press" {
		t.Fatalf("got %q, want %q", ex.Name, "Incline Bench Press")
	}
}

func TestCreateExerciseRejectsEmptyName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateExercise("   ", nil, "", models.ExerciseDetails{}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("got %v, want ErrEmptyName", err)
	}
	if len(s.Exercises()) != 0 {
		t.Fatal("rejected create still modified the library")
	}
}

func TestCreateExerciseRejectsDuplicateName(t *testing.T) {
	s := newTestStore(t)
	mustCreateExercise(t, s, "Squat")
	if _, err := s.CreateExercise("  sQuAt ", nil, "", models.ExerciseDetails{}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestUpdateExerciseAllowsOwnName(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	if _, err := s.UpdateExercise(ex.ID, "squat", []string{"legs"}, "go deep", models.ExerciseDetails{}); err != nil {
		t.Fatalf("renaming to own name failed: %v", err)
	}

	got, _ := s.Exercise(ex.ID)
	if got.Notes != "go deep" || len(got.Tags) != 1 {
		t.Fatalf("update did not stick: %+v", got)
	}
}

func TestUpdateExercisePropagatesToPresets(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Bench Press")
	p, err := s.CreatePreset("Push Day", []models.ExerciseRef{{ID: ex.ID, Name: ex.Name}})
	if err != nil {
		t.Fatalf("create preset failed: %v", err)
	}

	if _, err := s.UpdateExercise(ex.ID, "Paused Bench", nil, "", models.ExerciseDetails{}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := s.Preset(p.ID)
	if got.Exercises[0].Name != "Paused Bench" {
		t.Fatalf("preset ref kept stale name %q", got.Exercises[0].Name)
	}
}

func TestUpdateExerciseLeavesSavedWorkoutsAlone(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Bench Press")
	w, err := s.CreateWorkout("2026-08-01", "", oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}

	if _, err := s.UpdateExercise(ex.ID, "Paused Bench", nil, "", models.ExerciseDetails{}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := s.Workout(w.ID)
	if got.Exercises[0].Name != "Bench Press" {
		t.Fatalf("saved workout was rewritten to %q", got.Exercises[0].Name)
	}
}

func TestDeleteExerciseCascadesToPresetsNotWorkouts(t *testing.T) {
	s := newTestStore(t)
	bench := mustCreateExercise(t, s, "Bench Press")
	squat := mustCreateExercise(t, s, "Squat")
	p, err := s.CreatePreset("Full Body", []models.ExerciseRef{
		{ID: bench.ID, Name: bench.Name},
		{ID: squat.ID, Name: squat.Name},
	})
	if err != nil {
		t.Fatalf("create preset failed: %v", err)
	}
	w, err := s.CreateWorkout("2026-08-01", p.ID, oneExercise(bench), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}

	if err := s.DeleteExercise(bench.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	gotP, _ := s.Preset(p.ID)
	if len(gotP.Exercises) != 1 || gotP.Exercises[0].ID != squat.ID {
		t.Fatalf("preset refs after cascade: %+v", gotP.Exercises)
	}
	gotW, _ := s.Workout(w.ID)
	if len(gotW.Exercises) != 1 || gotW.Exercises[0].Name != "Bench Press" {
		t.Fatalf("workout history was not preserved: %+v", gotW.Exercises)
	}
}

func TestDeleteExerciseUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	mustCreateExercise(t, s, "Squat")
	if err := s.DeleteExercise("nope"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if len(s.Exercises()) != 1 {
		t.Fatal("no-op delete changed the library")
	}
}

func TestExercisesSortedCaseInsensitively(t *testing.T) {
	s := newTestStore(t)
	mustCreateExercise(t, s, "squat")     // stored as Squat
	mustCreateExercise(t, s, "deadlift")  // Deadlift
	mustCreateExercise(t, s, "Arm curls") // Arm Curls

	got := s.Exercises()
	want := []string{"Arm Curls", "Deadlift", "Squat"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestCreatePresetValidation(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	ref := models.ExerciseRef{ID: ex.ID, Name: ex.Name}

	if _, err := s.CreatePreset("  ", []models.ExerciseRef{ref}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("got %v, want ErrEmptyName", err)
	}
	if _, err := s.CreatePreset("Leg Day", nil); !errors.Is(err, ErrEmptyExerciseList) {
		t.Fatalf("got %v, want ErrEmptyExerciseList", err)
	}
}

func TestDeletePresetKeepsWorkoutName(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	p, _ := s.CreatePreset("Leg Day", []models.ExerciseRef{{ID: ex.ID, Name: ex.Name}})
	w, err := s.CreateWorkout("2026-08-01", p.ID, oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}

	if err := s.DeletePreset(p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, _ := s.Workout(w.ID)
	if got.PresetName != "Leg Day" {
		t.Fatalf("workout lost its preset name: %q", got.PresetName)
	}
}

func TestCreateWorkoutCapturesPresetName(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	p, _ := s.CreatePreset("Leg Day", []models.ExerciseRef{{ID: ex.ID, Name: ex.Name}})

	w, err := s.CreateWorkout("2026-08-01", p.ID, oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}
	if w.PresetName != "Leg Day" {
		t.Fatalf("got %q, want Leg Day", w.PresetName)
	}

	// Renaming the preset afterwards must not rewrite history.
	if _, err := s.UpdatePreset(p.ID, "Lower Body", p.Exercises); err != nil {
		t.Fatalf("update preset failed: %v", err)
	}
	got, _ := s.Workout(w.ID)
	if got.PresetName != "Leg Day" {
		t.Fatalf("preset rename leaked into workout: %q", got.PresetName)
	}
}

func TestCreateWorkoutCustomFallback(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	w, err := s.CreateWorkout("2026-08-01", "", oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}
	if w.PresetName != "Custom Workout" {
		t.Fatalf("got %q, want Custom Workout", w.PresetName)
	}

	// An unresolvable preset id degrades to a custom workout too.
	w2, err := s.CreateWorkout("2026-08-02", "gone", oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}
	if w2.PresetID != "" || w2.PresetName != "Custom Workout" {
		t.Fatalf("dangling preset id kept: %+v", w2)
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")

	if _, err := s.CreateWorkout("", "", oneExercise(ex), nil); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("got %v, want ErrMissingDate", err)
	}
	if _, err := s.CreateWorkout("2026-08-01", "", nil, nil); !errors.Is(err, ErrEmptyExerciseList) {
		t.Fatalf("got %v, want ErrEmptyExerciseList", err)
	}
}

func TestCreateWorkoutEnforcesSetFloor(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	w, err := s.CreateWorkout("2026-08-01", "", []models.WorkoutExercise{{ID: ex.ID, Name: ex.Name}}, nil)
	if err != nil {
		t.Fatalf("create workout failed: %v", err)
	}
	if len(w.Exercises[0].Sets) != 1 || w.Exercises[0].Sets[0].Type != models.SetWarmup {
		t.Fatalf("expected one warmup set, got %+v", w.Exercises[0].Sets)
	}
}

func TestWorkoutsSortedDateDescendingStable(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	first, _ := s.CreateWorkout("2026-08-10", "", oneExercise(ex), nil)
	second, _ := s.CreateWorkout("2026-08-10", "", oneExercise(ex), nil)
	newest, _ := s.CreateWorkout("2026-08-20", "", oneExercise(ex), nil)
	oldest, _ := s.CreateWorkout("2026-08-01", "", oneExercise(ex), nil)

	got := s.Workouts()
	wantOrder := []string{newest.ID, first.ID, second.ID, oldest.ID}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestUpdateWorkoutKeepsIdentity(t *testing.T) {
	s := newTestStore(t)
	ex := mustCreateExercise(t, s, "Squat")
	p, _ := s.CreatePreset("Leg Day", []models.ExerciseRef{{ID: ex.ID, Name: ex.Name}})
	w, _ := s.CreateWorkout("2026-08-01", p.ID, oneExercise(ex), nil)

	got, err := s.UpdateWorkout(w.ID, "2026-08-02", oneExercise(ex), nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.ID != w.ID || got.PresetID != p.ID || got.PresetName != "Leg Day" {
		t.Fatalf("update changed identity: %+v", got)
	}
	if got.Date != "2026-08-02" {
		t.Fatalf("date not updated: %q", got.Date)
	}
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	p := storage.NewJSONStore(filepath.Join(t.TempDir(), "liftlog.json"))
	if err := p.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	s := New(p)
	if err := s.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	ex := mustCreateExercise(t, s, "Squat")
	if _, err := s.CreateWorkout("2026-08-01", "", oneExercise(ex), nil); err != nil {
		t.Fatalf("create workout failed: %v", err)
	}

	s2 := New(p)
	if err := s2.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(s2.Exercises()) != 1 || len(s2.Workouts()) != 1 {
		t.Fatal("mutations did not survive reload")
	}
}

func TestReplaceAllSwapsEverything(t *testing.T) {
	s := newTestStore(t)
	mustCreateExercise(t, s, "Squat")

	err := s.ReplaceAll(models.Collections{
		Library: []models.Exercise{{ID: "x", Name: "Imported Row"}},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	got := s.Exercises()
	if len(got) != 1 || got[0].Name != "Imported Row" {
		t.Fatalf("replace did not swap the library: %+v", got)
	}
	if len(s.Workouts()) != 0 {
		t.Fatal("replace kept old workouts")
	}
}
