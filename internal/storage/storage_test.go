package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// both backends must behave identically through the Provider interface
func testProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "liftlog.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "liftlog.db")),
	}
}

func TestLoadWithoutInitFails(t *testing.T) {
	for name, p := range testProviders(t) {
		err := p.Load()
		if err == nil {
			t.Errorf("%s: expected error loading uninitialized storage", name)
			continue
		}
		if !strings.Contains(err.Error(), "not initialized") {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestInitTwiceFails(t *testing.T) {
	for name, p := range testProviders(t) {
		if err := p.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", name, err)
		}
		if err := p.Init(); err == nil {
			t.Errorf("%s: expected second init to fail", name)
		}
		p.Close()
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	for name, p := range testProviders(t) {
		if err := p.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", name, err)
		}
		settings, err := p.GetSettings()
		if err != nil {
			t.Fatalf("%s: get settings failed: %v", name, err)
		}
		if settings.Theme != "dark" {
			t.Errorf("%s: default theme = %q, want dark", name, settings.Theme)
		}
		if settings.RestTimerSec != DefaultRestSeconds {
			t.Errorf("%s: default rest timer = %d, want %d", name, settings.RestTimerSec, DefaultRestSeconds)
		}
		p.Close()
	}
}

func TestCollectionsRoundTrip(t *testing.T) {
	c := models.Collections{
		Library: []models.Exercise{{ID: "ex1", Name: "Deadlift", Tags: []string{"back"}}},
		Presets: []models.Preset{{ID: "p1", Name: "Pull Day", Exercises: []models.ExerciseRef{{ID: "ex1", Name: "Deadlift"}}}},
		Workouts: []models.Workout{{
			ID: "w1", PresetName: "Pull Day", Date: "2026-08-10",
			Exercises: []models.WorkoutExercise{
				{ID: "ex1", Name: "Deadlift", Sets: []models.Set{{Type: models.SetNormal, Weight: 225, Reps: 5}}},
			},
		}},
	}

	dir := t.TempDir()
	providers := map[string]func() Provider{
		"json":   func() Provider { return NewJSONStore(filepath.Join(dir, "liftlog.json")) },
		"sqlite": func() Provider { return NewSQLiteStore(filepath.Join(dir, "liftlog.db")) },
	}
	for name, open := range providers {
		p := open()
		if err := p.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", name, err)
		}
		if err := p.SaveCollections(c); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		p.Close()

		// Reopen from disk to prove the write actually landed.
		p = open()
		if err := p.Load(); err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		got, err := p.LoadCollections()
		if err != nil {
			t.Fatalf("%s: load collections failed: %v", name, err)
		}
		if len(got.Library) != 1 || got.Library[0].Name != "Deadlift" {
			t.Errorf("%s: library did not round trip: %+v", name, got.Library)
		}
		if len(got.Workouts) != 1 || got.Workouts[0].Exercises[0].Sets[0].Weight != 225 {
			t.Errorf("%s: workouts did not round trip: %+v", name, got.Workouts)
		}
		p.Close()
	}
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	providers := map[string]func() Provider{
		"json":   func() Provider { return NewJSONStore(filepath.Join(dir, "liftlog.json")) },
		"sqlite": func() Provider { return NewSQLiteStore(filepath.Join(dir, "liftlog.db")) },
	}
	for name, open := range providers {
		p := open()
		if err := p.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", name, err)
		}
		if err := p.SaveSettings(Settings{Theme: "light", RestTimerSec: 90}); err != nil {
			t.Fatalf("%s: save settings failed: %v", name, err)
		}
		p.Close()

		p = open()
		if err := p.Load(); err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		settings, err := p.GetSettings()
		if err != nil {
			t.Fatalf("%s: get settings failed: %v", name, err)
		}
		if settings.Theme != "light" || settings.RestTimerSec != 90 {
			t.Errorf("%s: settings did not persist: %+v", name, settings)
		}
		p.Close()
	}
}

func TestLoadEmptyCollections(t *testing.T) {
	for name, p := range testProviders(t) {
		if err := p.Init(); err != nil {
			t.Fatalf("%s: init failed: %v", name, err)
		}
		got, err := p.LoadCollections()
		if err != nil {
			t.Fatalf("%s: load collections failed: %v", name, err)
		}
		if len(got.Library) != 0 || len(got.Presets) != 0 || len(got.Workouts) != 0 {
			t.Errorf("%s: fresh storage is not empty: %+v", name, got)
		}
		p.Close()
	}
}
