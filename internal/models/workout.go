package models

// SetType classifies a performed set.
type SetType string

const (
	SetWarmup  SetType = "warmup"
	SetNormal  SetType = "normal"
	SetFailure SetType = "failure"
)

// NormalizeSetType maps legacy one-letter forms (W/D/F) found in older
// exports onto the current enum. Unknown values fall back to normal.
func NormalizeSetType(s string) SetType {
	switch s {
	case "warmup", "W":
		return SetWarmup
	case "normal", "D":
		return SetNormal
	case "failure", "F":
		return SetFailure
	default:
		return SetNormal
	}
}

// Set is one performed unit of an exercise. Slice order is significant:
// display order is the set number.
type Set struct {
	Type   SetType `json:"type"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// WorkoutExercise is an exercise entry inside a workout: a weak
// reference to the library plus cached name/notes snapshots. The
// snapshots are re-synced by the propagator only while the workout is
// open for editing; once saved they are a historical record.
type WorkoutExercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
	Sets  []Set  `json:"sets"`
}

// CardioEntry is a free-text cardio line on a workout. Cardio is not
// linked to the exercise library.
type CardioEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration"`
}

// Workout is a dated historical record of a training session.
//
// PresetID is a weak reference (empty for a custom workout) and
// PresetName is the preset's name captured at creation time. The name
// is intentionally never re-synced when the preset is renamed.
type Workout struct {
	ID         string            `json:"id"`
	PresetID   string            `json:"preset_id,omitempty"`
	PresetName string            `json:"preset_name"`
	Date       string            `json:"date"` // YYYY-MM-DD format
	Exercises  []WorkoutExercise `json:"exercises"`
	Cardio     []CardioEntry     `json:"cardio,omitempty"`
}

// TotalSets counts sets across all exercises in the workout.
func (w Workout) TotalSets() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// Collections bundles the three top-level collections that make up the
// whole persisted state.
type Collections struct {
	Library  []Exercise `json:"library"`
	Presets  []Preset   `json:"presets"`
	Workouts []Workout  `json:"workouts"`
}
