package models

// Exercise is a named movement stored once in the library and referenced
// by presets and workouts.
type Exercise struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`

	// Optional display fields shown on the library card.
	Notes        string `json:"notes,omitempty"`
	LastWeight   string `json:"last_weight,omitempty"`
	PR           string `json:"pr,omitempty"`
	WarmupWeight string `json:"warmup_weight,omitempty"`
	SetSpec      string `json:"set_spec,omitempty"`
}

// ExerciseDetails carries the optional display fields of an exercise,
// grouped so create/update signatures stay readable.
type ExerciseDetails struct {
	LastWeight   string
	PR           string
	WarmupWeight string
	SetSpec      string
}
