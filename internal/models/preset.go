package models

// ExerciseRef is a weak reference to a library exercise plus a cached
// copy of its name. The cached name is only ever rewritten by the
// store's propagation pass; everything else treats it as read-only.
type ExerciseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Preset is a reusable, ordered workout template.
type Preset struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Exercises []ExerciseRef `json:"exercises"`
}
