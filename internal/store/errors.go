package store

import "errors"

var (
	// ErrEmptyName is returned when an exercise or preset is saved
	// with an empty or whitespace-only name.
	ErrEmptyName = errors.New("name is required")

	// ErrDuplicateName is returned when an exercise name collides
	// case-insensitively with another library entry.
	ErrDuplicateName = errors.New("an exercise with this name already exists")

	// ErrEmptyExerciseList is returned when a preset or workout is
	// saved without any exercises.
	ErrEmptyExerciseList = errors.New("at least one exercise is required")

	// ErrMissingDate is returned when a workout is saved without a date.
	ErrMissingDate = errors.New("a date is required")

	// ErrNotFound is returned when an id resolves to no entity.
	ErrNotFound = errors.New("not found")

	// ErrExerciseInWorkout is returned when an exercise is added to a
	// workout buffer that already contains it.
	ErrExerciseInWorkout = errors.New("exercise already added to this workout")
)
