package store

import "github.com/liftlog-dev/liftlog/internal/models"

// propagateExercise is the final step of UpdateExercise: a single
// synchronous pass that pushes the updated exercise's display fields
// into every structure caching a copy of them.
//
// Two targets, and only two:
//
//   - every preset ref with a matching id gets the new name
//   - every open workout edit buffer gets the new name and notes
//
// Saved workouts that are not open for editing are never rewritten:
// they record the exercise as it was when the session happened. The
// open-session registry is the explicit boundary for "currently being
// edited".
func (s *Store) propagateExercise(ex models.Exercise) {
	for pi := range s.presets {
		for ri := range s.presets[pi].Exercises {
			if s.presets[pi].Exercises[ri].ID == ex.ID {
				s.presets[pi].Exercises[ri].Name = ex.Name
			}
		}
	}

	for sess := range s.sessions {
		sess.syncExercise(ex)
	}
}

func (s *Store) attach(sess *WorkoutSession) {
	s.sessions[sess] = struct{}{}
}

func (s *Store) detach(sess *WorkoutSession) {
	delete(s.sessions, sess)
}
