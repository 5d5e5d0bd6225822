package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/liftlog-dev/liftlog/internal/filter"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/store"
)

type workoutList struct {
	store  *store.Store
	items  []models.Workout
	cursor int
}

func newWorkoutList(st *store.Store) workoutList {
	l := workoutList{store: st}
	l.reload()
	return l
}

func (l *workoutList) reload() {
	l.items = l.store.Workouts()
	l.clamp()
}

func (l *workoutList) clamp() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *workoutList) selected() (models.Workout, bool) {
	if len(l.items) == 0 {
		return models.Workout{}, false
	}
	return l.items[l.cursor], true
}

func (l *workoutList) move(delta int) {
	l.cursor += delta
	l.clamp()
}

type presetList struct {
	store  *store.Store
	items  []models.Preset
	cursor int
}

func newPresetList(st *store.Store) presetList {
	l := presetList{store: st}
	l.reload()
	return l
}

func (l *presetList) reload() {
	l.items = l.store.Presets()
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *presetList) selected() (models.Preset, bool) {
	if len(l.items) == 0 {
		return models.Preset{}, false
	}
	return l.items[l.cursor], true
}

func (l *presetList) move(delta int) {
	l.cursor += delta
	l.reload()
}

// libraryList browses the exercise library with an incremental text
// search and conjunctive tag toggles.
type libraryList struct {
	store     *store.Store
	all       []models.Exercise
	tags      []string
	active    map[string]bool
	search    textinput.Model
	searching bool
	tagMode   bool
	tagCursor int
	cursor    int
}

func newLibraryList(st *store.Store) libraryList {
	ti := textinput.New()
	ti.Placeholder = "search exercises"
	ti.CharLimit = 64
	l := libraryList{store: st, active: map[string]bool{}, search: ti}
	l.reload()
	return l
}

func (l *libraryList) reload() {
	l.all = l.store.Exercises()
	l.tags = filter.Tags(l.all)
	for t := range l.active {
		if !containsString(l.tags, t) {
			delete(l.active, t)
		}
	}
	if l.tagCursor >= len(l.tags) {
		l.tagCursor = len(l.tags) - 1
	}
	if l.tagCursor < 0 {
		l.tagCursor = 0
	}
	l.clamp()
}

func (l *libraryList) visible() []models.Exercise {
	var active []string
	for _, t := range l.tags {
		if l.active[t] {
			active = append(active, t)
		}
	}
	return filter.Apply(l.all, active, l.search.Value())
}

func (l *libraryList) clamp() {
	n := len(l.visible())
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *libraryList) selected() (models.Exercise, bool) {
	vis := l.visible()
	if len(vis) == 0 {
		return models.Exercise{}, false
	}
	return vis[l.cursor], true
}

func (l *libraryList) move(delta int) {
	l.cursor += delta
	l.clamp()
}

func (l *libraryList) toggleTag() {
	if len(l.tags) == 0 {
		return
	}
	t := l.tags[l.tagCursor]
	if l.active[t] {
		delete(l.active, t)
	} else {
		l.active[t] = true
	}
	l.clamp()
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
