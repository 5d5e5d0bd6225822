package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/liftlog-dev/liftlog/internal/storage"
	"github.com/liftlog-dev/liftlog/internal/store"
	"github.com/liftlog-dev/liftlog/internal/timer"
)

type SessionState int

const (
	StateWorkouts SessionState = iota
	StatePresets
	StateLibrary
	StateTimer
	StateWorkoutEdit
	StateExerciseForm
	StatePresetForm
	StateConfirm
	StateAlert
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteWorkout
	confirmDeletePreset
	confirmDeleteExercise
	confirmDiscardWorkout
)

// TickMsg drives the countdown engines once per second.
type TickMsg time.Time

// doneClearMsg hides the rest timer's finished banner.
type doneClearMsg struct{}

type Model struct {
	store    *store.Store
	provider storage.Provider
	settings storage.Settings

	state     SessionState
	prevState SessionState
	tab       SessionState // last list tab, restored after forms/editors

	keys   KeyMap
	help   help.Model
	styles Styles
	width  int
	height int

	workouts workoutList
	presets  presetList
	library  libraryList
	editor   *workoutEditor

	workTimer    *timer.Engine
	restTimer    *timer.Engine
	restOpen     bool
	restDone     bool
	ticking      bool
	timerInput   textinput.Model
	timerEditing bool

	form       *huh.Form
	exForm     *exerciseForm
	presetForm *presetForm

	confirm     confirmKind
	confirmID   string
	confirmText string
	alertText   string
	status      string
}

func NewModel(st *store.Store, provider storage.Provider, settings storage.Settings) Model {
	m := Model{
		store:     st,
		provider:  provider,
		settings:  settings,
		state:     StateWorkouts,
		tab:       StateWorkouts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(settings.Theme),
		workTimer: timer.NewWorkTimer(),
		restTimer: timer.NewRestTimer(settings.RestTimerSec),
	}
	m.workouts = newWorkoutList(st)
	m.presets = newPresetList(st)
	m.library = newLibraryList(st)

	ti := textinput.New()
	ti.Placeholder = "seconds"
	ti.CharLimit = 5
	m.timerInput = ti
	return m
}

// workPresets are the quick durations offered on the timer tab, in
// seconds, bound to the 1-5 keys.
var workPresets = []int{30, 60, 120, 180, 300}

func (m Model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func clearDoneAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return doneClearMsg{}
	})
}

// saveRestDuration persists the rest timer length so the next session
// starts from the same value.
func (m *Model) saveRestDuration() {
	if m.restTimer.Total() == m.settings.RestTimerSec {
		return
	}
	m.settings.RestTimerSec = m.restTimer.Total()
	_ = m.provider.SaveSettings(m.settings)
}

func (m *Model) refresh() {
	m.workouts.reload()
	m.presets.reload()
	m.library.reload()
}
