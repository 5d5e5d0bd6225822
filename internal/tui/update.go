package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case doneClearMsg:
		m.restDone = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (blink cursors, form internals) still need to
	// reach the active form.
	if m.state == StateExerciseForm || m.state == StatePresetForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.workTimer.Tick() {
		m.alertText = "Time's up!"
		m.prevState = m.state
		m.state = StateAlert
	}
	if m.restTimer.Tick() {
		m.restDone = true
		cmds = append(cmds, clearDoneAfter(2*time.Second))
	}
	if m.workTimer.Running() || m.restTimer.Running() {
		cmds = append(cmds, tick())
	} else {
		m.ticking = false
	}
	return m, tea.Batch(cmds...)
}

// ensureTicking schedules the per-second tick loop if it is not already
// scheduled.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	if m.workTimer.Running() || m.restTimer.Running() {
		m.ticking = true
		return tick()
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAlert:
		m.state = m.prevState
		return m, nil

	case StateConfirm:
		return m.handleConfirmKey(msg)

	case StateExerciseForm, StatePresetForm:
		return m.updateForm(msg)

	case StateWorkoutEdit:
		return m.handleEditorKey(msg)
	}
	return m.handleTabKey(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.runConfirmed()
	}
	m.confirm = confirmNone
	m.confirmID = ""
	m.state = m.prevState
	return m, nil
}

func (m *Model) runConfirmed() {
	switch m.confirm {
	case confirmDeleteWorkout:
		if err := m.store.DeleteWorkout(m.confirmID); err != nil {
			m.status = friendlyError(err)
		}
	case confirmDeletePreset:
		if err := m.store.DeletePreset(m.confirmID); err != nil {
			m.status = friendlyError(err)
		}
	case confirmDeleteExercise:
		if err := m.store.DeleteExercise(m.confirmID); err != nil {
			m.status = friendlyError(err)
		}
	case confirmDiscardWorkout:
		if m.editor != nil {
			m.editor.sess.Discard()
			m.editor = nil
		}
		m.prevState = m.tab
	}
	m.refresh()
}

func (m *Model) askConfirm(kind confirmKind, id, text string) {
	m.confirm = kind
	m.confirmID = id
	m.confirmText = text
	m.prevState = m.state
	m.state = StateConfirm
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor == nil {
		m.state = m.tab
		return m, nil
	}

	// The rest timer overlay swallows its keys while open, except when
	// an inline field edit owns the keyboard.
	if m.editor.mode == editorNormal {
		switch msg.String() {
		case "r":
			m.restOpen = !m.restOpen
			return m, nil
		case " ":
			if m.restOpen {
				if m.restTimer.Running() {
					m.restTimer.Pause()
					return m, nil
				}
				m.restTimer.Start()
				return m, m.ensureTicking()
			}
		case "R":
			if m.restOpen {
				m.restTimer.Reset()
				return m, nil
			}
		case "+", "=":
			if m.restOpen {
				m.restTimer.SetDuration(m.restTimer.Total() + 15)
				m.saveRestDuration()
				return m, nil
			}
		case "-":
			if m.restOpen {
				if t := m.restTimer.Total() - 15; t > 0 {
					m.restTimer.SetDuration(t)
					m.saveRestDuration()
				}
				return m, nil
			}
		}
	}

	cmd, action := m.editor.update(msg)
	switch action {
	case editorSaved:
		m.editor = nil
		m.restOpen = false
		m.state = m.tab
		m.status = "workout saved"
		m.refresh()
	case editorCancelled:
		m.askConfirm(confirmDiscardWorkout, "", "Discard this workout?")
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.state = m.tab
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		if m.state == StateExerciseForm && m.exForm != nil {
			fm := m.exForm
			if fm.ID == "" {
				_, err = m.store.CreateExercise(fm.Name, splitTags(fm.Tags), fm.Notes, fm.details())
			} else {
				_, err = m.store.UpdateExercise(fm.ID, fm.Name, splitTags(fm.Tags), fm.Notes, fm.details())
			}
		} else if m.state == StatePresetForm && m.presetForm != nil {
			fm := m.presetForm
			if fm.ID == "" {
				_, err = m.store.CreatePreset(fm.Name, fm.refs())
			} else {
				_, err = m.store.UpdatePreset(fm.ID, fm.Name, fm.refs())
			}
		}
		m.form = nil
		m.exForm = nil
		m.presetForm = nil
		m.state = m.tab
		if err != nil {
			m.alertText = friendlyError(err)
			m.prevState = m.tab
			m.state = StateAlert
		} else {
			m.refresh()
		}
	case huh.StateAborted:
		m.form = nil
		m.exForm = nil
		m.presetForm = nil
		m.state = m.tab
	}
	return m, cmd
}

var tabOrder = []SessionState{StateWorkouts, StatePresets, StateLibrary, StateTimer}

func (m *Model) cycleTab(delta int) {
	for i, s := range tabOrder {
		if s == m.state {
			m.state = tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
			m.tab = m.state
			return
		}
	}
}

func (m Model) handleTabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The library search box takes priority over global bindings.
	if m.state == StateLibrary && m.library.searching {
		switch msg.String() {
		case "enter", "esc":
			m.library.searching = false
			m.library.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.library.search, cmd = m.library.search.Update(msg)
		m.library.clamp()
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.cycleTab(1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case StateWorkouts:
		return m.handleWorkoutsKey(msg)
	case StatePresets:
		return m.handlePresetsKey(msg)
	case StateLibrary:
		return m.handleLibraryKey(msg)
	case StateTimer:
		return m.handleTimerKey(msg)
	}
	return m, nil
}

func (m Model) handleWorkoutsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.workouts.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.workouts.move(1)
	case key.Matches(msg, m.keys.Add):
		sess := m.store.NewWorkoutSession()
		m.editor = newWorkoutEditor(m.store, sess, true)
		m.state = StateWorkoutEdit
	case key.Matches(msg, m.keys.Edit):
		if w, ok := m.workouts.selected(); ok {
			sess, err := m.store.EditWorkout(w.ID)
			if err != nil {
				m.status = friendlyError(err)
				break
			}
			m.editor = newWorkoutEditor(m.store, sess, false)
			m.state = StateWorkoutEdit
		}
	case key.Matches(msg, m.keys.Delete):
		if w, ok := m.workouts.selected(); ok {
			m.askConfirm(confirmDeleteWorkout, w.ID, "Delete the workout on "+w.Date+"?")
		}
	}
	return m, nil
}

func (m Model) handlePresetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.presets.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.presets.move(1)
	case key.Matches(msg, m.keys.Add):
		m.presetForm = newPresetForm(m.store, nil)
		m.form = m.presetForm.build()
		m.state = StatePresetForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.presets.selected(); ok {
			m.presetForm = newPresetForm(m.store, &p)
			m.form = m.presetForm.build()
			m.state = StatePresetForm
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.presets.selected(); ok {
			m.askConfirm(confirmDeletePreset, p.ID, "Delete preset "+p.Name+"?")
		}
	}
	return m, nil
}

func (m Model) handleLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.library.tagMode {
		switch msg.String() {
		case "left", "h":
			if m.library.tagCursor > 0 {
				m.library.tagCursor--
			}
		case "right", "l":
			if m.library.tagCursor < len(m.library.tags)-1 {
				m.library.tagCursor++
			}
		case "enter", " ":
			m.library.toggleTag()
		case "t", "esc":
			m.library.tagMode = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.library.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.library.move(1)
	case key.Matches(msg, m.keys.Search):
		m.library.searching = true
		return m, m.library.search.Focus()
	case key.Matches(msg, m.keys.Add):
		m.exForm = newExerciseForm(nil)
		m.form = m.exForm.build()
		m.state = StateExerciseForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if ex, ok := m.library.selected(); ok {
			m.exForm = newExerciseForm(&ex)
			m.form = m.exForm.build()
			m.state = StateExerciseForm
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if ex, ok := m.library.selected(); ok {
			m.askConfirm(confirmDeleteExercise, ex.ID, "Delete "+ex.Name+" from the library? Presets will drop it; logged workouts keep their history.")
		}
	default:
		if msg.String() == "t" {
			m.library.tagMode = len(m.library.tags) > 0
		}
	}
	return m, nil
}

func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.timerEditing {
		switch msg.String() {
		case "enter":
			if secs, err := strconv.Atoi(strings.TrimSpace(m.timerInput.Value())); err == nil && secs > 0 {
				m.workTimer.SetDuration(secs)
			}
			m.timerEditing = false
			m.timerInput.Blur()
			m.timerInput.SetValue("")
		case "esc":
			m.timerEditing = false
			m.timerInput.Blur()
			m.timerInput.SetValue("")
		default:
			var cmd tea.Cmd
			m.timerInput, cmd = m.timerInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key := msg.String(); len(key) == 1 && key >= "1" && key <= "5" {
		m.workTimer.SetDuration(workPresets[key[0]-'1'])
		return m, nil
	}

	switch msg.String() {
	case "c":
		m.timerEditing = true
		return m, m.timerInput.Focus()
	case " ", "s":
		if m.workTimer.Running() {
			m.workTimer.Pause()
			return m, nil
		}
		m.workTimer.Start()
		return m, m.ensureTicking()
	case "x":
		m.workTimer.Reset()
	case "+", "=":
		m.workTimer.SetDuration(m.workTimer.Total() + 60)
	case "-":
		if t := m.workTimer.Total() - 60; t > 0 {
			m.workTimer.SetDuration(t)
		} else {
			m.workTimer.Reset()
		}
	case "r":
		m.restOpen = !m.restOpen
	}
	return m, nil
}
