package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/store"
)

type editorMode int

const (
	editorPickSource editorMode = iota // choose preset or custom for a new workout
	editorNormal
	editorPickExercise
	editorEditField
)

type rowKind int

const (
	rowExercise rowKind = iota
	rowSet
	rowCardio
)

type editorRow struct {
	kind       rowKind
	exerciseID string
	setIndex   int
	cardioID   string
}

// editorAction tells the parent model what to do after a key was
// handled by the editor.
type editorAction int

const (
	editorNone editorAction = iota
	editorSaved
	editorCancelled
	editorFailed
)

// workoutEditor drives a WorkoutSession: pick a preset or go custom,
// then edit exercises, sets, and cardio row by row.
type workoutEditor struct {
	st   *store.Store
	sess *store.WorkoutSession

	mode   editorMode
	cursor int

	sourceCursor  int
	sourcePresets []models.Preset

	picker libraryList

	input     textinput.Model
	editField string // "date", "weight", "reps", "cardio-type", "cardio-duration"
	editRow   editorRow

	err string
}

func newWorkoutEditor(st *store.Store, sess *store.WorkoutSession, isNew bool) *workoutEditor {
	ed := &workoutEditor{
		st:     st,
		sess:   sess,
		input:  textinput.New(),
		picker: newLibraryList(st),
	}
	ed.sourcePresets = st.Presets()
	if isNew && len(ed.sourcePresets) > 0 {
		ed.mode = editorPickSource
	} else {
		if isNew {
			sess.SetCustom()
		}
		ed.mode = editorNormal
	}
	return ed
}

func (ed *workoutEditor) rows() []editorRow {
	var rows []editorRow
	for _, ex := range ed.sess.Exercises {
		rows = append(rows, editorRow{kind: rowExercise, exerciseID: ex.ID})
		for i := range ex.Sets {
			rows = append(rows, editorRow{kind: rowSet, exerciseID: ex.ID, setIndex: i})
		}
	}
	for _, c := range ed.sess.Cardio {
		rows = append(rows, editorRow{kind: rowCardio, cardioID: c.ID})
	}
	return rows
}

func (ed *workoutEditor) clamp() {
	n := len(ed.rows())
	if ed.cursor >= n {
		ed.cursor = n - 1
	}
	if ed.cursor < 0 {
		ed.cursor = 0
	}
}

func (ed *workoutEditor) current() (editorRow, bool) {
	rows := ed.rows()
	if len(rows) == 0 {
		return editorRow{}, false
	}
	ed.clamp()
	return rows[ed.cursor], true
}

func (ed *workoutEditor) startEdit(field, initial, placeholder string) {
	ed.editField = field
	ed.input.SetValue(initial)
	ed.input.Placeholder = placeholder
	ed.input.CursorEnd()
	ed.input.Focus()
	ed.mode = editorEditField
}

func (ed *workoutEditor) commitEdit() {
	val := ed.input.Value()
	switch ed.editField {
	case "date":
		if _, err := time.Parse("2006-01-02", val); err == nil {
			ed.sess.Date = val
		} else {
			ed.err = "dates look like 2006-01-02"
		}
	case "weight":
		ed.sess.UpdateSetField(ed.editRow.exerciseID, ed.editRow.setIndex, "weight", val)
	case "reps":
		ed.sess.UpdateSetField(ed.editRow.exerciseID, ed.editRow.setIndex, "reps", val)
	case "cardio-type":
		ed.sess.UpdateCardio(ed.editRow.cardioID, "type", val)
	case "cardio-duration":
		ed.sess.UpdateCardio(ed.editRow.cardioID, "duration", val)
	}
	ed.input.Blur()
	ed.mode = editorNormal
}

func (ed *workoutEditor) cycleSetType(row editorRow) {
	for _, ex := range ed.sess.Exercises {
		if ex.ID != row.exerciseID || row.setIndex >= len(ex.Sets) {
			continue
		}
		next := models.SetNormal
		switch ex.Sets[row.setIndex].Type {
		case models.SetWarmup:
			next = models.SetNormal
		case models.SetNormal:
			next = models.SetFailure
		case models.SetFailure:
			next = models.SetWarmup
		}
		ed.sess.UpdateSetField(row.exerciseID, row.setIndex, "type", string(next))
		return
	}
}

func (ed *workoutEditor) update(msg tea.KeyMsg) (tea.Cmd, editorAction) {
	ed.err = ""
	switch ed.mode {
	case editorPickSource:
		return ed.updatePickSource(msg)
	case editorPickExercise:
		return ed.updatePickExercise(msg)
	case editorEditField:
		return ed.updateEditField(msg)
	}
	return ed.updateNormal(msg)
}

func (ed *workoutEditor) updatePickSource(msg tea.KeyMsg) (tea.Cmd, editorAction) {
	// Row 0 is "Custom Workout", presets follow.
	switch msg.String() {
	case "up", "k":
		if ed.sourceCursor > 0 {
			ed.sourceCursor--
		}
	case "down", "j":
		if ed.sourceCursor < len(ed.sourcePresets) {
			ed.sourceCursor++
		}
	case "enter":
		if ed.sourceCursor == 0 {
			ed.sess.SetCustom()
		} else {
			p := ed.sourcePresets[ed.sourceCursor-1]
			if err := ed.sess.ApplyPreset(p.ID); err != nil {
				ed.err = err.Error()
				return nil, editorNone
			}
		}
		ed.mode = editorNormal
	case "esc":
		return nil, editorCancelled
	}
	return nil, editorNone
}

func (ed *workoutEditor) updatePickExercise(msg tea.KeyMsg) (tea.Cmd, editorAction) {
	if ed.picker.searching {
		switch msg.String() {
		case "enter", "esc":
			ed.picker.searching = false
			ed.picker.search.Blur()
		default:
			var cmd tea.Cmd
			ed.picker.search, cmd = ed.picker.search.Update(msg)
			ed.picker.clamp()
			return cmd, editorNone
		}
		return nil, editorNone
	}

	switch msg.String() {
	case "up", "k":
		ed.picker.move(-1)
	case "down", "j":
		ed.picker.move(1)
	case "/":
		ed.picker.searching = true
		ed.picker.search.Focus()
	case "enter":
		if ex, ok := ed.picker.selected(); ok {
			if err := ed.sess.AddExercise(ex.ID); err != nil {
				ed.err = friendlyError(err)
			}
		}
		ed.mode = editorNormal
	case "esc":
		ed.mode = editorNormal
	}
	return nil, editorNone
}

func (ed *workoutEditor) updateEditField(msg tea.KeyMsg) (tea.Cmd, editorAction) {
	switch msg.String() {
	case "enter":
		ed.commitEdit()
	case "esc":
		ed.input.Blur()
		ed.mode = editorNormal
	default:
		var cmd tea.Cmd
		ed.input, cmd = ed.input.Update(msg)
		return cmd, editorNone
	}
	return nil, editorNone
}

func (ed *workoutEditor) updateNormal(msg tea.KeyMsg) (tea.Cmd, editorAction) {
	row, hasRow := ed.current()
	switch msg.String() {
	case "up", "k":
		ed.cursor--
		ed.clamp()
	case "down", "j":
		ed.cursor++
		ed.clamp()
	case "a":
		if hasRow && row.kind != rowCardio {
			ed.sess.AddSet(row.exerciseID)
		}
	case "d":
		if !hasRow {
			break
		}
		switch row.kind {
		case rowSet:
			ed.sess.RemoveSet(row.exerciseID, row.setIndex)
		case rowCardio:
			ed.sess.RemoveCardio(row.cardioID)
		}
		ed.clamp()
	case "x":
		if hasRow && row.kind != rowCardio {
			ed.sess.RemoveExercise(row.exerciseID)
			ed.clamp()
		}
	case "e":
		ed.picker.reload()
		ed.mode = editorPickExercise
	case "t":
		if hasRow && row.kind == rowSet {
			ed.cycleSetType(row)
		}
	case "w":
		if hasRow && row.kind == rowSet {
			ed.editRow = row
			ed.startEdit("weight", "", "weight")
		}
	case "n":
		if hasRow && row.kind == rowSet {
			ed.editRow = row
			ed.startEdit("reps", "", "reps")
		}
	case "c":
		entry := ed.sess.AddCardio()
		ed.editRow = editorRow{kind: rowCardio, cardioID: entry.ID}
		ed.startEdit("cardio-type", "", "running, cycling, ...")
	case "m":
		if hasRow && row.kind == rowCardio {
			ed.editRow = row
			ed.startEdit("cardio-duration", "", "minutes")
		}
	case "T":
		if hasRow && row.kind == rowCardio {
			ed.editRow = row
			ed.startEdit("cardio-type", "", "running, cycling, ...")
		}
	case "D":
		ed.startEdit("date", ed.sess.Date, "2006-01-02")
	case "s":
		if _, err := ed.sess.Save(); err != nil {
			ed.err = friendlyError(err)
			return nil, editorFailed
		}
		return nil, editorSaved
	case "esc":
		return nil, editorCancelled
	}
	return nil, editorNone
}

func friendlyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrExerciseInWorkout):
		return "that exercise is already in this workout"
	case errors.Is(err, store.ErrEmptyExerciseList):
		return "please select at least one exercise"
	case errors.Is(err, store.ErrMissingDate):
		return "please select a date"
	case errors.Is(err, store.ErrEmptyName):
		return "please enter a name"
	case errors.Is(err, store.ErrDuplicateName):
		return "an exercise with this name already exists"
	}
	return err.Error()
}

func (ed *workoutEditor) view(s Styles, width int) string {
	switch ed.mode {
	case editorPickSource:
		return ed.viewPickSource(s)
	case editorPickExercise:
		return ed.viewPickExercise(s)
	}
	return ed.viewRows(s, width)
}

func (ed *workoutEditor) viewPickSource(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Start from") + "\n\n")
	labels := append([]string{"Custom Workout"}, presetNames(ed.sourcePresets)...)
	for i, label := range labels {
		line := "  " + label
		if i == ed.sourceCursor {
			line = s.Selected.Render("> " + label)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + s.Help.Render("enter select • esc cancel"))
	return b.String()
}

func presetNames(ps []models.Preset) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

func (ed *workoutEditor) viewPickExercise(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Add exercise") + "\n")
	b.WriteString(ed.picker.search.View() + "\n\n")
	vis := ed.picker.visible()
	if len(vis) == 0 {
		b.WriteString(s.Muted.Render("  no matching exercises") + "\n")
	}
	for i, ex := range vis {
		line := "  " + ex.Name
		if i == ed.picker.cursor {
			line = s.Selected.Render("> " + ex.Name)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + s.Help.Render("/ search • enter add • esc back"))
	return b.String()
}

func (ed *workoutEditor) viewRows(s Styles, width int) string {
	var b strings.Builder
	title := "Log Workout"
	if ed.sess.PresetID != "" {
		for _, p := range ed.sourcePresets {
			if p.ID == ed.sess.PresetID {
				title = p.Name
			}
		}
	}
	b.WriteString(s.Title.Render(title) + "  " + s.Muted.Render(ed.sess.Date) + "\n\n")

	rows := ed.rows()
	if len(rows) == 0 {
		b.WriteString(s.Muted.Render("  empty workout, press e to add an exercise") + "\n")
	}
	byID := make(map[string]models.WorkoutExercise, len(ed.sess.Exercises))
	for _, ex := range ed.sess.Exercises {
		byID[ex.ID] = ex
	}
	cardioByID := make(map[string]models.CardioEntry, len(ed.sess.Cardio))
	for _, c := range ed.sess.Cardio {
		cardioByID[c.ID] = c
	}

	for i, row := range rows {
		var line string
		switch row.kind {
		case rowExercise:
			ex := byID[row.exerciseID]
			line = ex.Name
			if ex.Notes != "" {
				line += "  " + s.Muted.Render(ex.Notes)
			}
		case rowSet:
			ex := byID[row.exerciseID]
			set := ex.Sets[row.setIndex]
			line = fmt.Sprintf("  %-7s %6.1f x %d", set.Type, set.Weight, set.Reps)
		case rowCardio:
			c := cardioByID[row.cardioID]
			typ := c.Type
			if typ == "" {
				typ = "cardio"
			}
			line = fmt.Sprintf("  %s, %d min", typ, c.DurationMin)
		}
		if i == ed.cursor {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if ed.mode == editorEditField {
		b.WriteString("\n" + ed.input.View() + "\n")
	}
	if ed.err != "" {
		b.WriteString("\n" + s.Alert.Render(ed.err) + "\n")
	}
	b.WriteString("\n" + s.Help.Render("a set • d del set • e exercise • x del exercise • t type • w weight • n reps • c cardio • D date • r rest • s save • esc cancel"))
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}
