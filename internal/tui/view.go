package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var content string
	switch m.state {
	case StateConfirm:
		content = m.viewConfirm()
	case StateAlert:
		content = m.viewAlert()
	case StateExerciseForm, StatePresetForm:
		if m.form != nil {
			content = m.form.View()
		}
	case StateWorkoutEdit:
		if m.editor != nil {
			content = m.editor.view(m.styles, m.width)
			if m.restOpen {
				content = lipgloss.JoinVertical(lipgloss.Left, content, m.viewRestPanel())
			}
		}
	case StateTimer:
		content = m.viewTimer()
		if m.restOpen {
			content = lipgloss.JoinVertical(lipgloss.Left, content, m.viewRestPanel())
		}
	case StatePresets:
		content = m.viewPresets()
	case StateLibrary:
		content = m.viewLibrary()
	default:
		content = m.viewWorkouts()
	}

	sections := []string{m.viewTabs(), content}
	if m.status != "" {
		sections = append(sections, m.styles.Done.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	labels := []string{"Workouts", "Presets", "Library", "Timer"}
	active := m.tab
	for _, s := range tabOrder {
		if s == m.state {
			active = s
		}
	}
	rendered := make([]string, len(labels))
	for i, s := range tabOrder {
		if s == active {
			rendered[i] = m.styles.ActiveTab.Render(labels[i])
		} else {
			rendered[i] = m.styles.InactiveTab.Render(labels[i])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func (m Model) viewConfirm() string {
	return m.styles.Panel.Render(
		m.confirmText + "\n\n" + m.styles.Help.Render("y confirm • n cancel"),
	)
}

func (m Model) viewAlert() string {
	return m.styles.Panel.Render(
		m.styles.Alert.Render(m.alertText) + "\n\n" + m.styles.Help.Render("press any key"),
	)
}

func (m Model) viewWorkouts() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Workout Log") + "\n\n")
	if len(m.workouts.items) == 0 {
		b.WriteString(m.styles.Muted.Render("  no workouts yet, press a to log one") + "\n")
	}
	for i, w := range m.workouts.items {
		name := w.PresetName
		line := fmt.Sprintf("%s  %s  %s", w.Date, name, m.styles.Muted.Render(fmt.Sprintf("(%d sets)", w.TotalSets())))
		if i == m.workouts.cursor {
			b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if w, ok := m.workouts.selected(); ok {
		b.WriteString("\n")
		for _, ex := range w.Exercises {
			b.WriteString("  " + ex.Name + "\n")
			for _, set := range ex.Sets {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("    %-7s %6.1f x %d", set.Type, set.Weight, set.Reps)) + "\n")
			}
		}
		for _, c := range w.Cardio {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s, %d min", c.Type, c.DurationMin)) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Help.Render("a log • e edit • d delete"))
	return b.String()
}

func (m Model) viewPresets() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Presets") + "\n\n")
	if len(m.presets.items) == 0 {
		b.WriteString(m.styles.Muted.Render("  no presets yet, press a to create one") + "\n")
	}
	for i, p := range m.presets.items {
		line := fmt.Sprintf("%s  %s", p.Name, m.styles.Muted.Render(fmt.Sprintf("(%d exercises)", len(p.Exercises))))
		if i == m.presets.cursor {
			b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if p, ok := m.presets.selected(); ok {
		b.WriteString("\n")
		for _, ref := range p.Exercises {
			b.WriteString(m.styles.Muted.Render("  - "+ref.Name) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Help.Render("a add • e edit • d delete"))
	return b.String()
}

func (m Model) viewLibrary() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Exercise Library") + "\n")
	b.WriteString(m.library.search.View() + "\n")

	if len(m.library.tags) > 0 {
		var chips []string
		for i, t := range m.library.tags {
			style := m.styles.Tag
			if m.library.active[t] {
				style = m.styles.TagActive
			}
			chip := style.Render(t)
			if m.library.tagMode && i == m.library.tagCursor {
				chip = m.styles.Selected.Render("[" + t + "]")
			}
			chips = append(chips, chip)
		}
		b.WriteString(strings.Join(chips, " ") + "\n")
	}
	b.WriteString("\n")

	vis := m.library.visible()
	if len(vis) == 0 {
		b.WriteString(m.styles.Muted.Render("  no matching exercises") + "\n")
	}
	for i, ex := range vis {
		line := ex.Name
		if len(ex.Tags) > 0 {
			line += "  " + m.styles.Tag.Render(strings.Join(ex.Tags, ", "))
		}
		if i == m.library.cursor {
			b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if ex, ok := m.library.selected(); ok {
		var details []string
		if ex.SetSpec != "" {
			details = append(details, "sets "+ex.SetSpec)
		}
		if ex.WarmupWeight != "" {
			details = append(details, "warmup "+ex.WarmupWeight)
		}
		if ex.LastWeight != "" {
			details = append(details, "last "+ex.LastWeight)
		}
		if ex.PR != "" {
			details = append(details, "pr "+ex.PR)
		}
		if ex.Notes != "" {
			details = append(details, ex.Notes)
		}
		if len(details) > 0 {
			b.WriteString("\n" + m.styles.Muted.Render("  "+strings.Join(details, "  ")) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Help.Render("/ search • t tags • a add • e edit • d delete"))
	return b.String()
}

func (m Model) viewTimer() string {
	clock := m.styles.Clock.Render(m.workTimer.Clock())
	if m.workTimer.Urgent() {
		clock = m.styles.ClockUrgent.Render(m.workTimer.Clock())
	}
	state := "paused"
	if m.workTimer.Running() {
		state = "running"
	} else if m.workTimer.Remaining() == 0 && m.workTimer.Total() == 0 {
		state = "idle"
	}
	lines := []string{
		m.styles.Title.Render("Timer"),
		"",
		clock,
		progressBar(m.workTimer.Ratio(), 30),
		m.styles.Muted.Render(state),
		"",
	}
	if m.timerEditing {
		lines = append(lines, m.timerInput.View())
	}
	lines = append(lines,
		m.styles.Help.Render("1-5 presets • c custom • space start/pause • x reset • +/- minute • r rest timer"))
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) viewRestPanel() string {
	clock := m.styles.Clock.Render(m.restTimer.Clock())
	if m.restTimer.Urgent() {
		clock = m.styles.ClockUrgent.Render(m.restTimer.Clock())
	}
	lines := []string{
		m.styles.Title.Render("Rest"),
		clock + "  " + m.styles.Muted.Render("of "+formatSeconds(m.restTimer.Total())),
		progressBar(m.restTimer.Ratio(), 20),
	}
	if m.restDone {
		lines = append(lines, m.styles.Done.Render("Rest complete!"))
	}
	lines = append(lines, m.styles.Help.Render("space start/pause • R reset • +/- 15s • r close"))
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func progressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
