package cli

import (
	"fmt"
	"strings"
	"time"
)

type WorkoutLogCmd struct {
	Date      string `short:"d" help:"Workout date (YYYY-MM-DD); defaults to today."`
	Preset    string `short:"p" help:"Preset to start from." xor:"source"`
	Exercises string `short:"e" help:"Comma-separated exercise names for a custom workout." xor:"source"`
	Cardio    string `help:"Cardio entries as type:minutes pairs, comma-separated (e.g. 'bike:20,rowing:10')."`
}

func (c *WorkoutLogCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	sess := ctx.Store.NewWorkoutSession()
	defer sess.Discard()

	if c.Date != "" {
		if _, err := time.Parse("2006-01-02", c.Date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
		}
		sess.Date = c.Date
	}

	switch {
	case c.Preset != "":
		p, err := findPreset(ctx, c.Preset)
		if err != nil {
			return err
		}
		if err := sess.ApplyPreset(p.ID); err != nil {
			return err
		}
	case c.Exercises != "":
		sess.SetCustom()
		for _, name := range strings.Split(c.Exercises, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			ex, err := findExercise(ctx, name)
			if err != nil {
				return err
			}
			if err := sess.AddExercise(ex.ID); err != nil {
				return friendlyError(err)
			}
		}
	default:
		return fmt.Errorf("provide --preset or --exercises (sets are edited in the TUI)")
	}

	for _, pair := range parseCardioPairs(c.Cardio) {
		entry := sess.AddCardio()
		sess.UpdateCardio(entry.ID, "type", pair[0])
		sess.UpdateCardio(entry.ID, "duration", pair[1])
	}

	w, err := sess.Save()
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Logged workout: %s on %s (%d exercises)\n", w.PresetName, w.Date, len(w.Exercises))
	return nil
}

type WorkoutListCmd struct {
	Limit int `short:"n" help:"Show at most this many workouts." default:"0"`
}

func (c *WorkoutListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	workouts := ctx.Store.Workouts()
	if len(workouts) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	fmt.Println("Workouts:")
	for i, w := range workouts {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		fmt.Printf("  %s  %s - %d exercises, %d sets\n", w.Date, w.PresetName, len(w.Exercises), w.TotalSets())
		for _, entry := range w.Cardio {
			fmt.Printf("      cardio: %s - %d min\n", entry.Type, entry.DurationMin)
		}
	}
	return nil
}

type WorkoutDeleteCmd struct {
	Date string `arg:"" help:"Workout date (YYYY-MM-DD)."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *WorkoutDeleteCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	var matched []string
	for _, w := range ctx.Store.Workouts() {
		if w.Date == c.Date {
			matched = append(matched, w.ID)
		}
	}
	if len(matched) == 0 {
		return fmt.Errorf("no workout found on %s", c.Date)
	}
	if len(matched) > 1 {
		return fmt.Errorf("%d workouts on %s; delete from the TUI to pick one", len(matched), c.Date)
	}

	if !c.Yes {
		ok, err := confirmPrompt(fmt.Sprintf("Delete the workout on %s?", c.Date))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteWorkout(matched[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted workout on %s\n", c.Date)
	return nil
}

// parseCardioPairs splits "bike:20,rowing:10" into [type, minutes]
// pairs. Malformed entries are skipped; the session coerces minutes.
func parseCardioPairs(s string) [][2]string {
	var out [][2]string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kind, mins, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(kind), strings.TrimSpace(mins)})
	}
	return out
}
