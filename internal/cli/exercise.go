package cli

import (
	"fmt"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/filter"
	"github.com/liftlog-dev/liftlog/internal/models"
)

type ExerciseAddCmd struct {
	Name         string `arg:"" help:"Exercise name."`
	Tags         string `short:"t" help:"Comma-separated tags."`
	Notes        string `short:"n" help:"Form cues / notes."`
	LastWeight   string `help:"Last working weight."`
	PR           string `help:"Personal record."`
	WarmupWeight string `help:"Warm-up weight."`
	SetSpec      string `help:"Usual set/rep scheme, e.g. 3x8."`
}

func (c *ExerciseAddCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	ex, err := ctx.Store.CreateExercise(c.Name, parseTags(c.Tags), c.Notes, models.ExerciseDetails{
		LastWeight:   c.LastWeight,
		PR:           c.PR,
		WarmupWeight: c.WarmupWeight,
		SetSpec:      c.SetSpec,
	})
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Added exercise: %s (ID: %s)\n", ex.Name, ex.ID)
	return nil
}

type ExerciseEditCmd struct {
	Name         string  `arg:"" help:"Current exercise name."`
	Rename       *string `help:"New name."`
	Tags         *string `short:"t" help:"Comma-separated tags (replaces the existing set)."`
	Notes        *string `short:"n" help:"Form cues / notes."`
	LastWeight   *string `help:"Last working weight."`
	PR           *string `help:"Personal record."`
	WarmupWeight *string `help:"Warm-up weight."`
	SetSpec      *string `help:"Usual set/rep scheme."`
}

func (c *ExerciseEditCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	ex, err := findExercise(ctx, c.Name)
	if err != nil {
		return err
	}

	// Unset flags keep the current values; edits are full-record
	// replacements underneath.
	name := ex.Name
	if c.Rename != nil {
		name = *c.Rename
	}
	tags := ex.Tags
	if c.Tags != nil {
		tags = parseTags(*c.Tags)
	}
	notes := ex.Notes
	if c.Notes != nil {
		notes = *c.Notes
	}
	details := models.ExerciseDetails{
		LastWeight:   ex.LastWeight,
		PR:           ex.PR,
		WarmupWeight: ex.WarmupWeight,
		SetSpec:      ex.SetSpec,
	}
	if c.LastWeight != nil {
		details.LastWeight = *c.LastWeight
	}
	if c.PR != nil {
		details.PR = *c.PR
	}
	if c.WarmupWeight != nil {
		details.WarmupWeight = *c.WarmupWeight
	}
	if c.SetSpec != nil {
		details.SetSpec = *c.SetSpec
	}

	updated, err := ctx.Store.UpdateExercise(ex.ID, name, tags, notes, details)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Updated exercise: %s\n", updated.Name)
	return nil
}

type ExerciseDeleteCmd struct {
	Name string `arg:"" help:"Exercise name."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ExerciseDeleteCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	ex, err := findExercise(ctx, c.Name)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirmPrompt(fmt.Sprintf("Delete %q from the library? It will also be removed from every preset.", ex.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteExercise(ex.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted exercise: %s\n", ex.Name)
	return nil
}

type ExerciseListCmd struct {
	Tags   string `short:"t" help:"Only exercises carrying all of these comma-separated tags."`
	Search string `short:"s" help:"Case-insensitive name search."`
}

func (c *ExerciseListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	exercises := filter.Apply(ctx.Store.Exercises(), parseTags(c.Tags), c.Search)
	if len(exercises) == 0 {
		fmt.Println("No exercises found")
		return nil
	}

	fmt.Println("Exercises:")
	for _, ex := range exercises {
		line := "  " + ex.Name
		if len(ex.Tags) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(ex.Tags, ", "))
		}
		fmt.Println(line)
		if ex.LastWeight != "" {
			fmt.Printf("      Last: %s\n", ex.LastWeight)
		}
		if ex.PR != "" {
			fmt.Printf("      PR: %s\n", ex.PR)
		}
		if ex.SetSpec != "" {
			fmt.Printf("      Sets: %s\n", ex.SetSpec)
		}
	}
	return nil
}

// findExercise resolves an exercise by case-insensitive name.
func findExercise(ctx *Context, name string) (models.Exercise, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, ex := range ctx.Store.Exercises() {
		if strings.ToLower(ex.Name) == lower {
			return ex, nil
		}
	}
	return models.Exercise{}, fmt.Errorf("exercise not found: %s", name)
}
