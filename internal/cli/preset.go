package cli

import (
	"fmt"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/models"
)

type PresetAddCmd struct {
	Name      string `arg:"" help:"Preset name."`
	Exercises string `short:"e" required:"" help:"Comma-separated exercise names, in workout order."`
}

func (c *PresetAddCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	refs, err := resolveRefs(ctx, c.Exercises)
	if err != nil {
		return err
	}

	p, err := ctx.Store.CreatePreset(c.Name, refs)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Added preset: %s (%d exercises)\n", p.Name, len(p.Exercises))
	return nil
}

type PresetEditCmd struct {
	Name      string  `arg:"" help:"Current preset name."`
	Rename    *string `help:"New name."`
	Exercises *string `short:"e" help:"Comma-separated exercise names (replaces the existing list)."`
}

func (c *PresetEditCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	p, err := findPreset(ctx, c.Name)
	if err != nil {
		return err
	}

	name := p.Name
	if c.Rename != nil {
		name = *c.Rename
	}
	refs := p.Exercises
	if c.Exercises != nil {
		refs, err = resolveRefs(ctx, *c.Exercises)
		if err != nil {
			return err
		}
	}

	updated, err := ctx.Store.UpdatePreset(p.ID, name, refs)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Updated preset: %s\n", updated.Name)
	return nil
}

type PresetDeleteCmd struct {
	Name string `arg:"" help:"Preset name."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PresetDeleteCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	p, err := findPreset(ctx, c.Name)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirmPrompt(fmt.Sprintf("Delete preset %q?", p.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeletePreset(p.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted preset: %s\n", p.Name)
	return nil
}

type PresetListCmd struct{}

func (c *PresetListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	presets := ctx.Store.Presets()
	if len(presets) == 0 {
		fmt.Println("No presets found")
		return nil
	}

	fmt.Println("Presets:")
	for _, p := range presets {
		names := make([]string, len(p.Exercises))
		for i, ref := range p.Exercises {
			names[i] = ref.Name
		}
		fmt.Printf("  %s (%d): %s\n", p.Name, len(p.Exercises), strings.Join(names, ", "))
	}
	return nil
}

// resolveRefs turns a comma-separated list of exercise names into refs
// against the library, failing on the first unknown name.
func resolveRefs(ctx *Context, list string) ([]models.ExerciseRef, error) {
	var refs []models.ExerciseRef
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ex, err := findExercise(ctx, name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, models.ExerciseRef{ID: ex.ID, Name: ex.Name})
	}
	return refs, nil
}

// findPreset resolves a preset by case-insensitive name.
func findPreset(ctx *Context, name string) (models.Preset, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range ctx.Store.Presets() {
		if strings.ToLower(p.Name) == lower {
			return p, nil
		}
	}
	return models.Preset{}, fmt.Errorf("preset not found: %s", name)
}
