package cli

import (
	"fmt"
	"time"

	"github.com/liftlog-dev/liftlog/internal/logger"
	"github.com/liftlog-dev/liftlog/internal/transfer"
)

type ExportCmd struct {
	Path string `arg:"" optional:"" help:"Output file; defaults to liftlog-YYYY-MM-DD.json in the current directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		path = transfer.DefaultFilename(time.Now())
	}

	if err := transfer.WriteFile(path, ctx.Store.Collections(), time.Now()); err != nil {
		return err
	}

	fmt.Printf("Exported data to: %s\n", path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	// Parse before prompting so a malformed file never costs a
	// confirmation; a failed import must leave everything untouched.
	collections, err := transfer.ReadFile(c.File)
	if err != nil {
		return friendlyError(err)
	}

	if !c.Yes {
		ok, err := confirmPrompt("Import data? This will replace your current data.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ReplaceAll(collections); err != nil {
		return err
	}

	logger.Info("imported data",
		"exercises", len(collections.Library),
		"presets", len(collections.Presets),
		"workouts", len(collections.Workouts))
	fmt.Println("Data imported successfully.")
	return nil
}
