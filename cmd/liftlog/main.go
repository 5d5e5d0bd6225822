package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/liftlog-dev/liftlog/internal/cli"
	"github.com/liftlog-dev/liftlog/internal/logger"
	"github.com/liftlog-dev/liftlog/internal/storage"
	"github.com/liftlog-dev/liftlog/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/liftlog/liftlog.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd `cmd:"" help:"Initialize liftlog storage."`
	Tui      cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Exercise struct {
		Add    cli.ExerciseAddCmd    `cmd:"" help:"Add an exercise to the library."`
		Edit   cli.ExerciseEditCmd   `cmd:"" help:"Edit a library exercise."`
		Delete cli.ExerciseDeleteCmd `cmd:"" help:"Delete a library exercise."`
		List   cli.ExerciseListCmd   `cmd:"" help:"List library exercises."`
	} `cmd:"" help:"Manage the exercise library."`
	Preset struct {
		Add    cli.PresetAddCmd    `cmd:"" help:"Create a workout preset."`
		Edit   cli.PresetEditCmd   `cmd:"" help:"Edit a preset."`
		Delete cli.PresetDeleteCmd `cmd:"" help:"Delete a preset."`
		List   cli.PresetListCmd   `cmd:"" help:"List presets."`
	} `cmd:"" help:"Manage workout presets."`
	Workout struct {
		Log    cli.WorkoutLogCmd    `cmd:"" help:"Log a workout."`
		Delete cli.WorkoutDeleteCmd `cmd:"" help:"Delete a workout."`
		List   cli.WorkoutListCmd   `cmd:"" help:"List workout history."`
	} `cmd:"" help:"Manage workout history."`
	Export   cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import   cli.ImportCmd `cmd:"" help:"Import data from an export file, replacing current data."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"Manage preferences."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("liftlog"),
		kong.Description("Personal workout tracker: exercise library, presets, history and rest timers"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Provider: provider,
		Store:    store.New(provider),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
