package cli

import "fmt"

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	settings, err := ctx.Provider.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println("Settings:")
	fmt.Printf("  theme: %s\n", settings.Theme)
	fmt.Printf("  rest timer: %ds\n", settings.RestTimerSec)
	return nil
}

type SettingsSetCmd struct {
	Theme     string `help:"Color theme (dark|light)." enum:"dark,light,"`
	RestTimer int    `help:"Rest timer duration in seconds."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	settings, err := ctx.Provider.GetSettings()
	if err != nil {
		return err
	}

	if c.Theme != "" {
		settings.Theme = c.Theme
	}
	// Non-positive durations are ignored rather than rejected, the same
	// silent treatment the timer gives bad custom input.
	if c.RestTimer > 0 {
		settings.RestTimerSec = c.RestTimer
	}

	if err := ctx.Provider.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Settings saved: theme=%s rest=%ds\n", settings.Theme, settings.RestTimerSec)
	return nil
}
