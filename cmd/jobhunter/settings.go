package main

import (
	"fmt"

	"github.com/fwojciec/jobhunter"
)

// Run executes the settings command. Without flags it prints the current
// settings.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	var (
		settings *jobhunter.Settings
		err      error
	)
	if c.APIKey == nil && c.Model == nil && c.MaxJobs == nil {
		settings, err = deps.Settings.FindSettings(deps.Ctx)
	} else {
		settings, err = deps.Settings.UpdateSettings(deps.Ctx, jobhunter.SettingsUpdate{
			APIKey:    c.APIKey,
			ModelName: c.Model,
			MaxJobs:   c.MaxJobs,
		})
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	key := "not set"
	if settings.HasAPIKey() {
		key = "set"
	}
	fmt.Fprintf(deps.Stdout, "API key:  %s\n", key)
	fmt.Fprintf(deps.Stdout, "Model:    %s\n", settings.ModelName)
	fmt.Fprintf(deps.Stdout, "Max jobs: %d\n", settings.MaxJobs)
	return nil
}
