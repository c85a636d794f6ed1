package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/gemini"
)

// Run executes the agents command.
func (c *AgentsCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range gemini.Agents() {
		fmt.Fprintf(w, "%s\t%s\n", a.Name, a.Description)
	}
	return w.Flush()
}

// Run executes the agent command.
func (c *AgentCmd) Run(deps *Dependencies) error {
	name, err := jobhunter.ParseAgentName(c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	input, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	settings, err := requireAPIKey(deps)
	if err != nil {
		return err
	}

	result := gemini.RunAgent(deps.Ctx, deps.Executor, name, input, settings.APIKey, settings.ModelName)
	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return result.Err
	}

	out, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	fmt.Fprintf(deps.Stderr, "%s finished in %s\n", result.AgentName, result.ExecutionTime.Round(time.Millisecond))
	return nil
}

// Run executes the test-api command.
func (c *TestAPICmd) Run(deps *Dependencies) error {
	settings, err := requireAPIKey(deps)
	if err != nil {
		return err
	}

	if !deps.Executor.TestConnection(deps.Ctx, settings.APIKey, settings.ModelName) {
		fmt.Fprintf(deps.Stderr, "error: %s rejected the request. Check the API key and model name.\n", settings.ModelName)
		return jobhunter.Errorf(jobhunter.ETRANSPORT, "API connection test failed")
	}

	fmt.Fprintf(deps.Stdout, "Connected to %s\n", settings.ModelName)
	return nil
}

// requireAPIKey returns the settings, or an error if no API key is set.
func requireAPIKey(deps *Dependencies) (*jobhunter.Settings, error) {
	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return nil, err
	}
	if !settings.HasAPIKey() {
		fmt.Fprintln(deps.Stderr, "Hint: Run 'jobhunter settings --api-key KEY' or set GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "API Key not set. Please configure it in the settings.")
	}
	return settings, nil
}
