package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jobhunter"
	jhfiber "github.com/fwojciec/jobhunter/fiber"
	"github.com/fwojciec/jobhunter/gemini"
	"github.com/fwojciec/jobhunter/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Jobs         jobhunter.JobService
	Settings     jobhunter.SettingsService
	State        jobhunter.StateService
	Executor     *gemini.Executor
	Processor    jobhunter.JobProcessor
	Fetcher      jobhunter.Fetcher
	Extractor    jobhunter.ContentExtractor
	Scanner      *scan.Scanner
	TokenCounter jobhunter.TokenCounter
	Server       *jhfiber.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Scan     ScanCmd     `cmd:"" help:"Scan job posting pages and save the jobs"`
	Extract  ExtractCmd  `cmd:"" help:"Show the text a page would be analyzed with"`
	List     ListCmd     `cmd:"" help:"List saved jobs"`
	Show     ShowCmd     `cmd:"" help:"Show a saved job"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved job"`
	Status   StatusCmd   `cmd:"" help:"Set the application status of a job"`
	Dedupe   DedupeCmd   `cmd:"" help:"Remove duplicate jobs"`
	Stats    StatsCmd    `cmd:"" help:"Show job statistics"`
	Last     LastCmd     `cmd:"" help:"Show the outcome of the most recent scan"`
	Export   ExportCmd   `cmd:"" help:"Export saved jobs"`
	Import   ImportCmd   `cmd:"" help:"Import jobs from a JSON export"`
	Settings SettingsCmd `cmd:"" help:"Show or change settings"`
	Agents   AgentsCmd   `cmd:"" help:"List available agents"`
	Agent    AgentCmd    `cmd:"" help:"Run an agent on a JSON input file"`
	TestAPI  TestAPICmd  `cmd:"" name:"test-api" help:"Check that the configured API key works"`
	Serve    ServeCmd    `cmd:"" help:"Serve the scan trigger and job list over HTTP"`
}

// FetchFlags select how pages are loaded and reduced to text.
type FetchFlags struct {
	Browser bool   `short:"b" help:"Render pages in a headless browser"`
	Reader  string `short:"r" enum:"goquery,readability,trafilatura" default:"goquery" help:"Main content extractor (${enum})"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URLs        []string `arg:"" name:"url" help:"Job posting URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scan limit"`
	FetchFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL"`
	FetchFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status  string `short:"s" help:"Only jobs with this status"`
	Company string `help:"Only jobs from this company"`
	Limit   int    `short:"n" help:"Maximum number of jobs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	ID     string `arg:"" help:"Job ID"`
	Status string `arg:"" help:"Saved, Applied, Rejected or Interview"`
}

// DedupeCmd is the "dedupe" subcommand.
type DedupeCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// LastCmd is the "last" subcommand.
type LastCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File string `arg:"" optional:"" help:"Output file (default stdout)"`
	JSON bool   `help:"Write JSON that import accepts"`
	Dir  string `type:"path" help:"Write one markdown file per job into this directory"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" help:"JSON file written by export --json"`
}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct {
	APIKey  *string `name:"api-key" help:"Gemini API key"`
	Model   *string `help:"Model name"`
	MaxJobs *int    `name:"max-jobs" help:"Maximum number of saved jobs"`
}

// AgentsCmd is the "agents" subcommand.
type AgentsCmd struct{}

// AgentCmd is the "agent" subcommand.
type AgentCmd struct {
	Name  string `arg:"" help:"Agent name"`
	Input string `arg:"" type:"existingfile" help:"JSON input file"`
}

// TestAPICmd is the "test-api" subcommand.
type TestAPICmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"127.0.0.1:8080" help:"Listen address"`
	FetchFlags `embed:""`
}
