package main

import (
	"fmt"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Scanner.Concurrency = c.Concurrency
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scanning %d pages\n", event.Total)
		case scan.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: repeated in batch\n", event.URL)
		case scan.ProgressCompleted:
			r := event.Result
			fmt.Fprintf(deps.Stdout, "  [%d/%d] saved %s at %s (%s)\n",
				event.Completed, event.Total, r.JobTitle, r.CompanyName, r.JobID)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n",
				event.Completed, event.Total, event.URL, event.Result.Error)
		}
	}

	result, err := deps.Scanner.ScanURLs(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, failed %d, skipped %d\n", result.Saved, result.Failed, result.Skipped)
	if result.Saved == 0 && result.Failed > 0 {
		return jobhunter.Errorf(jobhunter.EINTERNAL, "no jobs saved")
	}
	return nil
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	text, err := deps.Extractor.ExtractContent(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n\n", text.Title, text.Content)
	fmt.Fprintf(deps.Stdout, "Words: %d\n", text.WordCount)

	if deps.TokenCounter != nil {
		tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, text.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error counting tokens: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Tokens: ~%d\n", tokens)
	}
	return nil
}
