package scan

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.JobProcessor = (*Processor)(nil)

// Processor analyzes extracted page text and saves the resulting job.
type Processor struct {
	Settings jobhunter.SettingsService
	Analyzer jobhunter.JobAnalyzer
	Jobs     jobhunter.JobService

	// State, if set, receives every scan outcome. Failures to record it are
	// ignored.
	State jobhunter.StateService

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// ProcessJob validates the request, reads settings, runs the analyzer and
// saves the job. No job is saved unless every step succeeds.
func (p *Processor) ProcessJob(ctx context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
	result := p.process(ctx, req)
	if p.State != nil {
		_ = p.State.SaveScanResult(ctx, result)
	}
	return result
}

func (p *Processor) process(ctx context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
	now := p.now()

	if strings.TrimSpace(req.Content) == "" || strings.TrimSpace(req.URL) == "" {
		return Failed(req.URL, jobhunter.Errorf(jobhunter.EINVALID, "Invalid job data: content and URL are required"), now)
	}

	settings, err := p.Settings.FindSettings(ctx)
	if err != nil {
		return Failed(req.URL, err, now)
	}
	if !settings.HasAPIKey() {
		return Failed(req.URL, jobhunter.Errorf(jobhunter.EINVALID, "API Key not set. Please configure it in the settings."), now)
	}

	analysis, err := p.Analyzer.AnalyzeJob(ctx, settings, jobhunter.JobExtractionInput{
		Content: req.Content,
		URL:     req.URL,
	})
	if err != nil {
		return Failed(req.URL, err, now)
	}

	job := jobhunter.NewJob(req.URL, req.Content, analysis)
	job.Metadata.ProcessedAt = now.UTC()
	if err := p.Jobs.SaveJob(ctx, job); err != nil {
		return Failed(req.URL, err, now)
	}

	return &jobhunter.ScanResult{
		Success:     true,
		URL:         req.URL,
		JobID:       job.ID,
		JobTitle:    analysis.JobTitle,
		CompanyName: analysis.CompanyName,
		Timestamp:   now,
	}
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Failed returns the uniform failure result for url. The message is the
// user-facing text of err.
func Failed(url string, err error, at time.Time) *jobhunter.ScanResult {
	return &jobhunter.ScanResult{
		Success:   false,
		URL:       url,
		Error:     jobhunter.ErrorMessage(err),
		Timestamp: at,
	}
}
