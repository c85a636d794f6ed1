package mock

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.JobAnalyzer = (*JobAnalyzer)(nil)

// JobAnalyzer is a mock implementation of jobhunter.JobAnalyzer.
type JobAnalyzer struct {
	AnalyzeJobFn func(ctx context.Context, settings *jobhunter.Settings, input jobhunter.JobExtractionInput) (*jobhunter.JobAnalysis, error)
}

func (a *JobAnalyzer) AnalyzeJob(ctx context.Context, settings *jobhunter.Settings, input jobhunter.JobExtractionInput) (*jobhunter.JobAnalysis, error) {
	return a.AnalyzeJobFn(ctx, settings, input)
}

var _ jobhunter.JobProcessor = (*JobProcessor)(nil)

// JobProcessor is a mock implementation of jobhunter.JobProcessor.
type JobProcessor struct {
	ProcessJobFn func(ctx context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult
}

func (p *JobProcessor) ProcessJob(ctx context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
	return p.ProcessJobFn(ctx, req)
}

var _ jobhunter.PageScanner = (*PageScanner)(nil)

// PageScanner is a mock implementation of jobhunter.PageScanner.
type PageScanner struct {
	ScanURLFn func(ctx context.Context, url string) *jobhunter.ScanResult
}

func (s *PageScanner) ScanURL(ctx context.Context, url string) *jobhunter.ScanResult {
	return s.ScanURLFn(ctx, url)
}
