package jobhunter

import (
	"context"
	"time"
)

// ScanRequest asks for one extracted page to be analyzed and saved.
type ScanRequest struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// ScanResult is the uniform outcome of a scan. On failure only Error is
// set; no job was saved.
type ScanResult struct {
	Success     bool      `json:"success"`
	URL         string    `json:"url,omitempty"`
	JobID       string    `json:"jobId,omitempty"`
	JobTitle    string    `json:"jobTitle,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// JobProcessor runs the analysis pipeline for an extracted page.
type JobProcessor interface {
	// ProcessJob never returns a nil result. Failures are reported through
	// ScanResult.Error.
	ProcessJob(ctx context.Context, req ScanRequest) *ScanResult
}

// PageScanner fetches a posting page and runs it through the pipeline.
type PageScanner interface {
	// ScanURL never returns a nil result. Failures are reported through
	// ScanResult.Error.
	ScanURL(ctx context.Context, url string) *ScanResult
}
