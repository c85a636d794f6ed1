package gemini

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

// Ensure Analyzer implements jobhunter.JobAnalyzer at compile time.
var _ jobhunter.JobAnalyzer = (*Analyzer)(nil)

// Analyzer implements jobhunter.JobAnalyzer with the job extraction agent.
type Analyzer struct {
	exec *Executor
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(exec *Executor) *Analyzer {
	return &Analyzer{exec: exec}
}

// AnalyzeJob runs the job extraction agent with the configured credential
// and model.
func (a *Analyzer) AnalyzeJob(ctx context.Context, settings *jobhunter.Settings, input jobhunter.JobExtractionInput) (*jobhunter.JobAnalysis, error) {
	if settings == nil || !settings.HasAPIKey() {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "API Key not set. Please configure it in the settings.")
	}

	result := Execute(ctx, a.exec, JobExtractionAgent{}, input, settings.APIKey, settings.ModelName)
	if !result.Success {
		return nil, result.Err
	}
	return result.Data, nil
}
