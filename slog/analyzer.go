package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobhunter"
)

// Ensure LoggingAnalyzer implements jobhunter.JobAnalyzer.
var _ jobhunter.JobAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a JobAnalyzer with debug logging. The API key is
// never logged.
type LoggingAnalyzer struct {
	next   jobhunter.JobAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next jobhunter.JobAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// AnalyzeJob delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) AnalyzeJob(ctx context.Context, settings *jobhunter.Settings, input jobhunter.JobExtractionInput) (analysis *jobhunter.JobAnalysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", input.URL, "bytes", len(input.Content)}
		if settings != nil {
			attrs = append(attrs, "model", settings.ModelName)
		}
		if analysis != nil {
			attrs = append(attrs, "title", analysis.JobTitle, "company", analysis.CompanyName)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		a.logger.Info("analyze job", attrs...)
	}(time.Now())
	return a.next.AnalyzeJob(ctx, settings, input)
}
