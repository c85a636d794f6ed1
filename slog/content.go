package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobhunter"
)

// Ensure LoggingContentExtractor implements jobhunter.ContentExtractor.
var _ jobhunter.ContentExtractor = (*LoggingContentExtractor)(nil)

// LoggingContentExtractor wraps a ContentExtractor with debug logging.
type LoggingContentExtractor struct {
	next   jobhunter.ContentExtractor
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor.
func NewLoggingContentExtractor(next jobhunter.ContentExtractor, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, logger: logger}
}

// ExtractContent delegates to the wrapped extractor and logs the size of the
// page and of the resulting text.
func (e *LoggingContentExtractor) ExtractContent(html string) (text *jobhunter.ExtractedText, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if text != nil {
			attrs = append(attrs, "title", text.Title, "words", text.WordCount)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract content", attrs...)
	}(time.Now())
	return e.next.ExtractContent(html)
}
