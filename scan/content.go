package scan

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor turns a page snapshot into prompt-ready text by pruning,
// sanitizing and converting it to markdown.
type ContentExtractor struct {
	Extractor jobhunter.Extractor
	Sanitizer jobhunter.Sanitizer
	Converter jobhunter.Converter
}

// ExtractContent returns ECONTENT when fewer than
// jobhunter.MinContentLength characters survive conversion.
func (e *ContentExtractor) ExtractContent(html string) (*jobhunter.ExtractedText, error) {
	extracted, err := e.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	sanitized, err := e.Sanitizer.Sanitize(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sanitized) == "" {
		return nil, insufficientContent()
	}

	markdown, err := e.Converter.Convert(sanitized)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(markdown)
	if utf8.RuneCountInString(content) < jobhunter.MinContentLength {
		return nil, insufficientContent()
	}

	title := strings.TrimSpace(extracted.Title)
	if title == "" {
		title = jobhunter.DefaultTitle
	}

	return &jobhunter.ExtractedText{
		Content:   content,
		Title:     title,
		WordCount: jobhunter.WordCount(content),
	}, nil
}

func insufficientContent() error {
	return jobhunter.Errorf(jobhunter.ECONTENT, "Insufficient content found on this page")
}
