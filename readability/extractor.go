// Package readability provides a reader-mode Extractor backed by
// go-shiori/go-readability. It suits job boards whose posting sits in a
// single article column surrounded by unrelated listings.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/jobhunter"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobhunter.Extractor at compile time.
var _ jobhunter.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the posting body.
type Extractor struct {
	// PageURL resolves relative references when set.
	PageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article.
func (e *Extractor) Extract(rawHTML string) (*jobhunter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "failed to read page: %v", err)
	}

	return &jobhunter.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
