package mock

import "github.com/fwojciec/jobhunter"

var _ jobhunter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobhunter.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jobhunter.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*jobhunter.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ jobhunter.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of jobhunter.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}

var _ jobhunter.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of jobhunter.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (*jobhunter.ExtractedText, error)
}

func (e *ContentExtractor) ExtractContent(html string) (*jobhunter.ExtractedText, error) {
	return e.ExtractContentFn(html)
}
