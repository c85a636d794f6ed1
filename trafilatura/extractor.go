// Package trafilatura provides a reader-mode Extractor backed by
// markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/jobhunter"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobhunter.Extractor at compile time.
var _ jobhunter.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the posting body. Comment
// sections are excluded; tables are kept since postings often list pay
// bands in them.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jobhunter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "failed to read page: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, jobhunter.Errorf(jobhunter.EINTERNAL, "failed to render content: %v", err)
		}
	}

	return &jobhunter.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
