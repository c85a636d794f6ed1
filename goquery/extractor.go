// Package goquery prunes structural noise from job posting pages using
// PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobhunter"
)

// Compile-time interface verification.
var _ jobhunter.Extractor = (*Extractor)(nil)

// NoiseSelectors match page furniture that never belongs to a job
// description: scripts, site chrome, ads, social widgets and form controls.
var NoiseSelectors = []string{
	"script", "style", "nav", "header", "footer", "aside",
	".ad", ".ads", ".advertisement", ".sidebar", ".navigation", ".menu",
	".breadcrumb", ".pagination", ".social-share", ".comments", ".related",
	".recommended", ".newsletter",
	"form", "input", "select", "textarea", "button", "label",
}

// Extractor removes NoiseSelectors from a page body.
type Extractor struct {
	// Selectors overrides NoiseSelectors when non-empty.
	Selectors []string
}

// NewExtractor creates an Extractor using NoiseSelectors.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns its title and pruned body HTML.
func (e *Extractor) Extract(html string) (*jobhunter.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "html required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "failed to parse HTML: %v", err)
	}

	body := PruneSelection(doc.Find("body").First(), e.selectors())
	content, err := body.Html()
	if err != nil {
		return nil, jobhunter.Errorf(jobhunter.EINTERNAL, "failed to render HTML: %v", err)
	}

	return &jobhunter.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("head title").First().Text()),
		ContentHTML: content,
	}, nil
}

func (e *Extractor) selectors() []string {
	if len(e.Selectors) > 0 {
		return e.Selectors
	}
	return NoiseSelectors
}

// PruneSelection returns a detached deep copy of sel with every node
// matching selectors removed. sel and its document are left untouched.
func PruneSelection(sel *goquery.Selection, selectors []string) *goquery.Selection {
	clone := sel.Clone()
	if len(selectors) > 0 {
		clone.Find(strings.Join(selectors, ", ")).Remove()
	}
	return clone
}
