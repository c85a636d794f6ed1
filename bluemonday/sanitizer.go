// Package bluemonday restricts job posting HTML to an allowlist of
// structural tags using microcosm-cc/bluemonday.
package bluemonday

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobhunter"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ jobhunter.Sanitizer = (*Sanitizer)(nil)

// AllowedElements are the tags that survive sanitization.
var AllowedElements = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "div", "section", "article", "header", "footer", "aside", "main",
	"ul", "ol", "li", "dl", "dt", "dd",
	"strong", "b", "em", "i", "u", "s", "mark", "small", "sub", "sup",
	"br", "hr", "code", "pre", "blockquote",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
}

// AllowedAttrs are the attributes that survive on allowed elements.
var AllowedAttrs = []string{"href", "colspan", "rowspan", "class", "title"}

// skipContent are elements dropped together with everything inside them.
var skipContent = []string{
	"script", "style", "link", "meta", "noscript", "iframe", "object",
	"embed", "applet", "form", "select", "textarea", "button", "video",
	"audio", "canvas", "svg", "dialog", "marquee", "map", "template",
}

// Sanitizer applies the allowlist policy and then flattens links and drops
// images. It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the job posting allowlist.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedElements...)
	p.AllowAttrs(AllowedAttrs...).Globally()
	p.SkipElementsContent(skipContent...)
	return p
}

// Sanitize returns html restricted to AllowedElements and AllowedAttrs.
// Anchors are replaced by their text and images are removed.
func (s *Sanitizer) Sanitize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	clean := s.policy.Sanitize(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return "", nil
	}
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		a.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: a.Text()})
	})
	doc.Find("img").Remove()

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(out), nil
}
