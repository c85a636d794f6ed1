package jobhunter

// ExtractResult holds the pruned content of a page.
type ExtractResult struct {
	// Title is the page title, empty when the page has none.
	Title string

	// ContentHTML is the body with structural noise (scripts, navigation,
	// ads, comments, forms) removed.
	ContentHTML string
}

// Extractor removes structural noise from a page snapshot.
type Extractor interface {
	// Extract parses raw HTML and returns its pruned body. The input is
	// never modified; pruning works on a detached copy.
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer restricts HTML to an allowlist of structural tags.
type Sanitizer interface {
	// Sanitize returns html with every tag and attribute outside the
	// allowlist removed, anchors replaced by their text and images dropped.
	// Malformed input yields less output, never an error for content.
	Sanitize(html string) (string, error)
}
