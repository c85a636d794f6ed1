package jobhunter

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms sanitized HTML into Markdown with ATX headings,
	// fenced code blocks, GFM tables and strikethrough. The same input
	// always yields the same output.
	Convert(html string) (string, error)
}
