package jobhunter

import "strings"

// MinContentLength is the number of characters extracted text must reach
// before it is worth sending to the model.
const MinContentLength = 100

// DefaultTitle is used when a page has no title.
const DefaultTitle = "Job Posting"

// ExtractedText is the prompt-ready text of a page.
type ExtractedText struct {
	Content   string `json:"content"`
	Title     string `json:"title"`
	WordCount int    `json:"wordCount"`
}

// ContentExtractor turns a raw page snapshot into ExtractedText.
type ContentExtractor interface {
	// ExtractContent prunes, sanitizes and converts html.
	// Returns ECONTENT if fewer than MinContentLength characters remain.
	ExtractContent(html string) (*ExtractedText, error)
}

// WordCount returns the number of whitespace-separated tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
