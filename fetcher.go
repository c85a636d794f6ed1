package jobhunter

import "context"

// Fetcher retrieves the HTML of a job posting page.
// Implementations may use browser automation to handle JavaScript-rendered
// job boards.
type Fetcher interface {
	// Fetch loads the URL and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}

// DomainLimiter spaces out requests to the same job board.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
