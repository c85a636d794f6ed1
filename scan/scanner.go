// Package scan runs the page-scan pipeline: it fetches job posting pages,
// reduces them to text, analyzes the text and saves the resulting jobs.
package scan

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages scanned at once when
// Scanner.Concurrency is not set.
const DefaultConcurrency = 4

var _ jobhunter.PageScanner = (*Scanner)(nil)

// batchFalsePositiveRate sizes the per-batch URL filter.
const batchFalsePositiveRate = 0.001

// Scanner scans job posting URLs end to end.
type Scanner struct {
	Fetcher     jobhunter.Fetcher
	Extractor   jobhunter.ContentExtractor
	Processor   jobhunter.JobProcessor
	RateLimiter jobhunter.DomainLimiter
	Concurrency int

	// RetryDelays overrides DefaultRetryDelays for fetches. An empty non-nil
	// slice disables retries.
	RetryDelays []time.Duration

	// Logf, if set, receives retry and failure details that are kept out of
	// user-facing messages.
	Logf LogFunc

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a batch scan.
type Result struct {
	Saved   int
	Failed  int
	Skipped int

	// Results holds one entry per scanned URL in input order. Skipped URLs
	// have no entry.
	Results []*jobhunter.ScanResult
}

// ProgressEvent reports progress during a batch scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Result    *jobhunter.ScanResult
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// ScanURL fetches, extracts and processes a single page.
func (s *Scanner) ScanURL(ctx context.Context, rawURL string) *jobhunter.ScanResult {
	html, err := s.fetch(ctx, rawURL)
	if err != nil {
		return Failed(rawURL, err, s.now())
	}

	text, err := s.Extractor.ExtractContent(html)
	if err != nil {
		s.logf("extract %s: %v", rawURL, err)
		return Failed(rawURL, err, s.now())
	}

	return s.Processor.ProcessJob(ctx, jobhunter.ScanRequest{
		URL:     rawURL,
		Content: text.Content,
	})
}

// ScanURLs scans every URL with bounded concurrency. A URL repeated within
// the batch is scanned once. Individual failures are reported in the result
// rather than returned; the error is non-nil only if ctx is canceled.
func (s *Scanner) ScanURLs(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	var result Result

	seen := bloom.NewFilter(uint(max(len(urls), 1)), batchFalsePositiveRate)
	var queue []string
	for _, u := range urls {
		if seen.Seen(u) {
			result.Skipped++
			emit(progress, ProgressEvent{Type: ProgressSkipped, URL: u})
			continue
		}
		queue = append(queue, u)
	}

	total := len(queue)
	emit(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		i      int
		result *jobhunter.ScanResult
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for i, u := range queue {
			g.Go(func() error {
				resultCh <- indexed{i: i, result: s.ScanURL(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result.Results = make([]*jobhunter.ScanResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		result.Results[r.i] = r.result

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       queue[r.i],
			Result:    r.result,
		}
		if r.result.Success {
			result.Saved++
		} else {
			result.Failed++
			event.Type = ProgressFailed
		}
		emit(progress, event)
	}

	emit(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// fetch loads rawURL with per-domain rate limiting and retries. Errors are
// reported as ETRANSPORT without the underlying detail, which goes to Logf.
func (s *Scanner) fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", jobhunter.Errorf(jobhunter.EINVALID, "invalid URL %q", rawURL)
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetch := func(ctx context.Context, target string) (string, error) {
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return s.Fetcher.Fetch(ctx, target)
	}

	html, err := FetchWithRetry(ctx, rawURL, fetch, s.Logf, delays)
	if err != nil {
		s.logf("fetch %s: %v", rawURL, err)
		if ctx.Err() != nil {
			return "", jobhunter.Errorf(jobhunter.EINTERNAL, "Scan canceled")
		}
		return "", jobhunter.Errorf(jobhunter.ETRANSPORT, "Failed to load page %s", rawURL)
	}
	return html, nil
}

func (s *Scanner) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func (s *Scanner) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
