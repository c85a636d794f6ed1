package scan_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/mock"
	"github.com/fwojciec/jobhunter/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postingText = strings.Repeat("Build reliable services in Go. ", 5)

// newScanner returns a Scanner whose fetcher serves pages from the map and
// whose processor succeeds for every request.
func newScanner(pages map[string]string) *scan.Scanner {
	return &scan.Scanner{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := pages[url]
				if !ok {
					return "", errors.New("HTTP 404")
				}
				return html, nil
			},
		},
		Extractor: passthrough("Posting"),
		Processor: &mock.JobProcessor{
			ProcessJobFn: func(_ context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
				return &jobhunter.ScanResult{Success: true, URL: req.URL, JobID: "id-" + req.URL}
			},
		},
		RetryDelays: []time.Duration{},
		Now:         func() time.Time { return fixedNow },
	}
}

func TestScanner_ScanURL(t *testing.T) {
	t.Parallel()

	t.Run("passes extracted text to the processor", func(t *testing.T) {
		t.Parallel()

		s := newScanner(map[string]string{"https://example.com/jobs/1": "  " + postingText})
		var got jobhunter.ScanRequest
		s.Processor = &mock.JobProcessor{
			ProcessJobFn: func(_ context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
				got = req
				return &jobhunter.ScanResult{Success: true}
			},
		}

		result := s.ScanURL(context.Background(), "https://example.com/jobs/1")

		assert.True(t, result.Success)
		assert.Equal(t, jobhunter.ScanRequest{URL: "https://example.com/jobs/1", Content: strings.TrimSpace(postingText)}, got)
	})

	t.Run("reports fetch failure without transport detail", func(t *testing.T) {
		t.Parallel()

		var logs []string
		s := newScanner(nil)
		s.Logf = func(format string, args ...any) { logs = append(logs, format) }

		result := s.ScanURL(context.Background(), "https://example.com/missing")

		assert.False(t, result.Success)
		assert.Equal(t, "Failed to load page https://example.com/missing", result.Error)
		assert.Equal(t, fixedNow, result.Timestamp)
		assert.NotEmpty(t, logs)
	})

	t.Run("rejects non-http URL without fetching", func(t *testing.T) {
		t.Parallel()

		s := newScanner(nil)
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}

		result := s.ScanURL(context.Background(), "file:///etc/passwd")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "invalid URL")
	})

	t.Run("reports short page without processing", func(t *testing.T) {
		t.Parallel()

		s := newScanner(map[string]string{"https://example.com/short": "Apply now"})
		s.Processor = &mock.JobProcessor{
			ProcessJobFn: func(context.Context, jobhunter.ScanRequest) *jobhunter.ScanResult {
				t.Fatal("processor should not be called")
				return nil
			},
		}

		result := s.ScanURL(context.Background(), "https://example.com/short")

		assert.False(t, result.Success)
		assert.Equal(t, "Insufficient content found on this page", result.Error)
	})

	t.Run("waits on the rate limiter per host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		s := newScanner(map[string]string{"https://boards.example.com/jobs/1": postingText})
		s.RateLimiter = limiterFunc(func(_ context.Context, domain string) error {
			domains = append(domains, domain)
			return nil
		})

		s.ScanURL(context.Background(), "https://boards.example.com/jobs/1")

		assert.Equal(t, []string{"boards.example.com"}, domains)
	})
}

type limiterFunc func(ctx context.Context, domain string) error

func (f limiterFunc) Wait(ctx context.Context, domain string) error { return f(ctx, domain) }

func TestScanner_ScanURLs(t *testing.T) {
	t.Parallel()

	t.Run("scans each unique URL and keeps input order", func(t *testing.T) {
		t.Parallel()

		s := newScanner(map[string]string{
			"https://example.com/jobs/1": postingText,
			"https://example.com/jobs/2": postingText,
		})
		s.Concurrency = 2

		var mu sync.Mutex
		var events []scan.ProgressType
		result, err := s.ScanURLs(context.Background(), []string{
			"https://example.com/jobs/1",
			"https://example.com/jobs/2",
			"https://example.com/jobs/1#apply",
			"https://example.com/jobs/3",
		}, func(e scan.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Results, 3)
		assert.Equal(t, "id-https://example.com/jobs/1", result.Results[0].JobID)
		assert.Equal(t, "id-https://example.com/jobs/2", result.Results[1].JobID)
		assert.False(t, result.Results[2].Success)

		assert.Equal(t, scan.ProgressSkipped, events[0])
		assert.Equal(t, scan.ProgressStarted, events[1])
		assert.Equal(t, scan.ProgressFinished, events[len(events)-1])
		assert.Len(t, events, 6)
	})

	t.Run("scans every distinct URL in a large batch", func(t *testing.T) {
		t.Parallel()

		const n = 20000
		pages := make(map[string]string, n)
		urls := make([]string, 0, n)
		for i := range n {
			u := fmt.Sprintf("https://boards.example.com/jobs/%d", i)
			pages[u] = postingText
			urls = append(urls, u)
		}
		s := newScanner(pages)
		s.Concurrency = 16

		result, err := s.ScanURLs(context.Background(), urls, nil)

		require.NoError(t, err)
		assert.Zero(t, result.Skipped)
		assert.Equal(t, n, result.Saved)
	})

	t.Run("handles empty batch", func(t *testing.T) {
		t.Parallel()

		result, err := newScanner(nil).ScanURLs(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, result.Results)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newScanner(nil).ScanURLs(ctx, []string{"https://example.com/jobs/1"}, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
