package main_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jobhunter"
	main "github.com/fwojciec/jobhunter/cmd/jobhunter"
	"github.com/fwojciec/jobhunter/mock"
	"github.com/fwojciec/jobhunter/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScanner returns a Scanner that fetches every URL except those
// containing "broken" and saves a job titled after the URL path.
func newScanner() *scan.Scanner {
	return &scan.Scanner{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if strings.Contains(url, "broken") {
					return "", errors.New("connection refused")
				}
				return "<html>" + url + "</html>", nil
			},
		},
		Extractor: &mock.ContentExtractor{
			ExtractContentFn: func(html string) (*jobhunter.ExtractedText, error) {
				return &jobhunter.ExtractedText{Content: html, Title: "Posting"}, nil
			},
		},
		Processor: &mock.JobProcessor{
			ProcessJobFn: func(_ context.Context, req jobhunter.ScanRequest) *jobhunter.ScanResult {
				return &jobhunter.ScanResult{
					Success:     true,
					URL:         req.URL,
					JobID:       "id-" + req.URL[strings.LastIndex(req.URL, "/")+1:],
					JobTitle:    "Engineer",
					CompanyName: "Acme",
				}
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports saved, failed and skipped pages", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Scanner = newScanner()

		err := (&main.ScanCmd{URLs: []string{
			"https://jobs.example.com/1",
			"https://jobs.example.com/broken",
			"https://jobs.example.com/1",
		}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Scanning 2 pages")
		assert.Contains(t, stdout.String(), "saved Engineer at Acme (id-1)")
		assert.Contains(t, stdout.String(), "Saved 1, failed 1, skipped 1")
		assert.Contains(t, stderr.String(), "Failed to load page https://jobs.example.com/broken")
		assert.NotContains(t, stderr.String(), "connection refused")
	})

	t.Run("applies concurrency", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Scanner = newScanner()

		err := (&main.ScanCmd{URLs: []string{"https://jobs.example.com/1"}, Concurrency: 7}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 7, deps.Scanner.Concurrency)
	})

	t.Run("fails when nothing was saved", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Scanner = newScanner()

		err := (&main.ScanCmd{URLs: []string{"ftp://jobs.example.com/1"}}).Run(deps)

		require.Error(t, err)
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints markdown, words and tokens", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<h1>Go Engineer</h1>", nil
			},
		}
		deps.Extractor = &mock.ContentExtractor{
			ExtractContentFn: func(string) (*jobhunter.ExtractedText, error) {
				return &jobhunter.ExtractedText{Title: "Go Engineer", Content: "Build services in Go.", WordCount: 4}, nil
			},
		}
		deps.TokenCounter = &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 6, nil
			},
		}

		err := (&main.ExtractCmd{URL: "https://jobs.example.com/1"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "# Go Engineer")
		assert.Contains(t, output, "Build services in Go.")
		assert.Contains(t, output, "Words: 4")
		assert.Contains(t, output, "Tokens: ~6")
	})

	t.Run("reports thin pages", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<p>Apply</p>", nil
			},
		}
		deps.Extractor = &mock.ContentExtractor{
			ExtractContentFn: func(string) (*jobhunter.ExtractedText, error) {
				return nil, jobhunter.Errorf(jobhunter.ECONTENT, "Insufficient content found on this page")
			},
		}

		err := (&main.ExtractCmd{URL: "https://jobs.example.com/1"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Insufficient content")
	})
}
