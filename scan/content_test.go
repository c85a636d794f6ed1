package scan_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/mock"
	"github.com/fwojciec/jobhunter/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthrough returns a ContentExtractor whose stages echo their input,
// with the extractor reporting title.
func passthrough(title string) *scan.ContentExtractor {
	return &scan.ContentExtractor{
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*jobhunter.ExtractResult, error) {
				return &jobhunter.ExtractResult{Title: title, ContentHTML: html}, nil
			},
		},
		Sanitizer: &mock.Sanitizer{
			SanitizeFn: func(html string) (string, error) { return html, nil },
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		},
	}
}

func TestContentExtractor_ExtractContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 30)

	t.Run("returns content title and word count", func(t *testing.T) {
		t.Parallel()

		got, err := passthrough("Senior Engineer | Acme").ExtractContent("  " + long + "  ")

		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(long), got.Content)
		assert.Equal(t, "Senior Engineer | Acme", got.Title)
		assert.Equal(t, 30, got.WordCount)
	})

	t.Run("falls back to default title", func(t *testing.T) {
		t.Parallel()

		got, err := passthrough("  ").ExtractContent(long)

		require.NoError(t, err)
		assert.Equal(t, jobhunter.DefaultTitle, got.Title)
	})

	t.Run("rejects text shorter than the minimum", func(t *testing.T) {
		t.Parallel()

		_, err := passthrough("").ExtractContent(strings.Repeat("x", jobhunter.MinContentLength-1) + "   ")

		assert.Equal(t, jobhunter.ECONTENT, jobhunter.ErrorCode(err))
		assert.Equal(t, "Insufficient content found on this page", jobhunter.ErrorMessage(err))
	})

	t.Run("accepts text at exactly the minimum", func(t *testing.T) {
		t.Parallel()

		_, err := passthrough("").ExtractContent(strings.Repeat("é", jobhunter.MinContentLength))

		require.NoError(t, err)
	})

	t.Run("rejects empty sanitized output without converting", func(t *testing.T) {
		t.Parallel()

		e := passthrough("")
		e.Sanitizer = &mock.Sanitizer{
			SanitizeFn: func(string) (string, error) { return "", nil },
		}
		e.Converter = &mock.Converter{
			ConvertFn: func(string) (string, error) {
				t.Fatal("converter should not be called")
				return "", nil
			},
		}

		_, err := e.ExtractContent(long)

		assert.Equal(t, jobhunter.ECONTENT, jobhunter.ErrorCode(err))
	})

	t.Run("propagates extractor error", func(t *testing.T) {
		t.Parallel()

		e := passthrough("")
		e.Extractor = &mock.Extractor{
			ExtractFn: func(string) (*jobhunter.ExtractResult, error) {
				return nil, jobhunter.Errorf(jobhunter.EINVALID, "empty HTML")
			},
		}

		_, err := e.ExtractContent("")

		assert.Equal(t, jobhunter.EINVALID, jobhunter.ErrorCode(err))
	})

	t.Run("propagates converter error", func(t *testing.T) {
		t.Parallel()

		e := passthrough("")
		e.Converter = &mock.Converter{
			ConvertFn: func(string) (string, error) { return "", errors.New("boom") },
		}

		_, err := e.ExtractContent(long)

		require.Error(t, err)
	})
}
