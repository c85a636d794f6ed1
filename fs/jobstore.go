// Package fs exports saved jobs as markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/jobhunter"
)

// JobStore writes jobs into a directory with atomic update semantics.
// Files are saved to a temporary directory, then moved on Commit.
type JobStore struct {
	baseDir string
	name    string
}

// NewJobStore creates a new JobStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewJobStore(baseDir, name string) *JobStore {
	return &JobStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *JobStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *JobStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes job to the temporary directory.
func (s *JobStore) Save(ctx context.Context, job *jobhunter.Job) error {
	if job.ID == "" {
		return jobhunter.Errorf(jobhunter.EINVALID, "job ID required")
	}

	fullPath := filepath.Join(s.tempDir(), JobPath(job))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatJob(job)), 0644)
}

// Commit replaces the output directory with everything saved so far.
func (s *JobStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *JobStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// JobPath returns the relative file path of job: one directory per company
// and one file per job.
// Example: Acme Corp / Senior Go Engineer / 1a2b3c → acme-corp/senior-go-engineer-1a2b3c.md
func JobPath(job *jobhunter.Job) string {
	id := slug(job.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	return filepath.Join(slug(job.AIData.CompanyName), slug(job.AIData.JobTitle)+"-"+id+".md")
}

// slug lowercases s and joins its letter and digit runs with dashes.
func slug(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "unknown"
	}
	return strings.Join(words, "-")
}

// FormatJob formats a job with YAML frontmatter followed by the plain-text
// export and, when present, the page text the analysis was made from.
func FormatJob(job *jobhunter.Job) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: ")
	b.WriteString(job.ID)
	b.WriteString("\nsource: ")
	b.WriteString(job.SourceURL)
	b.WriteString("\nstatus: ")
	b.WriteString(string(job.Status))
	b.WriteString("\nsaved: ")
	b.WriteString(job.SavedDate.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(jobhunter.FormatJob(job))
	if md := job.Metadata.RawMarkdown; md != "" {
		b.WriteString("\n## Original Posting\n\n")
		b.WriteString(md)
		b.WriteString("\n")
	}
	return b.String()
}
