package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(id, title, company string) *jobhunter.Job {
	return &jobhunter.Job{
		ID:        id,
		SavedDate: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		SourceURL: "https://jobs.example.com/" + id,
		Status:    jobhunter.StatusApplied,
		AIData: jobhunter.JobAnalysis{
			JobTitle:    title,
			CompanyName: company,
		},
	}
}

func TestJobPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		job  *jobhunter.Job
		want string
	}{
		{
			name: "company directory and title file",
			job:  newJob("1a2b3c", "Senior Go Engineer", "Acme Corp"),
			want: filepath.Join("acme-corp", "senior-go-engineer-1a2b3c.md"),
		},
		{
			name: "truncates long IDs",
			job:  newJob("0d6e4079-e2c1-4a9c-9f47-4b3c3a8d6c3f", "SRE", "Globex"),
			want: filepath.Join("globex", "sre-0d6e4079.md"),
		},
		{
			name: "missing names",
			job:  newJob("job-1", "", "  "),
			want: filepath.Join("unknown", "unknown-job-1.md"),
		},
		{
			name: "strips path separators",
			job:  newJob("job-2", "../../etc/passwd", "a/b"),
			want: filepath.Join("a-b", "etc-passwd-job-2.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.JobPath(tt.job))
		})
	}
}

func TestJobStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewJobStore(base, "jobs")

	err := store.Save(context.Background(), newJob("job-1", "SRE", "Globex"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "jobs.tmp", "globex", "sre-job-1.md"))
	require.NoError(t, err, "file should exist in temp directory")

	_, err = os.Stat(filepath.Join(base, "jobs"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestJobStore_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	stale := filepath.Join(base, "jobs", "old.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	store := fs.NewJobStore(base, "jobs")
	require.NoError(t, store.Save(context.Background(), newJob("job-1", "SRE", "Globex")))

	require.NoError(t, store.Commit())

	_, err := os.Stat(filepath.Join(base, "jobs", "globex", "sre-job-1.md"))
	require.NoError(t, err)
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale files should be removed")
	_, err = os.Stat(filepath.Join(base, "jobs.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestJobStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewJobStore(base, "jobs")
	require.NoError(t, store.Save(context.Background(), newJob("job-1", "SRE", "Globex")))

	require.NoError(t, store.Abort())

	_, err := os.Stat(filepath.Join(base, "jobs.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestJobStore_RejectsMissingID(t *testing.T) {
	t.Parallel()

	store := fs.NewJobStore(t.TempDir(), "jobs")

	err := store.Save(context.Background(), newJob("", "SRE", "Globex"))

	require.Error(t, err)
	assert.Equal(t, jobhunter.EINVALID, jobhunter.ErrorCode(err))
}

func TestFormatJob(t *testing.T) {
	t.Parallel()

	job := newJob("job-1", "SRE", "Globex")
	job.Metadata.RawMarkdown = "# SRE\n\nKeep Globex up."

	got := fs.FormatJob(job)

	assert.Contains(t, got, "---\nid: job-1\nsource: https://jobs.example.com/job-1\nstatus: Applied\nsaved: 2025-06-02\n---\n\n")
	assert.Contains(t, got, "Job Title: SRE")
	assert.Contains(t, got, "## Original Posting\n\n# SRE\n\nKeep Globex up.\n")
}
