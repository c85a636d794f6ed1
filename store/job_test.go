package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/jobhunter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveJob(t *testing.T) {
	t.Parallel()

	t.Run("assigns identity and defaults", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		job := newJob("https://example.com/jobs/1", "Backend Engineer")
		job.ApplyLink = ""

		require.NoError(t, s.SaveJob(ctx, job))

		assert.Equal(t, "job-1", job.ID)
		assert.False(t, job.SavedDate.IsZero())
		assert.Equal(t, job.SavedDate, job.UpdatedDate)

		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, jobhunter.StatusSaved, got.Status)
		assert.Equal(t, "https://example.com/jobs/1", got.ApplyLink)
		assert.False(t, got.Metadata.ProcessedAt.IsZero())
		assert.Len(t, got.Metadata.ContentHash, 16)
		assert.True(t, got.SavedDate.Equal(job.SavedDate))
	})

	t.Run("inserts most recent first", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "First")))
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/2", "Second")))

		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Second", "First"}, titles(jobs))
	})

	t.Run("rejects duplicate and leaves collection unchanged", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Engineer")))

		err := s.SaveJob(ctx, newJob("https://example.com/1", "Engineer"))

		assert.Equal(t, jobhunter.ECONFLICT, jobhunter.ErrorCode(err))
		assert.Equal(t, "This job has already been saved", jobhunter.ErrorMessage(err))
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("treats titles differing in case as distinct", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Engineer")))

		err := s.SaveJob(ctx, newJob("https://example.com/1", "engineer"))

		require.NoError(t, err)
	})

	t.Run("evicts the earliest insert beyond the cap", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		limit := 3
		_, err := s.UpdateSettings(ctx, jobhunter.SettingsUpdate{MaxJobs: &limit})
		require.NoError(t, err)

		for _, title := range []string{"A", "B", "C", "D"} {
			require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/"+title, title)))
		}

		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"D", "C", "B"}, titles(jobs))
	})

	t.Run("returns error for missing source URL", func(t *testing.T) {
		t.Parallel()

		s := MustOpenStore(t)

		err := s.SaveJob(context.Background(), newJob("", "Engineer"))

		assert.Equal(t, jobhunter.EINVALID, jobhunter.ErrorCode(err))
	})

	t.Run("admits one of two concurrent identical saves", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = s.SaveJob(ctx, newJob("https://example.com/1", "Engineer"))
			}(i)
		}
		wg.Wait()

		var saved, conflicts int
		for _, err := range errs {
			switch jobhunter.ErrorCode(err) {
			case "":
				saved++
			case jobhunter.ECONFLICT:
				conflicts++
			}
		}
		assert.Equal(t, 1, saved)
		assert.Equal(t, 7, conflicts)
	})
}

func TestStore_FindJobByID(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := MustOpenStore(t)

		_, err := s.FindJobByID(context.Background(), "missing")

		assert.Equal(t, jobhunter.ENOTFOUND, jobhunter.ErrorCode(err))
	})
}

func TestStore_FindJobs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := func(t *testing.T) jobhunter.JobService {
		t.Helper()
		s := MustOpenStore(t)
		for i, title := range []string{"A", "B", "C", "D"} {
			job := newJob("https://example.com/"+title, title)
			if i%2 == 0 {
				job.AIData.CompanyName = "Globex"
			}
			require.NoError(t, s.SaveJob(ctx, job))
		}
		return s
	}

	t.Run("filters by company case-insensitively", func(t *testing.T) {
		t.Parallel()

		s := setup(t)
		company := "globex"

		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{Company: &company})

		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A"}, titles(jobs))
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		s := setup(t)
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		_, err = s.UpdateJobStatus(ctx, jobs[1].ID, jobhunter.StatusApplied)
		require.NoError(t, err)
		status := jobhunter.StatusApplied

		jobs, err = s.FindJobs(ctx, jobhunter.JobFilter{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, titles(jobs))
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		t.Parallel()

		s := setup(t)

		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{Offset: 1, Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, []string{"C", "B"}, titles(jobs))
	})

	t.Run("returns empty for offset past end", func(t *testing.T) {
		t.Parallel()

		s := setup(t)

		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{Offset: 10})

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestStore_DeleteJob(t *testing.T) {
	t.Parallel()

	t.Run("removes existing job", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		job := newJob("https://example.com/1", "Engineer")
		require.NoError(t, s.SaveJob(ctx, job))

		deleted, err := s.DeleteJob(ctx, job.ID)

		require.NoError(t, err)
		assert.True(t, deleted)
		_, err = s.FindJobByID(ctx, job.ID)
		assert.Equal(t, jobhunter.ENOTFOUND, jobhunter.ErrorCode(err))
	})

	t.Run("reports false for unknown ID", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Engineer")))

		deleted, err := s.DeleteJob(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestStore_UpdateJobStatus(t *testing.T) {
	t.Parallel()

	t.Run("changes status and advances updated date", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		job := newJob("https://example.com/1", "Engineer")
		require.NoError(t, s.SaveJob(ctx, job))

		updated, err := s.UpdateJobStatus(ctx, job.ID, jobhunter.StatusApplied)

		require.NoError(t, err)
		assert.True(t, updated)
		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, jobhunter.StatusApplied, got.Status)
		assert.True(t, got.UpdatedDate.After(job.UpdatedDate))
		assert.True(t, got.SavedDate.Equal(job.SavedDate))
	})

	t.Run("reports false for unknown ID and leaves store untouched", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		job := newJob("https://example.com/1", "Engineer")
		require.NoError(t, s.SaveJob(ctx, job))

		updated, err := s.UpdateJobStatus(ctx, "missing", jobhunter.StatusApplied)

		require.NoError(t, err)
		assert.False(t, updated)
		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, jobhunter.StatusSaved, got.Status)
		assert.True(t, got.UpdatedDate.Equal(job.UpdatedDate))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		s := MustOpenStore(t)

		_, err := s.UpdateJobStatus(context.Background(), "job-1", "Ghosted")

		assert.Equal(t, jobhunter.EINVALID, jobhunter.ErrorCode(err))
	})
}

func TestStore_DeduplicateJobs(t *testing.T) {
	t.Parallel()

	t.Run("keeps first-seen instances in order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		a := newJob("https://example.com/a", "A")
		b := newJob("https://example.com/b", "B")
		c := newJob("https://example.com/c", "C")
		a.ID, b.ID, c.ID = "a", "b", "c"
		a2, c2 := *a, *c
		a2.Status, c2.Status = jobhunter.StatusApplied, jobhunter.StatusApplied
		_, err := s.ImportJobs(ctx, []*jobhunter.Job{a, b, &a2, c, &c2})
		require.NoError(t, err)

		result, err := s.DeduplicateJobs(ctx)

		require.NoError(t, err)
		assert.Equal(t, &jobhunter.DedupResult{Removed: 2, Remaining: 3}, result)
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, titles(jobs))
		for _, job := range jobs {
			assert.Equal(t, jobhunter.StatusSaved, job.Status)
		}
	})

	t.Run("reports zero removed for unique collection", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Engineer")))

		result, err := s.DeduplicateJobs(ctx)

		require.NoError(t, err)
		assert.Equal(t, &jobhunter.DedupResult{Removed: 0, Remaining: 1}, result)
	})
}

func TestStore_ImportJobs(t *testing.T) {
	t.Parallel()

	t.Run("appends after existing jobs and assigns missing IDs", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Existing")))
		kept := newJob("https://example.com/2", "Kept ID")
		kept.ID = "exported-1"

		n, err := s.ImportJobs(ctx, []*jobhunter.Job{kept, newJob("https://example.com/3", "New ID")})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Existing", "Kept ID", "New ID"}, titles(jobs))
		assert.Equal(t, "exported-1", jobs[1].ID)
		assert.NotEmpty(t, jobs[2].ID)
		assert.False(t, jobs[2].SavedDate.IsZero())
	})

	t.Run("drops imported jobs beyond the cap", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)
		limit := 2
		_, err := s.UpdateSettings(ctx, jobhunter.SettingsUpdate{MaxJobs: &limit})
		require.NoError(t, err)
		require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "Existing")))

		n, err := s.ImportJobs(ctx, []*jobhunter.Job{
			newJob("https://example.com/2", "B"),
			newJob("https://example.com/3", "C"),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Existing", "B"}, titles(jobs))
	})

	t.Run("rejects invalid job without writing", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := MustOpenStore(t)

		_, err := s.ImportJobs(ctx, []*jobhunter.Job{newJob("https://example.com/1", "A"), newJob("", "B")})

		assert.Equal(t, jobhunter.EINVALID, jobhunter.ErrorCode(err))
		assert.Contains(t, jobhunter.ErrorMessage(err), "job 2")
		jobs, err := s.FindJobs(ctx, jobhunter.JobFilter{})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestStore_JobStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := MustOpenStore(t)
	require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/1", "A")))
	require.NoError(t, s.SaveJob(ctx, newJob("https://example.com/2", "B")))

	stats, err := s.JobStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Companies)
	assert.Equal(t, 2, stats.Remote)
	assert.Equal(t, 2, stats.ThisWeek)
	assert.Equal(t, 2, stats.ByStatus["Saved"])
}
