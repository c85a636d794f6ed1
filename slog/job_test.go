package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/mock"
	jhslog "github.com/fwojciec/jobhunter/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingJobService(t *testing.T) {
	t.Parallel()

	t.Run("logs save with assigned id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			SaveJobFn: func(_ context.Context, job *jobhunter.Job) error {
				job.ID = "job-1"
				return nil
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		job := &jobhunter.Job{SourceURL: "https://example.com/jobs/1", AIData: jobhunter.JobAnalysis{JobTitle: "Engineer"}}
		require.NoError(t, s.SaveJob(context.Background(), job))

		output := buf.String()
		assert.Contains(t, output, "save job")
		assert.Contains(t, output, "id=job-1")
		assert.Contains(t, output, "title=Engineer")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs save conflict", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			SaveJobFn: func(context.Context, *jobhunter.Job) error {
				return jobhunter.Errorf(jobhunter.ECONFLICT, "This job has already been saved")
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		err := s.SaveJob(context.Background(), &jobhunter.Job{})

		assert.Equal(t, jobhunter.ECONFLICT, jobhunter.ErrorCode(err))
		assert.Contains(t, buf.String(), "code=conflict")
	})

	t.Run("logs delete outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			DeleteJobFn: func(context.Context, string) (bool, error) { return false, nil },
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		deleted, err := s.DeleteJob(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Contains(t, buf.String(), "id=missing deleted=false")
	})

	t.Run("logs status update", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			UpdateJobStatusFn: func(context.Context, string, jobhunter.JobStatus) (bool, error) { return true, nil },
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := s.UpdateJobStatus(context.Background(), "job-1", jobhunter.StatusInterview)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "status=Interview updated=true")
	})

	t.Run("logs dedupe counts even on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			DeduplicateJobsFn: func(context.Context) (*jobhunter.DedupResult, error) {
				return nil, errors.New("disk full")
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := s.DeduplicateJobs(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "removed=0 remaining=0")
		assert.Contains(t, buf.String(), `err="disk full"`)
	})

	t.Run("does not log reads", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := jhslog.NewLoggingJobService(&mock.JobService{
			FindJobsFn: func(context.Context, jobhunter.JobFilter) ([]*jobhunter.Job, error) { return nil, nil },
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := s.FindJobs(context.Background(), jobhunter.JobFilter{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
