package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobhunter"
)

// Ensure LoggingJobService implements jobhunter.JobService.
var _ jobhunter.JobService = (*LoggingJobService)(nil)

// LoggingJobService wraps a JobService with debug logging of every mutation.
// Reads are delegated without logging.
type LoggingJobService struct {
	next   jobhunter.JobService
	logger *slog.Logger
}

// NewLoggingJobService creates a new LoggingJobService.
func NewLoggingJobService(next jobhunter.JobService, logger *slog.Logger) *LoggingJobService {
	return &LoggingJobService{next: next, logger: logger}
}

func (s *LoggingJobService) SaveJob(ctx context.Context, job *jobhunter.Job) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save job",
			"id", job.ID,
			"url", job.SourceURL,
			"title", job.AIData.JobTitle,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveJob(ctx, job)
}

func (s *LoggingJobService) FindJobByID(ctx context.Context, id string) (*jobhunter.Job, error) {
	return s.next.FindJobByID(ctx, id)
}

func (s *LoggingJobService) FindJobs(ctx context.Context, filter jobhunter.JobFilter) ([]*jobhunter.Job, error) {
	return s.next.FindJobs(ctx, filter)
}

func (s *LoggingJobService) DeleteJob(ctx context.Context, id string) (deleted bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete job",
			"id", id,
			"deleted", deleted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteJob(ctx, id)
}

func (s *LoggingJobService) UpdateJobStatus(ctx context.Context, id string, status jobhunter.JobStatus) (updated bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update job status",
			"id", id,
			"status", status,
			"updated", updated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateJobStatus(ctx, id, status)
}

func (s *LoggingJobService) DeduplicateJobs(ctx context.Context) (result *jobhunter.DedupResult, err error) {
	defer func(begin time.Time) {
		var removed, remaining int
		if result != nil {
			removed, remaining = result.Removed, result.Remaining
		}
		s.logger.Info("deduplicate jobs",
			"removed", removed,
			"remaining", remaining,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeduplicateJobs(ctx)
}

func (s *LoggingJobService) ImportJobs(ctx context.Context, jobs []*jobhunter.Job) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("import jobs",
			"count", len(jobs),
			"kept", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImportJobs(ctx, jobs)
}

func (s *LoggingJobService) JobStats(ctx context.Context) (*jobhunter.JobStats, error) {
	return s.next.JobStats(ctx)
}
