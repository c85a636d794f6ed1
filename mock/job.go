package mock

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.JobService = (*JobService)(nil)

// JobService is a mock implementation of jobhunter.JobService.
type JobService struct {
	SaveJobFn         func(ctx context.Context, job *jobhunter.Job) error
	FindJobByIDFn     func(ctx context.Context, id string) (*jobhunter.Job, error)
	FindJobsFn        func(ctx context.Context, filter jobhunter.JobFilter) ([]*jobhunter.Job, error)
	DeleteJobFn       func(ctx context.Context, id string) (bool, error)
	UpdateJobStatusFn func(ctx context.Context, id string, status jobhunter.JobStatus) (bool, error)
	DeduplicateJobsFn func(ctx context.Context) (*jobhunter.DedupResult, error)
	ImportJobsFn      func(ctx context.Context, jobs []*jobhunter.Job) (int, error)
	JobStatsFn        func(ctx context.Context) (*jobhunter.JobStats, error)
}

func (s *JobService) SaveJob(ctx context.Context, job *jobhunter.Job) error {
	return s.SaveJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*jobhunter.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter jobhunter.JobFilter) ([]*jobhunter.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) (bool, error) {
	return s.DeleteJobFn(ctx, id)
}

func (s *JobService) UpdateJobStatus(ctx context.Context, id string, status jobhunter.JobStatus) (bool, error) {
	return s.UpdateJobStatusFn(ctx, id, status)
}

func (s *JobService) DeduplicateJobs(ctx context.Context) (*jobhunter.DedupResult, error) {
	return s.DeduplicateJobsFn(ctx)
}

func (s *JobService) ImportJobs(ctx context.Context, jobs []*jobhunter.Job) (int, error) {
	return s.ImportJobsFn(ctx, jobs)
}

func (s *JobService) JobStats(ctx context.Context) (*jobhunter.JobStats, error) {
	return s.JobStatsFn(ctx)
}
