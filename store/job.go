package store

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobhunter"
)

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// loadJobs returns the stored collection, most recent insert first. Must be
// called with s.mu held.
func (s *Store) loadJobs(ctx context.Context) ([]*jobhunter.Job, error) {
	var jobs []*jobhunter.Job
	if _, err := s.getJSON(ctx, KeySavedJobs, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Store) storeJobs(ctx context.Context, jobs []*jobhunter.Job) error {
	if jobs == nil {
		jobs = []*jobhunter.Job{}
	}
	return s.setJSON(ctx, KeySavedJobs, jobs)
}

// SaveJob assigns identity and timestamps to job and inserts it at the head
// of the collection. Jobs beyond the configured cap are evicted from the
// tail, so the oldest insert goes first.
func (s *Store) SaveJob(ctx context.Context, job *jobhunter.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now().UTC()
	if job.Status == "" {
		job.Status = jobhunter.StatusSaved
	}
	if job.ApplyLink == "" {
		job.ApplyLink = job.SourceURL
	}
	if job.Metadata.ProcessedAt.IsZero() {
		job.Metadata.ProcessedAt = now
	}
	if job.Metadata.ContentHash == "" && job.Metadata.RawMarkdown != "" {
		job.Metadata.ContentHash = hashContent(job.Metadata.RawMarkdown)
	}
	if err := job.Validate(); err != nil {
		return err
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return err
	}
	for _, existing := range jobs {
		if job.IsDuplicateOf(existing) {
			return jobhunter.Errorf(jobhunter.ECONFLICT, "This job has already been saved")
		}
	}

	limit, err := s.maxJobs(ctx)
	if err != nil {
		return err
	}

	saved := *job
	saved.ID = s.NewID()
	saved.SavedDate = now
	saved.UpdatedDate = now

	jobs = append([]*jobhunter.Job{&saved}, jobs...)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	if err := s.storeJobs(ctx, jobs); err != nil {
		return err
	}

	job.ID = saved.ID
	job.SavedDate = saved.SavedDate
	job.UpdatedDate = saved.UpdatedDate
	return nil
}

// FindJobByID retrieves a job by ID.
func (s *Store) FindJobByID(ctx context.Context, id string) (*jobhunter.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, jobhunter.Errorf(jobhunter.ENOTFOUND, "job %q not found", id)
}

// FindJobs retrieves jobs matching the filter in stored order.
func (s *Store) FindJobs(ctx context.Context, filter jobhunter.JobFilter) ([]*jobhunter.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*jobhunter.Job, 0, len(jobs))
	for _, job := range jobs {
		if filter.Status != nil && job.Status != *filter.Status {
			continue
		}
		if filter.Company != nil && !strings.EqualFold(job.AIData.CompanyName, *filter.Company) {
			continue
		}
		matched = append(matched, job)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*jobhunter.Job{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// DeleteJob removes the job with the given ID. Deleting an unknown ID is a
// no-op that reports false.
func (s *Store) DeleteJob(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]*jobhunter.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	if len(kept) == len(jobs) {
		return false, nil
	}
	if err := s.storeJobs(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateJobStatus sets the status of a job and advances its UpdatedDate.
func (s *Store) UpdateJobStatus(ctx context.Context, id string, status jobhunter.JobStatus) (bool, error) {
	if !status.Valid() {
		return false, jobhunter.Errorf(jobhunter.EINVALID, "invalid status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return false, err
	}

	for _, job := range jobs {
		if job.ID != id {
			continue
		}
		job.Status = status
		job.UpdatedDate = s.Now().UTC()
		if err := s.storeJobs(ctx, jobs); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// DeduplicateJobs keeps the first job seen for each dedup key and preserves
// the relative order of survivors.
func (s *Store) DeduplicateJobs(ctx context.Context) (*jobhunter.DedupResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(jobs))
	unique := make([]*jobhunter.Job, 0, len(jobs))
	for _, job := range jobs {
		key := job.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, job)
	}

	result := &jobhunter.DedupResult{
		Removed:   len(jobs) - len(unique),
		Remaining: len(unique),
	}
	if result.Removed == 0 {
		return result, nil
	}
	if err := s.storeJobs(ctx, unique); err != nil {
		return nil, err
	}
	return result, nil
}

// ImportJobs appends jobs after the existing collection. Jobs without an ID
// get a new one, and missing dates and status are filled in.
func (s *Store) ImportJobs(ctx context.Context, imported []*jobhunter.Job) (int, error) {
	now := s.Now().UTC()
	for i, job := range imported {
		if job.Status == "" {
			job.Status = jobhunter.StatusSaved
		}
		if job.ApplyLink == "" {
			job.ApplyLink = job.SourceURL
		}
		if job.SavedDate.IsZero() {
			job.SavedDate = now
		}
		if job.UpdatedDate.IsZero() {
			job.UpdatedDate = job.SavedDate
		}
		if err := job.Validate(); err != nil {
			return 0, jobhunter.Errorf(jobhunter.EINVALID, "job %d: %s", i+1, jobhunter.ErrorMessage(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return 0, err
	}
	limit, err := s.maxJobs(ctx)
	if err != nil {
		return 0, err
	}

	for _, job := range imported {
		if job.ID == "" {
			job.ID = s.NewID()
		}
	}

	kept := min(len(imported), max(0, limit-len(jobs)))
	jobs = append(jobs, imported...)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	if err := s.storeJobs(ctx, jobs); err != nil {
		return 0, err
	}
	return kept, nil
}

// JobStats summarizes the saved jobs.
func (s *Store) JobStats(ctx context.Context) (*jobhunter.JobStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	return jobhunter.ComputeJobStats(jobs, s.Now()), nil
}
