package jobhunter

import (
	"context"
	"strings"
	"time"
)

// JobStatus is the application state of a saved job.
type JobStatus string

// JobStatus values.
const (
	StatusSaved     JobStatus = "Saved"
	StatusApplied   JobStatus = "Applied"
	StatusRejected  JobStatus = "Rejected"
	StatusInterview JobStatus = "Interview"
)

// JobStatuses returns every valid status in display order.
func JobStatuses() []JobStatus {
	return []JobStatus{StatusSaved, StatusApplied, StatusRejected, StatusInterview}
}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	for _, v := range JobStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// ParseJobStatus parses a status name case-insensitively.
func ParseJobStatus(s string) (JobStatus, error) {
	for _, v := range JobStatuses() {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", Errorf(EINVALID, "unknown status %q (want Saved, Applied, Rejected or Interview)", s)
}

// Job is a saved job posting together with its AI analysis.
type Job struct {
	ID          string      `json:"id"`
	SavedDate   time.Time   `json:"savedDate"`
	UpdatedDate time.Time   `json:"updatedDate"`
	SourceURL   string      `json:"sourceURL" validate:"required"`
	ApplyLink   string      `json:"applyLink"`
	Status      JobStatus   `json:"status" validate:"oneof=Saved Applied Rejected Interview"`
	AIData      JobAnalysis `json:"aiData"`
	Metadata    JobMetadata `json:"metadata"`
}

// JobMetadata records where an analysis came from.
type JobMetadata struct {
	ProcessedAt   time.Time `json:"processedAt"`
	ContentLength int       `json:"contentLength"`
	ContentHash   string    `json:"contentHash,omitempty"`
	RawMarkdown   string    `json:"rawMarkdown,omitempty"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if err := validateStruct("job", j); err != nil {
		return err
	}
	if j.AIData.JobTitle == "" {
		return Errorf(EINVALID, "job title required")
	}
	return nil
}

// DedupKey returns the key used to collapse duplicate records: the ID when
// present, otherwise the source URL joined with the job title.
func (j *Job) DedupKey() string {
	if j.ID != "" {
		return j.ID
	}
	return j.SourceURL + "_" + j.AIData.JobTitle
}

// IsDuplicateOf reports whether j and other describe the same posting.
// Both fields are compared exactly, so a rescan that yields a slightly
// different title is not caught.
func (j *Job) IsDuplicateOf(other *Job) bool {
	return j.SourceURL == other.SourceURL && j.AIData.JobTitle == other.AIData.JobTitle
}

// NewJob builds an unsaved job for a page at url whose extracted markdown was
// content. Identity and timestamps are assigned by JobService.SaveJob.
func NewJob(url, content string, analysis *JobAnalysis) *Job {
	return &Job{
		SourceURL: url,
		ApplyLink: url,
		Status:    StatusSaved,
		AIData:    *analysis,
		Metadata: JobMetadata{
			ContentLength: len(content),
			RawMarkdown:   content,
		},
	}
}

// JobService represents a service for managing saved jobs.
type JobService interface {
	// SaveJob assigns an ID and timestamps, then inserts the job at the head
	// of the collection, evicting the oldest insertions beyond the cap.
	// Returns ECONFLICT if a job with the same source URL and title exists.
	SaveJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter, most recent insert first.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// DeleteJob removes a job. Reports whether a job was removed.
	DeleteJob(ctx context.Context, id string) (bool, error)

	// UpdateJobStatus sets the status of a job and refreshes its
	// UpdatedDate. Reports whether the job existed.
	UpdateJobStatus(ctx context.Context, id string, status JobStatus) (bool, error)

	// DeduplicateJobs keeps the first job seen for each DedupKey.
	DeduplicateJobs(ctx context.Context) (*DedupResult, error)

	// ImportJobs appends previously exported jobs after the existing ones
	// without duplicate checks, then applies the cap. Returns the number of
	// jobs kept from the import.
	ImportJobs(ctx context.Context, jobs []*Job) (int, error)

	// JobStats summarizes the saved jobs.
	JobStats(ctx context.Context) (*JobStats, error)
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	Status  *JobStatus `json:"status"`
	Company *string    `json:"company"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DedupResult reports the outcome of DeduplicateJobs.
type DedupResult struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}
