package jobhunter

import (
	"strings"
	"time"
)

// JobStats summarizes a collection of saved jobs.
type JobStats struct {
	Total     int            `json:"total"`
	Companies int            `json:"companies"`
	Remote    int            `json:"remote"`
	ThisWeek  int            `json:"thisWeek"`
	ByStatus  map[string]int `json:"byStatus"`
	ByCompany map[string]int `json:"byCompany"`
}

// ComputeJobStats counts jobs by status and company. Companies are compared
// case-insensitively and keyed by their lowercase name. ThisWeek counts jobs
// saved in the seven days before now.
func ComputeJobStats(jobs []*Job, now time.Time) *JobStats {
	stats := &JobStats{
		Total:     len(jobs),
		ByStatus:  make(map[string]int),
		ByCompany: make(map[string]int),
	}
	weekAgo := now.AddDate(0, 0, -7)

	for _, job := range jobs {
		if name := job.AIData.CompanyName; name != "" {
			stats.ByCompany[strings.ToLower(name)]++
		}
		if strings.EqualFold(string(job.AIData.WorkModel), string(WorkModelRemote)) {
			stats.Remote++
		}
		if job.SavedDate.After(weekAgo) {
			stats.ThisWeek++
		}
		status := job.Status
		if status == "" {
			status = StatusSaved
		}
		stats.ByStatus[string(status)]++
	}
	stats.Companies = len(stats.ByCompany)

	return stats
}
