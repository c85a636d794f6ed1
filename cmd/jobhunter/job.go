package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/jobhunter"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := jobhunter.JobFilter{Limit: c.Limit}
	if c.Status != "" {
		status, err := jobhunter.ParseJobStatus(c.Status)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}
	if c.Company != "" {
		filter.Company = &c.Company
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'jobhunter scan' to save one.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCOMPANY\tSALARY\tSAVED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Status, j.AIData.JobTitle, j.AIData.CompanyName,
			jobhunter.FormatSalary(j.AIData.Compensation), j.SavedDate.Format("2006-01-02"))
	}
	return w.Flush()
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, jobhunter.FormatJob(job))
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	deleted, err := deps.Jobs.DeleteJob(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	if !deleted {
		fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'jobhunter list' to see saved jobs.\n", c.ID)
		return jobhunter.Errorf(jobhunter.ENOTFOUND, "job %q not found", c.ID)
	}

	fmt.Fprintf(deps.Stdout, "Deleted job %s\n", c.ID)
	return nil
}

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	status, err := jobhunter.ParseJobStatus(c.Status)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	updated, err := deps.Jobs.UpdateJobStatus(deps.Ctx, c.ID, status)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	if !updated {
		fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'jobhunter list' to see saved jobs.\n", c.ID)
		return jobhunter.Errorf(jobhunter.ENOTFOUND, "job %q not found", c.ID)
	}

	fmt.Fprintf(deps.Stdout, "Job %s is now %s\n", c.ID, status)
	return nil
}

// Run executes the dedupe command.
func (c *DedupeCmd) Run(deps *Dependencies) error {
	result, err := deps.Jobs.DeduplicateJobs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d duplicates, %d jobs remaining\n", result.Removed, result.Remaining)
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Jobs.JobStats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total: %d\n", stats.Total)
	fmt.Fprintf(deps.Stdout, "Companies: %d\n", stats.Companies)
	fmt.Fprintf(deps.Stdout, "Remote: %d\n", stats.Remote)
	fmt.Fprintf(deps.Stdout, "Saved this week: %d\n", stats.ThisWeek)
	for _, status := range jobhunter.JobStatuses() {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", status, stats.ByStatus[string(status)])
	}
	return nil
}

// Run executes the last command.
func (c *LastCmd) Run(deps *Dependencies) error {
	result, err := deps.State.LastScanResult(deps.Ctx)
	if jobhunter.ErrorCode(err) == jobhunter.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No scan recorded yet.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	at := result.Timestamp.Local().Format("2006-01-02 15:04")
	if !result.Success {
		fmt.Fprintf(deps.Stdout, "%s  failed  %s: %s\n", at, result.URL, result.Error)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "%s  saved  %s at %s (%s)\n", at, result.JobTitle, result.CompanyName, result.JobID)
	return nil
}
