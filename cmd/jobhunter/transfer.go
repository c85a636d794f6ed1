package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/jobhunter"
	"github.com/fwojciec/jobhunter/fs"
)

// exportSeparator divides jobs in the plain-text export.
var exportSeparator = "\n" + strings.Repeat("=", 60) + "\n\n"

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Jobs.FindJobs(deps.Ctx, jobhunter.JobFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	if c.Dir != "" {
		return exportDir(deps, c.Dir, jobs)
	}

	var buf bytes.Buffer
	if c.JSON {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jobs); err != nil {
			return err
		}
	} else {
		for i, job := range jobs {
			if i > 0 {
				buf.WriteString(exportSeparator)
			}
			buf.WriteString(jobhunter.FormatJob(job))
		}
	}

	if c.File == "" {
		_, err := deps.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(c.File, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d jobs to %s\n", len(jobs), c.File)
	return nil
}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var jobs []*jobhunter.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s is not a JSON job export\n", c.File)
		return jobhunter.Errorf(jobhunter.EINVALID, "invalid import file: %v", err)
	}

	n, err := deps.Jobs.ImportJobs(deps.Ctx, jobs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d of %d jobs\n", n, len(jobs))
	return nil
}

// exportDir replaces dir with one markdown file per job.
func exportDir(deps *Dependencies, dir string, jobs []*jobhunter.Job) error {
	store := fs.NewJobStore(filepath.Dir(dir), filepath.Base(dir))
	for _, job := range jobs {
		if err := store.Save(deps.Ctx, job); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobhunter.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d jobs to %s\n", len(jobs), dir)
	return nil
}
