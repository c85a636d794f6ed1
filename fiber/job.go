package fiber

import (
	"strconv"

	"github.com/fwojciec/jobhunter"
	"github.com/gofiber/fiber/v3"
)

func (s *Server) registerJobRoutes(r fiber.Router) {
	r.Get("/jobs", s.handleJobIndex)
	r.Post("/jobs/dedupe", s.handleJobDedupe)
	r.Get("/jobs/:id", s.handleJobView)
	r.Delete("/jobs/:id", s.handleJobDelete)
	r.Patch("/jobs/:id/status", s.handleJobStatus)
	r.Get("/stats", s.handleStats)
}

type jobIndexResponse struct {
	Success bool             `json:"success"`
	Jobs    []*jobhunter.Job `json:"jobs"`
}

// handleJobIndex lists saved jobs. Supports status, company, offset and
// limit query parameters.
func (s *Server) handleJobIndex(c fiber.Ctx) error {
	var filter jobhunter.JobFilter

	if v := c.Query("status"); v != "" {
		status, err := jobhunter.ParseJobStatus(v)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if v := c.Query("company"); v != "" {
		filter.Company = &v
	}

	var err error
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		return err
	}
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return err
	}

	jobs, err := s.JobService.FindJobs(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(jobIndexResponse{Success: true, Jobs: jobs})
}

func (s *Server) handleJobView(c fiber.Ctx) error {
	job, err := s.JobService.FindJobByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "job": job})
}

func (s *Server) handleJobDelete(c fiber.Ctx) error {
	deleted, err := s.JobService.DeleteJob(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleJobStatus(c fiber.Ctx) error {
	var req jobStatusRequest
	if err := c.Bind().Body(&req); err != nil || req.Status == "" {
		return jobhunter.Errorf(jobhunter.EINVALID, "Job ID and status are required")
	}
	status, err := jobhunter.ParseJobStatus(req.Status)
	if err != nil {
		return err
	}

	updated, err := s.JobService.UpdateJobStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "updated": updated})
}

func (s *Server) handleJobDedupe(c fiber.Ctx) error {
	result, err := s.JobService.DeduplicateJobs(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "removed": result.Removed, "remaining": result.Remaining})
}

func (s *Server) handleStats(c fiber.Ctx) error {
	stats, err := s.JobService.JobStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func queryInt(c fiber.Ctx, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, jobhunter.Errorf(jobhunter.EINVALID, "%s must be a non-negative integer", key)
	}
	return n, nil
}
