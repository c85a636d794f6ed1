package fiber

import (
	"strings"

	"github.com/fwojciec/jobhunter"
	"github.com/gofiber/fiber/v3"
)

func (s *Server) registerScanRoutes(r fiber.Router) {
	r.Post("/scan", s.handleScan)
}

// handleScan runs a scan for {url, content}. When content is empty the page
// is fetched and extracted by the server. The body is always a ScanResult;
// failed scans answer 422.
func (s *Server) handleScan(c fiber.Ctx) error {
	var req jobhunter.ScanRequest
	if err := c.Bind().Body(&req); err != nil {
		return jobhunter.Errorf(jobhunter.EINVALID, "Request body is required")
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return jobhunter.Errorf(jobhunter.EINVALID, "Invalid job data: content and URL are required")
	}

	var result *jobhunter.ScanResult
	if strings.TrimSpace(req.Content) == "" && s.Scanner != nil {
		result = s.Scanner.ScanURL(c.Context(), req.URL)
	} else {
		result = s.Processor.ProcessJob(c.Context(), req)
	}

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(result)
}
