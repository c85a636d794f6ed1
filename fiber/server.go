// Package fiber exposes the page-scan trigger, the saved jobs and the
// settings over HTTP using gofiber.
package fiber

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ShutdownTimeout bounds graceful shutdown in Serve.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP interface to jobhunter.
type Server struct {
	app *fiber.App

	Processor       jobhunter.JobProcessor
	Scanner         jobhunter.PageScanner
	JobService      jobhunter.JobService
	SettingsService jobhunter.SettingsService
	StateService    jobhunter.StateService

	Logger *slog.Logger
}

// NewServer returns a Server with routes registered. Services must be set
// before the first request.
func NewServer() *Server {
	s := &Server{
		Logger: slog.New(slog.DiscardHandler),
	}
	s.app = fiber.New(fiber.Config{
		AppName:      "jobhunter",
		ErrorHandler: s.handleError,
	})

	s.app.Use(s.accessLog)

	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	s.registerScanRoutes(s.app)
	s.registerJobRoutes(s.app)
	s.registerSettingsRoutes(s.app)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}

// accessLog logs one line per request and tags it with a request ID.
func (s *Server) accessLog(c fiber.Ctx) error {
	begin := time.Now()

	rid := c.Get("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Set("X-Request-ID", rid)

	err := c.Next()

	s.Logger.Info("http request",
		"rid", rid,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(begin),
		"err", err,
	)
	return err
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleError writes err as an errorResponse. Application errors keep their
// message; anything else reads "Internal error.".
func (s *Server) handleError(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message})
	}
	return c.Status(ErrorStatusCode(jobhunter.ErrorCode(err))).JSON(errorResponse{
		Error: jobhunter.ErrorMessage(err),
	})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	jobhunter.ECONFLICT:  fiber.StatusConflict,
	jobhunter.ECONTENT:   fiber.StatusUnprocessableEntity,
	jobhunter.EINVALID:   fiber.StatusBadRequest,
	jobhunter.ENOTFOUND:  fiber.StatusNotFound,
	jobhunter.EPARSE:     fiber.StatusBadGateway,
	jobhunter.ERESPONSE:  fiber.StatusBadGateway,
	jobhunter.ESCHEMA:    fiber.StatusBadGateway,
	jobhunter.ETRANSPORT: fiber.StatusBadGateway,
	jobhunter.ESTORAGE:   fiber.StatusServiceUnavailable,
	jobhunter.EINTERNAL:  fiber.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return fiber.StatusInternalServerError
}
