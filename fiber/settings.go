package fiber

import (
	"github.com/fwojciec/jobhunter"
	"github.com/gofiber/fiber/v3"
)

func (s *Server) registerSettingsRoutes(r fiber.Router) {
	r.Get("/settings", s.handleSettingsView)
	r.Put("/settings", s.handleSettingsUpdate)
	r.Get("/preferences", s.handlePreferencesView)
	r.Put("/preferences", s.handlePreferencesUpdate)
	r.Get("/scan/last", s.handleLastScan)
}

// settingsResponse reports whether a key is configured without echoing it.
type settingsResponse struct {
	Success   bool   `json:"success"`
	HasAPIKey bool   `json:"hasApiKey"`
	ModelName string `json:"modelName"`
	MaxJobs   int    `json:"maxJobs"`
}

func newSettingsResponse(settings *jobhunter.Settings) settingsResponse {
	return settingsResponse{
		Success:   true,
		HasAPIKey: settings.HasAPIKey(),
		ModelName: settings.ModelName,
		MaxJobs:   settings.MaxJobs,
	}
}

func (s *Server) handleSettingsView(c fiber.Ctx) error {
	settings, err := s.SettingsService.FindSettings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(newSettingsResponse(settings))
}

func (s *Server) handleSettingsUpdate(c fiber.Ctx) error {
	var upd jobhunter.SettingsUpdate
	if err := c.Bind().Body(&upd); err != nil {
		return jobhunter.Errorf(jobhunter.EINVALID, "Settings are required")
	}

	settings, err := s.SettingsService.UpdateSettings(c.Context(), upd)
	if err != nil {
		return err
	}
	return c.JSON(newSettingsResponse(settings))
}

func (s *Server) handlePreferencesView(c fiber.Ctx) error {
	prefs, err := s.StateService.Preferences(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "preferences": prefs})
}

func (s *Server) handlePreferencesUpdate(c fiber.Ctx) error {
	var prefs jobhunter.Preferences
	if err := c.Bind().Body(&prefs); err != nil {
		return jobhunter.Errorf(jobhunter.EINVALID, "Preferences are required")
	}
	if err := s.StateService.SetPreferences(c.Context(), &prefs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "preferences": prefs})
}

// handleLastScan returns the most recent scan outcome, or 404 before the
// first scan.
func (s *Server) handleLastScan(c fiber.Ctx) error {
	result, err := s.StateService.LastScanResult(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}
