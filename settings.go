package jobhunter

import "context"

// DefaultModelName is the model used when none is configured.
const DefaultModelName = "gemini-2.5-flash"

// DefaultMaxJobs is the number of saved jobs kept when no cap is configured.
const DefaultMaxJobs = 100

// Settings is the singleton configuration read before every scan.
type Settings struct {
	APIKey    string `json:"apiKey"`
	ModelName string `json:"modelName" validate:"required"`
	MaxJobs   int    `json:"maxJobs" validate:"min=1"`
}

// DefaultSettings returns settings with the default model and cap and no
// API key.
func DefaultSettings() *Settings {
	return &Settings{
		ModelName: DefaultModelName,
		MaxJobs:   DefaultMaxJobs,
	}
}

// Validate returns an error if the settings contain invalid fields.
func (s *Settings) Validate() error {
	return validateStruct("settings", s)
}

// HasAPIKey reports whether a model credential is configured.
func (s *Settings) HasAPIKey() bool {
	return s.APIKey != ""
}

// SettingsService represents a service for reading and writing settings.
type SettingsService interface {
	// FindSettings returns the stored settings with defaults applied to
	// unset values.
	FindSettings(ctx context.Context) (*Settings, error)

	// UpdateSettings applies the non-nil fields of upd and returns the
	// resulting settings. Returns EINVALID if the result is invalid.
	UpdateSettings(ctx context.Context, upd SettingsUpdate) (*Settings, error)
}

// SettingsUpdate represents a set of fields to update on the settings.
type SettingsUpdate struct {
	APIKey    *string `json:"apiKey"`
	ModelName *string `json:"modelName"`
	MaxJobs   *int    `json:"maxJobs"`
}
