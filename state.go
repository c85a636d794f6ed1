package jobhunter

import "context"

// Preferences are display choices kept between sessions.
type Preferences struct {
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	LastUsedMode        string `json:"lastUsedMode,omitempty"`
}

// StateService stores small session records that are not jobs or settings.
type StateService interface {
	// Preferences returns the stored preferences, or zero preferences if
	// none were saved.
	Preferences(ctx context.Context) (*Preferences, error)

	// SetPreferences replaces the stored preferences.
	SetPreferences(ctx context.Context, p *Preferences) error

	// LastScanResult returns the most recent scan outcome.
	// Returns ENOTFOUND if no scan has been recorded.
	LastScanResult(ctx context.Context) (*ScanResult, error)

	// SaveScanResult records the most recent scan outcome.
	SaveScanResult(ctx context.Context, result *ScanResult) error
}
