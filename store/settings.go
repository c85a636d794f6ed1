package store

import (
	"context"
	"strconv"

	"github.com/fwojciec/jobhunter"
)

// FindSettings returns the stored settings with defaults applied.
func (s *Store) FindSettings(ctx context.Context) (*jobhunter.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findSettings(ctx)
}

func (s *Store) findSettings(ctx context.Context) (*jobhunter.Settings, error) {
	settings := jobhunter.DefaultSettings()

	var apiKey, modelName string
	if _, err := s.getJSON(ctx, KeyAPIKey, &apiKey); err != nil {
		return nil, err
	}
	if _, err := s.getJSON(ctx, KeyModelName, &modelName); err != nil {
		return nil, err
	}
	maxJobs, err := s.maxJobs(ctx)
	if err != nil {
		return nil, err
	}

	settings.APIKey = apiKey
	if settings.APIKey == "" {
		settings.APIKey = s.FallbackAPIKey
	}
	if modelName != "" {
		settings.ModelName = modelName
	}
	settings.MaxJobs = maxJobs
	return settings, nil
}

// UpdateSettings applies the non-nil fields of upd. Nothing is written if
// the resulting settings are invalid. Lowering MaxJobs does not evict
// anything until the next save.
func (s *Store) UpdateSettings(ctx context.Context, upd jobhunter.SettingsUpdate) (*jobhunter.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.findSettings(ctx)
	if err != nil {
		return nil, err
	}
	if v := upd.APIKey; v != nil {
		settings.APIKey = *v
	}
	if v := upd.ModelName; v != nil {
		settings.ModelName = *v
	}
	if v := upd.MaxJobs; v != nil {
		settings.MaxJobs = *v
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if upd.APIKey != nil {
		if err := s.setJSON(ctx, KeyAPIKey, settings.APIKey); err != nil {
			return nil, err
		}
	}
	if upd.ModelName != nil {
		if err := s.setJSON(ctx, KeyModelName, settings.ModelName); err != nil {
			return nil, err
		}
	}
	if upd.MaxJobs != nil {
		if err := s.set(ctx, KeyMaxJobs, []byte(strconv.Itoa(settings.MaxJobs))); err != nil {
			return nil, err
		}
	}
	return settings, nil
}
