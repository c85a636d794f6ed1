package mock

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of jobhunter.SettingsService.
type SettingsService struct {
	FindSettingsFn   func(ctx context.Context) (*jobhunter.Settings, error)
	UpdateSettingsFn func(ctx context.Context, upd jobhunter.SettingsUpdate) (*jobhunter.Settings, error)
}

func (s *SettingsService) FindSettings(ctx context.Context) (*jobhunter.Settings, error) {
	return s.FindSettingsFn(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, upd jobhunter.SettingsUpdate) (*jobhunter.Settings, error) {
	return s.UpdateSettingsFn(ctx, upd)
}
