package mock

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.StateService = (*StateService)(nil)

// StateService is a mock implementation of jobhunter.StateService.
type StateService struct {
	PreferencesFn    func(ctx context.Context) (*jobhunter.Preferences, error)
	SetPreferencesFn func(ctx context.Context, p *jobhunter.Preferences) error
	LastScanResultFn func(ctx context.Context) (*jobhunter.ScanResult, error)
	SaveScanResultFn func(ctx context.Context, result *jobhunter.ScanResult) error
}

func (s *StateService) Preferences(ctx context.Context) (*jobhunter.Preferences, error) {
	return s.PreferencesFn(ctx)
}

func (s *StateService) SetPreferences(ctx context.Context, p *jobhunter.Preferences) error {
	return s.SetPreferencesFn(ctx, p)
}

func (s *StateService) LastScanResult(ctx context.Context) (*jobhunter.ScanResult, error) {
	return s.LastScanResultFn(ctx)
}

func (s *StateService) SaveScanResult(ctx context.Context, result *jobhunter.ScanResult) error {
	return s.SaveScanResultFn(ctx, result)
}
