package store

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

// Preferences returns the stored preferences.
func (s *Store) Preferences(ctx context.Context) (*jobhunter.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p jobhunter.Preferences
	if _, err := s.getJSON(ctx, KeyPreferences, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPreferences replaces the stored preferences.
func (s *Store) SetPreferences(ctx context.Context, p *jobhunter.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setJSON(ctx, KeyPreferences, p)
}

// LastScanResult returns the most recent scan outcome.
func (s *Store) LastScanResult(ctx context.Context) (*jobhunter.ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result jobhunter.ScanResult
	ok, err := s.getJSON(ctx, KeyLastScanResult, &result)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, jobhunter.Errorf(jobhunter.ENOTFOUND, "no scan recorded")
	}
	return &result, nil
}

// SaveScanResult records the most recent scan outcome.
func (s *Store) SaveScanResult(ctx context.Context, result *jobhunter.ScanResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setJSON(ctx, KeyLastScanResult, result)
}
