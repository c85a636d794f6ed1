// Package store implements the job, settings and state services on top of a
// jobhunter.KV.
package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/fwojciec/jobhunter"
	"github.com/google/uuid"
)

// Keys under which records are persisted.
const (
	KeySavedJobs      = "savedJobs"
	KeyAPIKey         = "apiKey"
	KeyModelName      = "modelName"
	KeyMaxJobs        = "maxJobs"
	KeyPreferences    = "preferences"
	KeyLastScanResult = "lastScanResult"
)

// Compile-time interface verification.
var (
	_ jobhunter.JobService      = (*Store)(nil)
	_ jobhunter.SettingsService = (*Store)(nil)
	_ jobhunter.StateService    = (*Store)(nil)
)

// Store is constructed once per process and shared by every consumer. All
// mutations run under a single lock, so a duplicate check and the insert it
// guards are never interleaved with another write.
//
// Values read from the KV are cached as raw bytes together with the version
// the KV reported for them. A cached value is used only while the KV still
// reports that version, so writes from other processes sharing the KV are
// picked up before the next read-modify-write. KVs that do not implement
// jobhunter.Versioner are read on every access. Writes drop the cached copy.
type Store struct {
	kv jobhunter.KV

	mu    sync.Mutex
	cache map[string]entry

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID returns a fresh job identifier. Defaults to uuid.NewString.
	NewID func() string

	// FallbackAPIKey is reported by FindSettings when no key is stored,
	// typically from GEMINI_API_KEY.
	FallbackAPIKey string
}

type entry struct {
	value   []byte
	ok      bool
	version string
}

// New returns a Store backed by kv.
func New(kv jobhunter.KV) *Store {
	return &Store{
		kv:    kv,
		cache: make(map[string]entry),
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// version returns the KV's version of key, or "" when the KV cannot report
// one or the key is not set.
func (s *Store) version(ctx context.Context, key string) (string, error) {
	v, ok := s.kv.(jobhunter.Versioner)
	if !ok {
		return "", nil
	}
	version, err := v.Version(ctx, key)
	if jobhunter.ErrorCode(err) == jobhunter.ENOTFOUND {
		return "", nil
	}
	return version, err
}

// get returns the raw value for key and whether it was set. Must be called
// with s.mu held.
func (s *Store) get(ctx context.Context, key string) ([]byte, bool, error) {
	version, err := s.version(ctx, key)
	if err != nil {
		return nil, false, jobhunter.Errorf(jobhunter.ESTORAGE, "failed to read %s: %v", key, err)
	}
	if e, ok := s.cache[key]; ok && version != "" && e.version == version {
		return e.value, e.ok, nil
	}

	value, err := s.kv.Get(ctx, key)
	if jobhunter.ErrorCode(err) == jobhunter.ENOTFOUND {
		s.cache[key] = entry{version: version}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, jobhunter.Errorf(jobhunter.ESTORAGE, "failed to read %s: %v", key, err)
	}

	s.cache[key] = entry{value: value, ok: true, version: version}
	return value, true, nil
}

// set writes value under key and drops the cached copy. Must be called with
// s.mu held.
func (s *Store) set(ctx context.Context, key string, value []byte) error {
	delete(s.cache, key)
	if err := s.kv.Set(ctx, key, value); err != nil {
		return jobhunter.Errorf(jobhunter.ESTORAGE, "failed to write %s: %v", key, err)
	}
	return nil
}

// getJSON decodes the value under key into v. Reports false when the key is
// not set.
func (s *Store) getJSON(ctx context.Context, key string, v any) (bool, error) {
	b, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, jobhunter.Errorf(jobhunter.ESTORAGE, "corrupt %s: %v", key, err)
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return jobhunter.Errorf(jobhunter.EINTERNAL, "failed to encode %s: %v", key, err)
	}
	return s.set(ctx, key, b)
}

// maxJobs returns the configured cap, falling back to the default for
// missing or invalid values.
func (s *Store) maxJobs(ctx context.Context) (int, error) {
	b, ok, err := s.get(ctx, KeyMaxJobs)
	if err != nil {
		return 0, err
	}
	if !ok {
		return jobhunter.DefaultMaxJobs, nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n < 1 {
		return jobhunter.DefaultMaxJobs, nil
	}
	return n, nil
}
