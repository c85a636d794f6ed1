package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobhunter"
)

// Ensure KV implements jobhunter.KV and jobhunter.Versioner at compile time.
var (
	_ jobhunter.KV        = (*KV)(nil)
	_ jobhunter.Versioner = (*KV)(nil)
)

// KV implements jobhunter.KV on the kv table.
type KV struct {
	db *DB

	// Now returns the time recorded as updated_at. Defaults to time.Now.
	Now func() time.Time
}

// NewKV creates a new KV.
func NewKV(db *DB) *KV {
	return &KV{db: db, Now: time.Now}
}

// Get returns the value stored under key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, jobhunter.Errorf(jobhunter.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key. Writing an unchanged value keeps the
// previous updated_at.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := kv.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, value_hash, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			value_hash = excluded.value_hash,
			updated_at = excluded.updated_at
		WHERE kv.value_hash != excluded.value_hash
	`, key, value, hashValue(value), kv.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (kv *KV) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (kv *KV) Close() error {
	return kv.db.Close()
}

// Version returns the content hash of the value under key.
func (kv *KV) Version(ctx context.Context, key string) (string, error) {
	var hash string
	err := kv.db.QueryRowContext(ctx, `SELECT value_hash FROM kv WHERE key = ?`, key).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", jobhunter.Errorf(jobhunter.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read version of %s: %w", key, err)
	}
	return hash, nil
}

func hashValue(value []byte) string {
	return strconv.FormatUint(xxhash.Sum64(value), 16)
}
