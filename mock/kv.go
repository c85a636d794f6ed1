package mock

import (
	"context"

	"github.com/fwojciec/jobhunter"
)

var _ jobhunter.KV = (*KV)(nil)

// KV is a mock implementation of jobhunter.KV.
type KV struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte) error
	DeleteFn func(ctx context.Context, key string) error
	CloseFn  func() error
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	return kv.GetFn(ctx, key)
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	return kv.SetFn(ctx, key, value)
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.DeleteFn(ctx, key)
}

func (kv *KV) Close() error {
	return kv.CloseFn()
}
