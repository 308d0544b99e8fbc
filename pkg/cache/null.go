package cache

import (
	"context"
	"time"

	"github.com/matzehuels/artsign/pkg/observability"
)

// NullCache stores nothing; every Get is a miss. The CLI uses it for
// --no-cache and when the cache directory is unusable, so queries always
// reach the backend.
type NullCache struct{}

// NewNullCache returns a cache that never holds entries.
func NewNullCache() Cache {
	return &NullCache{}
}

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, key)
	return nil, false, nil
}

func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (c *NullCache) Delete(context.Context, string) error                     { return nil }
func (c *NullCache) Close() error                                             { return nil }

var _ Cache = (*NullCache)(nil)
