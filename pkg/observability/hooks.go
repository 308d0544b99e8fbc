// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through package-level hook registries; the CLI
// registers implementations at startup. Defaults are no-ops, so library
// code never needs to check whether anyone is listening.
//
//	observability.SetStampHooks(&myHooks{})
//
//	observability.Stamp().OnQueryStart(ctx, "inkscape", id)
//	// ... measure ...
//	observability.Stamp().OnQueryComplete(ctx, "inkscape", id, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Stamp Hooks
// =============================================================================

// StampHooks receives events from the signature stamping flow.
type StampHooks interface {
	// OnQueryStart fires before a bounding box is measured. id is "" for the canvas.
	OnQueryStart(ctx context.Context, backend, id string)
	// OnQueryComplete fires after measurement, successful or not.
	OnQueryComplete(ctx context.Context, backend, id string, duration time.Duration, err error)
	// OnStampComplete fires once the signature has been written.
	OnStampComplete(ctx context.Context, preset, output string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStampHooks is a no-op implementation of StampHooks.
type NoopStampHooks struct{}

func (NoopStampHooks) OnQueryStart(context.Context, string, string)                          {}
func (NoopStampHooks) OnQueryComplete(context.Context, string, string, time.Duration, error) {}
func (NoopStampHooks) OnStampComplete(context.Context, string, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stampHooks StampHooks = NoopStampHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetStampHooks registers custom stamp hooks. Nil is ignored.
func SetStampHooks(h StampHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stampHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Stamp returns the registered stamp hooks.
func Stamp() StampHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stampHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stampHooks = NoopStampHooks{}
	cacheHooks = NoopCacheHooks{}
}
