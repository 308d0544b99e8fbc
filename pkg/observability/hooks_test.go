package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStampHooks{}
	s.OnQueryStart(ctx, "geometry", "")
	s.OnQueryComplete(ctx, "geometry", "", time.Millisecond, nil)
	s.OnStampComplete(ctx, "BottomRight", "out.svg", time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "bounds:abc")
	c.OnCacheMiss(ctx, "bounds:abc")
	c.OnCacheSet(ctx, "bounds:abc", 64)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Stamp().(NoopStampHooks); !ok {
		t.Error("Stamp() should return NoopStampHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customStamp := &testStampHooks{}
	SetStampHooks(customStamp)
	if Stamp() != customStamp {
		t.Error("SetStampHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Nil is ignored
	SetStampHooks(nil)
	if Stamp() != customStamp {
		t.Error("SetStampHooks(nil) should keep existing hooks")
	}

	Stamp().OnQueryStart(context.Background(), "inkscape", "rect1")
	if customStamp.queries != 1 {
		t.Errorf("queries = %d, want 1", customStamp.queries)
	}

	Reset()
	if _, ok := Stamp().(NoopStampHooks); !ok {
		t.Error("Reset should restore NoopStampHooks")
	}
}

type testStampHooks struct {
	NoopStampHooks
	queries int
}

func (h *testStampHooks) OnQueryStart(context.Context, string, string) { h.queries++ }

type testCacheHooks struct{ NoopCacheHooks }
