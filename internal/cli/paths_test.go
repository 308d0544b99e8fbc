package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/artsign/pkg/cache"
	"github.com/matzehuels/artsign/pkg/observability"
	"github.com/matzehuels/artsign/pkg/query"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "art/drawing.svg", "art/drawing-signed.svg"},
		{"", "noext", "noext-signed.svg"},
		{"", "-", "-"},
		{"out.svg", "in.svg", "out.svg"},
		{"-", "in.svg", "-"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := parseFormats("svg, png ,pdf")
	want := []string{"svg", "png", "pdf"}
	if len(got) != len(want) {
		t.Fatalf("parseFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
}

func TestBoundsCache(t *testing.T) {
	c := New(io.Discard, LogInfo)
	t.Cleanup(observability.Reset)

	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	if _, ok := c.boundsCache(true).(*cache.NullCache); !ok {
		t.Error("--no-cache should use a NullCache")
	}
	if _, ok := c.boundsCache(false).(*cache.FileCache); !ok {
		t.Error("caching enabled should use the FileCache")
	}

	// A regular file where the cache directory should be.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CACHE_HOME", blocker)
	if _, ok := c.boundsCache(false).(*cache.NullCache); !ok {
		t.Error("unusable cache dir should fall back to a NullCache")
	}
}

func TestNewQuerierCaching(t *testing.T) {
	c := New(io.Discard, LogInfo)
	t.Cleanup(observability.Reset)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	q, err := c.newQuerier(query.BackendGeometry, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := q.(query.Geometry); !ok {
		t.Errorf("geometry querier = %T, want query.Geometry", q)
	}

	for _, noCache := range []bool{true, false} {
		q, err := c.newQuerier(query.BackendInkscape, "", noCache)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := q.(*query.Cached); !ok {
			t.Errorf("inkscape querier (noCache=%v) = %T, want *query.Cached", noCache, q)
		}
	}
}
