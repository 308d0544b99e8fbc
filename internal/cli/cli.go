package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/artsign/pkg/buildinfo"
	"github.com/matzehuels/artsign/pkg/cache"
	"github.com/matzehuels/artsign/pkg/observability"
	"github.com/matzehuels/artsign/pkg/query"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "artsign"

	// outputSuffix is appended to the input name when -o is not given.
	outputSuffix = "-signed"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w and registers
// logging observability hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	hooks := &logHooks{logger: c.Logger}
	observability.SetStampHooks(hooks)
	observability.SetCacheHooks(hooks)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "artsign stamps an artist's signature onto SVG drawings",
		Long:         `artsign adds a signature layer to an SVG document, positioned at a corner or the center of the canvas or of a selected element, with configurable font, color, and social media handle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.stampCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Querier Factory
// =============================================================================

// newQuerier builds the bounds querier for a backend. Inkscape results go
// through the bounds cache; geometry is cheaper to recompute than to look up.
func (c *CLI) newQuerier(backend, inkscapePath string, noCache bool) (query.Querier, error) {
	q, err := query.New(backend, inkscapePath)
	if err != nil {
		return nil, err
	}
	if q.Name() == query.BackendGeometry {
		return q, nil
	}
	return query.NewCached(q, c.boundsCache(noCache), c.Logger), nil
}

// boundsCache returns the on-disk cache, or a NullCache when caching is off
// or the cache directory cannot be created.
func (c *CLI) boundsCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	fc, err := newCache()
	if err != nil {
		c.Logger.Warn("bounds cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

func newCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/artsign/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
