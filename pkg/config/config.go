// Package config loads user defaults for artsign from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/artsign/config.toml (or
// ~/.config/artsign/config.toml) and may set any stamp option:
//
//	artist      = "Jane Doe"
//	preset      = "BottomRight"
//	social      = "Instagram"
//	font_family = "Georgia"
//	font_size   = 18
//	color       = "#336699"   # or a packed integer such as 0x336699FF
//	query_backend = "inkscape"
//	inkscape_path = "/usr/bin/inkscape"
//	cache = true
//
// Command-line flags override the file, and the file overrides built-in
// defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/signature"
)

const appName = "artsign"

// Config mirrors the TOML file. Zero values mean "not set".
type Config struct {
	Artist       string `toml:"artist"`
	Preset       string `toml:"preset"`
	Social       string `toml:"social"`
	FontFamily   string `toml:"font_family"`
	FontSize     int    `toml:"font_size"`
	Color        Color  `toml:"color"`
	QueryBackend string `toml:"query_backend"`
	InkscapePath string `toml:"inkscape_path"`
	Cache        *bool  `toml:"cache"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. An empty path loads the default
// location, where a missing file is not an error. Unknown keys are rejected
// so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Apply overlays the values set in c onto opts.
func (c Config) Apply(opts *signature.Options) {
	if c.Artist != "" {
		opts.ArtistName = c.Artist
	}
	if c.Preset != "" {
		opts.Preset = signature.ParsePreset(c.Preset)
	}
	if c.Social != "" {
		opts.SocialTag = signature.ParseSocialTag(c.Social)
	}
	if c.FontFamily != "" {
		opts.FontFamily = c.FontFamily
	}
	if c.FontSize != 0 {
		opts.FontSizePx = c.FontSize
	}
	if c.Color.Set {
		opts.PackedColor = c.Color.Packed
	}
}

// CacheEnabled reports whether query caching is on; it defaults to true.
func (c Config) CacheEnabled() bool {
	return c.Cache == nil || *c.Cache
}
