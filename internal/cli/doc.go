// Package cli implements the artsign command-line interface.
//
// The main command is stamp, which adds a signature layer to an SVG file.
// Supporting commands measure elements (query), convert packed colors
// (color), preview presets and social tags (presets), and manage the
// bounds cache (cache).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log. Loggers are carried on the CLI struct and in the
// command context.
//
// # Configuration
//
// Defaults come from $XDG_CONFIG_HOME/artsign/config.toml; see package
// config. Flags always win over the file.
package cli
