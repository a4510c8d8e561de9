// Package config loads, normalizes, and validates wiiuid configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WIIUID_TITLE_DB environment
// fallback. Command-line flags override whatever this package resolves.
package config
