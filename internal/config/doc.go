// Package config loads, validates, and defaults the TOML configuration for
// powertools.
//
// Configuration is optional: every value has a working default, and the
// loader falls back to defaults when no file exists at the resolved path.
package config
