// Package config loads patternview's TOML settings file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/patternview/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but a field is missing or empty, use its default
//
// # TOML Format
//
//	bucket = "nwlogs"
//	report_prefix = "log-patterns-reports"
//	region = "cn-northwest-1"
//	profile = "logs-readonly"
//	endpoint = ""                # S3-compatible store, optional
//	theme = "Nightfox"
//	log_file = "~/.local/state/patternview/patternview.log"
//	fetch_attempts = 3
//
// Every field is optional. Tilde expansion is applied to log_file and to the
// config path itself. fetch_attempts is clamped to 1..10.
//
// Command-line flags take precedence over the file; merging happens in the
// app package, so Config itself stays a plain value.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
