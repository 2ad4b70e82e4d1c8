// Package config loads marquee's startup configuration.
//
// # Overview
//
// Load builds one immutable Config at process start. Callers pass it (or the
// fields they need) into constructors; there is no package-level state.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file at the given path, or ~/.config/marquee/config.toml
//  3. Environment variables
//
// A missing config file is not an error. The API key is the only value with
// no default, so a fresh install needs nothing more than TMDB_API_KEY.
//
// # TOML Format
//
//	api_url = "https://api.themoviedb.org/3"
//	image_url = "https://image.tmdb.org/t/p/original"
//	api_key = "..."
//
//	[logging]
//	level = "info"                                # debug|info|warn|error
//	file = "~/.local/state/marquee/marquee.log"   # used while the TUI runs
//
// # Environment
//
//   - MARQUEE_API_KEY, then TMDB_API_KEY: api_key
//   - MARQUEE_API_URL: api_url
//   - MARQUEE_IMAGE_URL: image_url
//   - MARQUEE_LOG_LEVEL: logging.level
//   - MARQUEE_LOG_FILE: logging.file
//
// Empty variables are treated as unset.
//
// # Path Expansion
//
// The config path and logging.file accept "~" and relative paths; both are
// expanded to absolute paths.
package config
