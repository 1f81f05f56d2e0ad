// Package config loads roster's TOML configuration.
//
// The file lives at ~/.config/roster/config.toml unless a path is given.
// A missing file is not an error; every field has a default and empty
// values fall back to it.
//
//	records_path = "~/clinic/patients.yaml"  # empty shows the sample roster
//	log_file = "~/.local/state/roster/roster.log"
//	log_level = "info"                       # debug, info, warn, error
//	reset_page_on_query = true               # false only clamps the page
//	reload_seconds = 2                       # 0 relies on file events alone
//
// Paths starting with ~ are expanded against the home directory and made
// absolute. Malformed TOML and unknown log levels are errors.
package config
