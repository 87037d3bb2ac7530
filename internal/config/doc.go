// Package config loads Tally's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tally/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tally/config.toml
//   - Cat fact endpoint: https://catfact.ninja/fact
//   - Advice endpoint: https://api.adviceslip.com/advice
//   - Log file: ~/.local/state/tally/tally.log
//
// # TOML Format
//
//	cat_fact_url = "https://catfact.ninja/fact"
//	advice_url = "https://api.adviceslip.com/advice"
//	log_file = "~/.local/state/tally/tally.log"
//
// All fields are optional. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
