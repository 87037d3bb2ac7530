// Package app is the composition root for Tally.
//
// Run loads the TOML config and saved preferences, points the standard
// logger at the log file, builds the facts client and command service, and
// then hands control to the Bubble Tea UI until the user quits or the
// context is cancelled.
//
// RunCommand shares the same setup but invokes a single command by name
// ("greet" or "get_random_data") and prints the result, which is how the
// CLI subcommands reach the command layer without a terminal UI.
//
// # Error Handling
//
// Config and log-file errors abort startup and are returned to main, which
// prints them and exits non-zero. A bad prefs file is logged and replaced by
// defaults. Fetch failures are not errors at this level: the UI shows them
// as text.
package app
