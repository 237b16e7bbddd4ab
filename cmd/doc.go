// Package cmd implements the chorerun command-line interface.
//
// The package organizes all CLI subcommands (run, list, verify) and the
// underlying helpers for session resolution, guard evaluation, local and
// SSH-backed command execution, and structured YAML report emission.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, runCmd.go for the main execution flow, defaultSessions.go for the
// built-in session catalog, and runSession.go for how a single session's
// install and run steps are driven.
package cmd
