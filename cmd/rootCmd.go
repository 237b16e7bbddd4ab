package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chorerun",
	Short: "Run maintenance sessions (lint, tests, docs) for a library checkout",
	Long: "Runs named maintenance sessions - linting, formatting, unit and system tests, coverage, and " +
		"documentation builds - against the current checkout. Sessions come from a built-in catalog and can be " +
		"overridden or extended with a YAML manifest. Invoked bare, all sessions run in catalog order.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessions(nil)
	},
}
