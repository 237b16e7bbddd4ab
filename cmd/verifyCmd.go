package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a session manifest YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgManifest == "" {
			return errors.New("--manifest is required (path to YAML)")
		}
		mf, err := loadManifest(cfgManifest)
		if err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		// Overlay onto the built-in catalog as run would, so name collisions
		// and structural problems surface the same way in both paths.
		merged := defaultManifest()
		merged.merge(mf)
		if err := validateSessions(merged.Sessions); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, "Manifest OK")
		return nil
	},
}
