package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd prints the effective session catalog, including guard conditions so
// operators can see why a session might be skipped on the current checkout.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sessions in the effective catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf := defaultManifest()
		if cfgManifest != "" {
			user, err := loadManifest(cfgManifest)
			if err != nil {
				return fmt.Errorf("failed to read manifest: %w", err)
			}
			mf.merge(user)
		}

		bw := bufio.NewWriter(os.Stdout)
		for _, s := range mf.Sessions {
			_, _ = fmt.Fprintf(bw, "%s", nameStyle.Render(s.Name))
			if s.Description != "" {
				_, _ = fmt.Fprintf(bw, " - %s", s.Description)
			}
			_, _ = fmt.Fprintln(bw)
			if len(s.RequiresEnv) > 0 {
				_, _ = fmt.Fprintf(bw, "    requires env: %s\n", strings.Join(s.RequiresEnv, ", "))
			}
			if len(s.RequiresAnyPath) > 0 {
				_, _ = fmt.Fprintf(bw, "    requires one of: %s\n", strings.Join(s.RequiresAnyPath, ", "))
			}
		}
		return bw.Flush()
	},
}
