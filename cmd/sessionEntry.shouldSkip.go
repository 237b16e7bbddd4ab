package cmd

import (
	"fmt"
	"os"
	"strings"
)

// shouldSkip evaluates the session's guard conditions against the process
// environment and filesystem. It returns a human-readable reason when the
// session must be skipped. Guards skip, they never fail: a missing credential
// or absent test tree is an expected state, not an error.
func (s *sessionEntry) shouldSkip() (string, bool) {
	for _, name := range s.RequiresEnv {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			return fmt.Sprintf("environment variable %s must be set", name), true
		}
	}
	if len(s.RequiresAnyPath) > 0 {
		found := false
		for _, p := range s.RequiresAnyPath {
			if _, err := os.Stat(p); err == nil {
				found = true
				break
			}
		}
		if !found {
			return fmt.Sprintf("none of the required paths exist: %s",
				strings.Join(s.RequiresAnyPath, ", ")), true
		}
	}
	return "", false
}
