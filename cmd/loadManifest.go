package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// loadManifest reads and validates a YAML manifest, ensuring the presence of
// required top-level fields (name, description) and that every session has a
// name, at least one run step, and non-empty commands throughout. Guard
// evaluation happens at run time because guards describe the checkout being
// operated on, not the manifest itself.
func loadManifest(path string) (*manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mf := &manifest{}
	if err := yamlUnmarshal(b, mf); err != nil {
		return nil, err
	}
	if mf.Name == "" {
		return nil, errors.New("manifest.name is required")
	}
	if mf.Description == "" {
		return nil, errors.New("manifest.description is required")
	}
	if err := validateSessions(mf.Sessions); err != nil {
		return nil, err
	}
	return mf, nil
}

// validateSessions enforces the structural invariants shared by built-in and
// manifest-provided sessions.
func validateSessions(sessions []sessionEntry) error {
	seen := map[string]bool{}
	for i, s := range sessions {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("sessions[%d].name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("sessions[%d]: duplicate session name %q", i, s.Name)
		}
		seen[s.Name] = true
		if len(s.Run) == 0 {
			return fmt.Errorf("sessions[%d] (%s): at least one run step is required", i, s.Name)
		}
		for j, c := range s.Install {
			if err := validateStep(c); err != nil {
				return fmt.Errorf("sessions[%d] (%s): install[%d]: %w", i, s.Name, j, err)
			}
		}
		for j, c := range s.Run {
			if err := validateStep(c); err != nil {
				return fmt.Errorf("sessions[%d] (%s): run[%d]: %w", i, s.Name, j, err)
			}
		}
		if s.Coverage != nil {
			if strings.TrimSpace(s.Coverage.JSON) == "" {
				return fmt.Errorf("sessions[%d] (%s): coverage.json path is required", i, s.Name)
			}
			if s.Coverage.FailUnder < 0 || s.Coverage.FailUnder > 100 {
				return fmt.Errorf("sessions[%d] (%s): coverage.fail_under must be within [0,100]", i, s.Name)
			}
		}
	}
	return nil
}

// validateStep rejects malformed steps at load time so a manifest typo does
// not silently fall back to defaults during a run.
func validateStep(c commandStep) error {
	if strings.TrimSpace(c.Command) == "" {
		return errors.New("command is required")
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
	}
	return nil
}
