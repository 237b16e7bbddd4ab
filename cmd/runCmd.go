package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd executes the requested sessions by name; with no arguments every
// session in the effective catalog runs. Failures are collected rather than
// aborting the run (unless --fail-fast), matching the expectation that a
// full maintenance pass reports all broken sessions at once.
var runCmd = &cobra.Command{
	Use:   "run [session...]",
	Short: "Execute the named sessions (default: all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessions(args)
	},
}

// runSessions is the shared execution flow behind the root command and `run`.
func runSessions(names []string) error {
	setupLogging(cfgVerbose)

	mf := defaultManifest()
	if cfgManifest != "" {
		user, err := loadManifest(cfgManifest)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		mf.merge(user)
	}

	// Env file may hold the credentials the guard conditions look for, so it
	// loads before any session is considered.
	envFile := cfgEnvFile
	if envFile == "" {
		envFile = mf.EnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	sessions, err := resolveSessions(mf, names)
	if err != nil {
		return err
	}

	r, cleanup, err := newRunner()
	if err != nil {
		return err
	}
	defer cleanup()

	report := newYAMLReport(mf)
	report.Posargs = cfgPosargs

	for _, s := range sessions {
		slog.Debug("starting session", "session", s.Name)
		run := runSession(r, s, cfgPosargs, cfgTimeout, cfgNoop)
		report.addSession(run)
		writeSessionLine(os.Stdout, run)
		if run.Status == statusFailed && cfgFailFast {
			break
		}
	}

	writeSummary(os.Stdout, report)

	if cfgOutPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfgOutPath), 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		outFile, err := os.Create(cfgOutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := writeYAMLReport(outFile, report); err != nil {
			_ = outFile.Close()
			return fmt.Errorf("failed to write YAML report: %w", err)
		}
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Done. Report written to %s\n", cfgOutPath)
	}

	if _, failed, _ := report.counts(); failed > 0 {
		return errSessionsFailed
	}
	return nil
}

// resolveSessions maps requested names onto the effective catalog, preserving
// request order. An empty request selects every session in catalog order.
func resolveSessions(mf *manifest, names []string) ([]*sessionEntry, error) {
	if len(names) == 0 {
		all := make([]*sessionEntry, 0, len(mf.Sessions))
		for i := range mf.Sessions {
			all = append(all, &mf.Sessions[i])
		}
		return all, nil
	}
	selected := make([]*sessionEntry, 0, len(names))
	for _, n := range names {
		s := mf.findSession(n)
		if s == nil {
			return nil, fmt.Errorf("unknown session %q (available: %s)",
				n, strings.Join(mf.sessionNames(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// newRunner selects the execution backend: local child processes by default,
// or a shared SSH connection when --remote is set. The returned cleanup
// closes the connection.
func newRunner() (runner, func(), error) {
	// Noop mode never executes a step, so planning must not require a
	// reachable host.
	if cfgRemote == "" || cfgNoop {
		return localRunner{}, func() {}, nil
	}
	if cfgUser == "" {
		return nil, nil, errors.New("--user is required with --remote")
	}
	if u := strings.TrimSpace(cfgUser); u == "root" {
		// Disallow privileged account usage
		return nil, nil, errors.New("root account cannot be used with --remote")
	}
	client, err := dialSSHFunc(cfgRemote, cfgUser, cfgPassword, cfgKeyPath, cfgPassphrase, cfgKnownHosts,
		cfgStrictHost, cfgConnTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("ssh connection failed: %w", err)
	}
	cleanup := func() {
		if client != nil {
			_ = client.Close()
		}
	}
	return sshRunner{client: sshClientWrapper{client}}, cleanup, nil
}
