package cmd

import (
	"log/slog"
	"os"
	"time"
)

// stepPhase pairs a report phase label with the steps it covers.
type stepPhase struct {
	name  string
	steps []commandStep
}

// runSession drives one session end to end: guard evaluation, pre-run
// cleaning, install steps, run steps, and the optional coverage gate. Guards
// skip the session; a failing step or gate fails it and stops further steps.
// In noop mode the applicable command lines are recorded without executing.
func runSession(r runner, s *sessionEntry, posargs []string, defaultTimeout time.Duration, noop bool) yamlSessionRun {
	res := yamlSessionRun{Name: s.Name}

	if reason, skip := s.shouldSkip(); skip {
		slog.Debug("skipping session", "session", s.Name, "reason", reason)
		res.Status = statusSkipped
		res.Reason = reason
		return res
	}

	start := time.Now()
	phases := []stepPhase{
		{"install", s.Install},
		{"run", s.Run},
	}

	if noop {
		for _, ph := range phases {
			for _, step := range ph.steps {
				if step.SkipUnlessPath != "" {
					if _, err := os.Stat(step.SkipUnlessPath); err != nil {
						continue
					}
				}
				res.Steps = append(res.Steps, yamlStepResult{
					Title:   step.Title,
					Phase:   ph.name,
					Command: step.line(posargs),
				})
			}
		}
		res.Status = statusPlanned
		return res
	}

	// Clean paths first, matching the ignore-errors semantics of a pre-build
	// scrub: absence is fine, stale trees are removed.
	for _, p := range s.Clean {
		_ = os.RemoveAll(p)
	}

	for _, ph := range phases {
		for _, step := range ph.steps {
			if step.SkipUnlessPath != "" {
				if _, err := os.Stat(step.SkipUnlessPath); err != nil {
					slog.Debug("omitting step, path not present",
						"session", s.Name, "path", step.SkipUnlessPath)
					continue
				}
			}
			stepTimeout := step.perStepTimeout(defaultTimeout)
			slog.Debug("executing step", "session", s.Name, "phase", ph.name,
				"command", step.line(posargs))

			out, exitCode, runErr := r.runStep(step, posargs, stepTimeout)

			stepRes := yamlStepResult{
				Title:    step.Title,
				Phase:    ph.name,
				Command:  step.line(posargs),
				ExitCode: exitCode,
				Output:   string(out),
			}
			if stepTimeout > 0 {
				stepRes.Timeout = stepTimeout.String()
			}
			if runErr != nil {
				stepRes.Error = runErr.Error()
			}
			res.Steps = append(res.Steps, stepRes)

			if runErr != nil || exitCode != 0 {
				res.Status = statusFailed
				res.Duration = time.Since(start).Round(time.Millisecond).String()
				return res
			}
		}
	}

	if s.Coverage != nil {
		if err := s.Coverage.check(); err != nil {
			res.Status = statusFailed
			res.Reason = err.Error()
			res.Duration = time.Since(start).Round(time.Millisecond).String()
			return res
		}
	}

	res.Status = statusPassed
	res.Duration = time.Since(start).Round(time.Millisecond).String()
	return res
}
