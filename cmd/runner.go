package cmd

import (
	"time"
)

// runner executes a single command step and reports combined output, the
// process exit code, and any transport or timeout error. Implementations must
// not interpret non-zero exit codes as transport errors: callers decide what a
// failing tool means for the session.
type runner interface {
	runStep(step commandStep, posargs []string, timeout time.Duration) ([]byte, int, error)
}

// localRunner executes steps as child processes of chorerun itself.
type localRunner struct{}

func (localRunner) runStep(step commandStep, posargs []string, timeout time.Duration) ([]byte, int, error) {
	args := step.Args
	if step.Posargs && len(posargs) > 0 {
		args = append(append([]string{}, step.Args...), posargs...)
	}
	return runLocalCommandFunc(step.Command, args, timeout)
}

// sshRunner executes steps on a remote host, one exec channel per step. The
// rendered command line is shell-quoted because the remote side parses it.
type sshRunner struct {
	client sessionClient
}

func (r sshRunner) runStep(step commandStep, posargs []string, timeout time.Duration) ([]byte, int, error) {
	return runRemoteCommandFunc(r.client, step.line(posargs), timeout)
}
