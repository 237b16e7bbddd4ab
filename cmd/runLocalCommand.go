package cmd

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// runLocalCommand executes a single local command and returns combined output
// and exit code. A zero timeout disables the deadline. Timeouts surface as
// context.DeadlineExceeded with exit code -1 so callers can distinguish them
// from tool failures.
func runLocalCommand(name string, args []string, timeout time.Duration) ([]byte, int, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	b, err := cmd.CombinedOutput()
	if err == nil {
		return b, 0, nil
	}
	if ctx.Err() != nil {
		return b, -1, context.DeadlineExceeded
	}
	// Try to derive exit status
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return b, ee.ExitCode(), err
	}
	return b, -1, err
}
