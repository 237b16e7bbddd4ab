package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestMain provides a fast, centralized Docker availability check for the
// tools test suite so dependent tests do not hang on an unreachable daemon.
// When Docker is absent the tests still run; they skip themselves.
func TestMain(m *testing.M) {
	if _, err := exec.LookPath("docker"); err != nil {
		fmt.Fprintln(os.Stderr, "Docker not found in PATH; container tests will skip")
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := exec.CommandContext(ctx, "docker", "info").Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Docker daemon not available: %v; container tests will skip\n", err)
	}

	os.Exit(m.Run())
}
