package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// errExit1 stands in for the error a failing tool produces.
var errExit1 = errors.New("exit status 1")

// writeTemp creates a temp file with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig() {
	viper.Reset()
	viper.SetEnvPrefix("CHORERUN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// Reset flags to defaults and clear Changed status
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	cfgManifest = ""
	cfgOutPath = ""
	cfgEnvFile = ""
	cfgPosargs = nil
	cfgTimeout = 0
	cfgConnTimeout = 0
	cfgNoop = false
	cfgVerbose = false
	cfgFailFast = false
	cfgRemote = ""
	cfgUser = ""
	cfgPassword = ""
	cfgKeyPath = ""
	cfgPassphrase = ""
	cfgKnownHosts = ""
	cfgStrictHost = true
}

// stubLocalRunner replaces runLocalCommandFunc for the duration of a test and
// records every invocation as "command arg arg...".
func stubLocalRunner(t *testing.T, fn func(name string, args []string) ([]byte, int, error)) *[]string {
	t.Helper()
	orig := runLocalCommandFunc
	t.Cleanup(func() { runLocalCommandFunc = orig })
	calls := &[]string{}
	runLocalCommandFunc = func(name string, args []string, timeout time.Duration) ([]byte, int, error) {
		*calls = append(*calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
		return fn(name, args)
	}
	return calls
}

func TestRunExecute_ManifestSession_Success(t *testing.T) {
	resetConfig()
	calls := stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("ok\n"), 0, nil
	})

	tmp := t.TempDir()
	manifestPath := writeTemp(t, tmp, "manifests/m.yaml", `
name: Test Run
description: Run one session
sessions:
  - name: greet
    run:
      - command: echo
        args: ["hello world"]
        posargs: true
`)
	outPath := filepath.Join(tmp, "report.yaml")

	rootCmd.SetArgs([]string{
		"run", "greet",
		"--manifest", manifestPath,
		"--out", outPath,
		"--posargs=extra",
	})

	err := rootCmd.Execute()
	require.NoError(t, err)

	require.Equal(t, []string{"echo hello world extra"}, *calls)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(b)
	require.Contains(t, out, "name: Test Run")
	require.Contains(t, out, "description: Run one session")
	require.Contains(t, out, "run_id:")
	require.Contains(t, out, "status: passed")
	require.Contains(t, out, "echo 'hello world' extra")
}

func TestRunExecute_FailingSession_ReturnsSentinel(t *testing.T) {
	resetConfig()
	stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("boom\n"), 1, errExit1
	})

	tmp := t.TempDir()
	manifestPath := writeTemp(t, tmp, "m.yaml", `
name: N
description: D
sessions:
  - name: broken
    run:
      - command: false
`)
	outPath := filepath.Join(tmp, "report.yaml")

	rootCmd.SetArgs([]string{"run", "broken", "--manifest", manifestPath, "--out", outPath})
	err := rootCmd.Execute()
	require.ErrorIs(t, err, errSessionsFailed)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(b), "status: failed")
	require.Contains(t, string(b), "exit_code: 1")
}

func TestRunExecute_GuardedSession_SkippedNotFailed(t *testing.T) {
	resetConfig()
	calls := stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("ok\n"), 0, nil
	})

	tmp := t.TempDir()
	manifestPath := writeTemp(t, tmp, "m.yaml", `
name: N
description: D
sessions:
  - name: needs_creds
    requires_env: ["CHORERUN_TEST_MISSING_CRED"]
    run:
      - command: echo
`)
	outPath := filepath.Join(tmp, "report.yaml")
	t.Setenv("CHORERUN_TEST_MISSING_CRED", "")

	rootCmd.SetArgs([]string{"run", "needs_creds", "--manifest", manifestPath, "--out", outPath})
	err := rootCmd.Execute()
	require.NoError(t, err)
	require.Empty(t, *calls)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(b), "status: skipped")
	require.Contains(t, string(b), "CHORERUN_TEST_MISSING_CRED must be set")
}

func TestRunExecute_UnknownSession_Errors(t *testing.T) {
	resetConfig()
	rootCmd.SetArgs([]string{"run", "no_such_session"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown session")
}

func TestRunExecute_BuiltinCatalog_FullPass(t *testing.T) {
	resetConfig()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	// Credential variable unset: system and snippets must skip.
	t.Setenv(credentialEnvVar, "")

	stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		// The cover session reads back the JSON it asked the coverage tool
		// to produce; emulate that side effect.
		if name == "coverage" && len(args) > 0 && args[0] == "json" {
			err := os.WriteFile("coverage.json",
				[]byte(`{"totals": {"percent_covered": 99.42}}`), 0o600)
			return []byte("wrote coverage.json\n"), 0, err
		}
		return []byte("ok\n"), 0, nil
	})

	outPath := filepath.Join(t.TempDir(), "report.yaml")
	rootCmd.SetArgs([]string{"run", "--out", outPath})
	err = rootCmd.Execute()
	require.NoError(t, err)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(b)
	for _, name := range []string{"lint", "blacken", "lint_setup_py", "unit", "cover", "system", "snippets", "docs", "docfx"} {
		require.Contains(t, out, "name: "+name)
	}
	// system and snippets skip on a bare checkout without credentials
	require.Equal(t, 2, strings.Count(out, "status: skipped"))
	require.Equal(t, 7, strings.Count(out, "status: passed"))
}

func TestRunExecute_Noop_RecordsPlansWithoutExecuting(t *testing.T) {
	resetConfig()
	calls := stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("ok\n"), 0, nil
	})

	tmp := t.TempDir()
	outPath := filepath.Join(tmp, "report.yaml")
	rootCmd.SetArgs([]string{"run", "lint", "--noop", "--out", outPath})
	err := rootCmd.Execute()
	require.NoError(t, err)
	require.Empty(t, *calls)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(b)
	require.Contains(t, out, "status: planned")
	require.Contains(t, out, "black --check google tests docs")
	require.Contains(t, out, "python -m pip install flake8 black")
}

func TestRunExecute_EnvFileFromEnvironment_ReachesGuards(t *testing.T) {
	resetConfig()
	calls := stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("ok\n"), 0, nil
	})

	tmp := t.TempDir()
	envPath := writeTemp(t, tmp, "creds.env", "CHORERUN_TEST_GUARD_CRED=set\n")
	manifestPath := writeTemp(t, tmp, "m.yaml", `
name: N
description: D
sessions:
  - name: guarded
    requires_env: ["CHORERUN_TEST_GUARD_CRED"]
    run:
      - command: echo
`)
	// The dashed flag name maps to an underscored variable.
	t.Setenv("CHORERUN_ENV_FILE", envPath)
	t.Cleanup(func() { _ = os.Unsetenv("CHORERUN_TEST_GUARD_CRED") })

	rootCmd.SetArgs([]string{"run", "guarded", "--manifest", manifestPath})
	err := rootCmd.Execute()
	require.NoError(t, err)
	require.Equal(t, "set", os.Getenv("CHORERUN_TEST_GUARD_CRED"))
	require.Equal(t, []string{"echo"}, *calls)
}

func TestRunExecute_NoopRemote_DoesNotDial(t *testing.T) {
	resetConfig()
	origDial := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = origDial })
	dialed := false
	dialSSHFunc = func(target, user, password, keyPath, passphrase, knownHostsPath string, strictHost bool, dialTimeout time.Duration) (*ssh.Client, error) {
		dialed = true
		return nil, errors.New("unreachable")
	}

	outPath := filepath.Join(t.TempDir(), "report.yaml")
	rootCmd.SetArgs([]string{"run", "lint", "--noop", "--remote", "203.0.113.1:22", "--user", "dev", "--out", outPath})
	err := rootCmd.Execute()
	require.NoError(t, err)
	require.False(t, dialed)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(b), "status: planned")
}

func TestRunExecute_FailFast_StopsAfterFirstFailure(t *testing.T) {
	resetConfig()
	stubLocalRunner(t, func(name string, args []string) ([]byte, int, error) {
		return []byte("boom\n"), 1, errExit1
	})

	tmp := t.TempDir()
	manifestPath := writeTemp(t, tmp, "m.yaml", `
name: N
description: D
sessions:
  - name: first
    run:
      - command: false
  - name: second
    run:
      - command: false
`)
	outPath := filepath.Join(tmp, "report.yaml")

	rootCmd.SetArgs([]string{"run", "first", "second", "--manifest", manifestPath, "--out", outPath, "--fail-fast"})
	err := rootCmd.Execute()
	require.ErrorIs(t, err, errSessionsFailed)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(b), "name: first")
	require.NotContains(t, string(b), "name: second")
}

func TestRunExecute_RemoteRequiresUser(t *testing.T) {
	resetConfig()
	rootCmd.SetArgs([]string{"run", "lint", "--remote", "127.0.0.1:22"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "--user is required")
}

func TestRunExecute_RemoteRejectsRoot(t *testing.T) {
	resetConfig()
	rootCmd.SetArgs([]string{"run", "lint", "--remote", "127.0.0.1:22", "--user", "root"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "root account cannot be used")
}
