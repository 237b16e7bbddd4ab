package cmd

import (
	"errors"
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// errSessionsFailed signals that at least one requested session failed. The
// summary has already been written by the time this propagates; Execute maps
// it to a plain exit code 1 without usage noise.
var errSessionsFailed = errors.New("one or more sessions failed")

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgManifest    string
	cfgOutPath     string
	cfgEnvFile     string
	cfgPosargs     []string
	cfgTimeout     time.Duration
	cfgConnTimeout time.Duration
	cfgNoop        bool
	cfgVerbose     bool
	cfgFailFast    bool

	// Remote execution settings (--remote selects the SSH backend).
	cfgRemote     string
	cfgUser       string
	cfgPassword   string
	cfgKeyPath    string
	cfgPassphrase string
	cfgKnownHosts string
	cfgStrictHost bool
)

// Allow tests to stub dialing and command execution
var (
	dialSSHFunc          = dialSSH
	runLocalCommandFunc  = runLocalCommand
	runRemoteCommandFunc = runRemoteCommand
)
