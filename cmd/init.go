package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to environment
// variables via Viper, and registers all subcommands. This wiring ensures a
// consistent configuration surface across run/list/verify and keeps
// environment overrides predictable for operators.
func init() {
	// Persistent flags (inherited by subcommands like `run`)
	rootCmd.PersistentFlags().StringVarP(&cfgManifest, "manifest", "m", "", "Path to YAML session manifest overlaying the built-in catalog")
	rootCmd.PersistentFlags().StringVarP(&cfgOutPath, "out", "o", "", "Path to YAML run report (omit to skip the report)")
	rootCmd.PersistentFlags().StringVar(&cfgEnvFile, "env-file", "", "Dotenv file loaded before guard evaluation (or set CHORERUN_ENV_FILE)")
	rootCmd.PersistentFlags().StringArrayVar(&cfgPosargs, "posargs", nil, "Extra arguments appended to steps that accept pass-through args (repeatable)")
	rootCmd.PersistentFlags().DurationVar(&cfgTimeout, "cmd-timeout", 0, "Per-step timeout (e.g., 30s). 0 disables")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout for --remote")
	rootCmd.PersistentFlags().BoolVar(&cfgNoop, "noop", false, "Do not execute steps; record planned command strings instead")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cfgFailFast, "fail-fast", false, "Stop at the first failed session instead of running the rest")

	rootCmd.PersistentFlags().StringVar(&cfgRemote, "remote", "", "Run steps on a remote host over SSH (FQDN/IP:port)")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "SSH username for --remote")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "SSH password (or set CHORERUN_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set CHORERUN_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")

	// Bind env with Viper
	_ = viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	_ = viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.PersistentFlags().Lookup("cmd-timeout"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("noop", rootCmd.PersistentFlags().Lookup("noop"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("fail-fast", rootCmd.PersistentFlags().Lookup("fail-fast"))
	_ = viper.BindPFlag("remote", rootCmd.PersistentFlags().Lookup("remote"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))

	viper.SetEnvPrefix("CHORERUN")
	// Dashed flag names map to underscored env vars (CHORERUN_ENV_FILE,
	// CHORERUN_FAIL_FAST, ...); a dash is not a valid env var character.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("manifest"); v != "" {
			cfgManifest = v
		}
		if v := viper.GetString("out"); v != "" {
			cfgOutPath = v
		}
		if v := viper.GetString("env-file"); v != "" {
			cfgEnvFile = v
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgTimeout = d
			}
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("remote"); v != "" {
			cfgRemote = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if viper.IsSet("noop") {
			cfgNoop = viper.GetBool("noop")
		}
		if viper.IsSet("verbose") {
			cfgVerbose = viper.GetBool("verbose")
		}
		if viper.IsSet("fail-fast") {
			cfgFailFast = viper.GetBool("fail-fast")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
}
