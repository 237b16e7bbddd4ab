package cmd

// sessionEntry describes one named maintenance session: the guard conditions
// deciding whether it runs at all, paths cleaned before execution, the
// dependency-install steps, and the steps that invoke the session's tool.
type sessionEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Every listed environment variable must be non-empty or the session
	// is skipped (not failed).
	RequiresEnv []string `yaml:"requires_env,omitempty"`
	// At least one listed path must exist or the session is skipped.
	RequiresAnyPath []string `yaml:"requires_any_path,omitempty"`
	// Paths removed (recursively, ignoring absence) before any step runs.
	Clean []string `yaml:"clean,omitempty"`
	// Install steps run before run steps, in declaration order.
	Install []commandStep `yaml:"install,omitempty"`
	Run     []commandStep `yaml:"run"`
	// Optional runner-side coverage gate applied after the run steps.
	Coverage *coverageGate `yaml:"coverage,omitempty"`
}
