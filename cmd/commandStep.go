package cmd

type commandStep struct {
	// "command" is preferred; "cmd" also accepted during unmarshal
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	// Optional display title for the step in summaries and reports
	Title string `yaml:"title,omitempty"`
	// Optional per-step timeout like "30s"; overrides the global if set
	Timeout string `yaml:"timeout,omitempty"`
	// When true, CLI pass-through arguments (--posargs) are appended
	Posargs bool `yaml:"posargs,omitempty"`
	// When set, the step runs only if the path exists; it is silently
	// omitted otherwise (session-level guards decide skip vs run).
	SkipUnlessPath string `yaml:"skip_unless_path,omitempty"`
}
