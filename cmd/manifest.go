package cmd

// manifest models the YAML schema consumed by chorerun. It captures report
// metadata, an optional env file holding credentials, and the list of session
// definitions. A manifest given via --manifest overrides built-in sessions by
// name and appends any sessions the built-in catalog does not know.
type manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	EnvFile     string         `yaml:"env_file,omitempty"`
	Sessions    []sessionEntry `yaml:"sessions"`
}

// findSession returns the session with the given name, or nil.
func (m *manifest) findSession(name string) *sessionEntry {
	for i := range m.Sessions {
		if m.Sessions[i].Name == name {
			return &m.Sessions[i]
		}
	}
	return nil
}

// sessionNames returns the session names in declaration order.
func (m *manifest) sessionNames() []string {
	names := make([]string, 0, len(m.Sessions))
	for _, s := range m.Sessions {
		names = append(names, s.Name)
	}
	return names
}

// merge overlays the sessions of other onto m: same-named sessions replace the
// existing definition in place, new ones are appended. Metadata (name,
// description, env_file) from other wins when non-empty.
func (m *manifest) merge(other *manifest) {
	if other.Name != "" {
		m.Name = other.Name
	}
	if other.Description != "" {
		m.Description = other.Description
	}
	if other.EnvFile != "" {
		m.EnvFile = other.EnvFile
	}
	for _, s := range other.Sessions {
		if existing := m.findSession(s.Name); existing != nil {
			*existing = s
			continue
		}
		m.Sessions = append(m.Sessions, s)
	}
}
