package cmd

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Session status values recorded in reports and summaries.
const (
	statusPassed  = "passed"
	statusFailed  = "failed"
	statusSkipped = "skipped"
	statusPlanned = "planned"
)

// yamlReport is the top-level structure serialized to the output YAML file.
// It mirrors the high-level expectations of consumers: run metadata, the
// pass-through arguments in effect, and per-session results.
type yamlReport struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Generated   string           `yaml:"generated"`
	RunID       string           `yaml:"run_id"`
	Posargs     []string         `yaml:"posargs,omitempty"`
	Sessions    []yamlSessionRun `yaml:"sessions,omitempty"`
}

// yamlSessionRun groups the results for a single session, including the
// guard-skip reason when the session never ran.
type yamlSessionRun struct {
	Name     string           `yaml:"name"`
	Status   string           `yaml:"status"`
	Reason   string           `yaml:"reason,omitempty"`
	Duration string           `yaml:"duration,omitempty"`
	Steps    []yamlStepResult `yaml:"steps,omitempty"`
}

// yamlStepResult records the outcome of a single install or run step.
type yamlStepResult struct {
	Title    string `yaml:"title,omitempty"`
	Phase    string `yaml:"phase"`
	Command  string `yaml:"command"`
	Timeout  string `yaml:"timeout,omitempty"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// newYAMLReport constructs a report seeded with manifest metadata, a unique
// run identifier, and a generated timestamp.
func newYAMLReport(mf *manifest) *yamlReport {
	return &yamlReport{
		Name:        mf.Name,
		Description: mf.Description,
		Generated:   time.Now().Format(time.RFC3339),
		RunID:       uuid.NewString(),
	}
}

// addSession appends a completed session run to the report.
func (r *yamlReport) addSession(run yamlSessionRun) {
	r.Sessions = append(r.Sessions, run)
}

// counts tallies sessions by status for the terminal summary and exit code.
func (r *yamlReport) counts() (passed, failed, skipped int) {
	for _, s := range r.Sessions {
		switch s.Status {
		case statusFailed:
			failed++
		case statusSkipped:
			skipped++
		case statusPassed, statusPlanned:
			passed++
		}
	}
	return
}

// writeYAMLReport serializes the report to YAML with indentation and writes to
// the provided writer in a buffered manner for efficiency.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}
