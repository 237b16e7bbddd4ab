package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeSessionLine writes one styled status line as a session finishes, so
// long runs stream progress instead of staying silent until the summary.
func writeSessionLine(w io.Writer, run yamlSessionRun) {
	line := fmt.Sprintf("%s %s", nameStyle.Render(run.Name),
		statusStyle(run.Status).Render(strings.ToUpper(run.Status)))
	if run.Duration != "" {
		line += fmt.Sprintf(" (%s)", run.Duration)
	}
	if run.Reason != "" {
		line += fmt.Sprintf(": %s", run.Reason)
	}
	_, _ = fmt.Fprintln(w, line)
}

// writeSummary writes the final tally after all requested sessions ran.
func writeSummary(w io.Writer, r *yamlReport) {
	bw := bufio.NewWriter(w)
	passed, failed, skipped := r.counts()
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 40))
	for _, run := range r.Sessions {
		marker := statusStyle(run.Status).Render("*")
		_, _ = fmt.Fprintf(bw, "%s %s: %s\n", marker, run.Name, run.Status)
	}
	_, _ = fmt.Fprintf(bw, "%d passed, %d failed, %d skipped\n", passed, failed, skipped)
	_ = bw.Flush()
}
