package cmd

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// coverageGate enforces a minimum coverage percentage after a session's run
// steps complete. The JSON file is expected in the layout produced by
// `coverage json` (totals.percent_covered).
type coverageGate struct {
	JSON      string  `yaml:"json"`
	FailUnder float64 `yaml:"fail_under"`
}

// check reads the coverage JSON and compares the total percentage against the
// gate. A missing or malformed file fails the gate: if the gate is configured,
// the session is expected to have produced the report.
func (g *coverageGate) check() error {
	b, err := os.ReadFile(g.JSON)
	if err != nil {
		return fmt.Errorf("coverage gate: %w", err)
	}
	pct := gjson.GetBytes(b, "totals.percent_covered")
	if !pct.Exists() {
		return fmt.Errorf("coverage gate: %s has no totals.percent_covered", g.JSON)
	}
	if pct.Float() < g.FailUnder {
		return fmt.Errorf("coverage gate: %.2f%% covered, below required %.2f%%",
			pct.Float(), g.FailUnder)
	}
	return nil
}
