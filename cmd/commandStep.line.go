package cmd

import "strings"

// line builds the fully rendered command line by appending arguments with
// safe shell quoting. It is used for remote execution and for planned-command
// output; local execution passes argv to the process directly.
func (c *commandStep) line(extra []string) string {
	args := c.Args
	if c.Posargs && len(extra) > 0 {
		args = append(append([]string{}, c.Args...), extra...)
	}
	if len(args) == 0 {
		return c.Command
	}
	// Quote args to be safe for a shell
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, shellQuote(a))
	}
	return strings.TrimSpace(c.Command + " " + strings.Join(quoted, " "))
}
