package cli

import (
	"io"

	"github.com/fatih/color"
)

// consoleReporter prints generator progress as coloured status lines.
type consoleReporter struct {
	w       io.Writer
	verbose bool
}

func (r *consoleReporter) Start(msg string) {
	color.New(color.FgCyan).Fprintf(r.w, "• %s\n", msg)
}

// Update lines are only shown in verbose mode; the final status line
// summarises the run otherwise.
func (r *consoleReporter) Update(msg string) {
	if r.verbose {
		color.New(color.Faint).Fprintf(r.w, "  %s\n", msg)
	}
}

func (r *consoleReporter) Succeed(msg string) {
	color.New(color.FgGreen).Fprintf(r.w, "✓ %s\n", msg)
}

func (r *consoleReporter) Fail(msg string) {
	color.New(color.FgRed).Fprintf(r.w, "✗ %s\n", msg)
}
