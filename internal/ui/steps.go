package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StepDisplay renders deploy step status to an output writer. Steps whose
// subprocess streams to the terminal get an announce line and then own the
// screen; quiet steps resolve through a Spinner instead.
type StepDisplay struct {
	w io.Writer
}

// NewStepDisplay creates a step display writing to w.
func NewStepDisplay(w io.Writer) *StepDisplay {
	return &StepDisplay{w: w}
}

// Writer returns the underlying output writer.
func (sd *StepDisplay) Writer() io.Writer {
	return sd.w
}

// Announce renders a step that is about to run.
// Shows: ◐ Building (release) for aarch64-unknown-linux-gnu...
func (sd *StepDisplay) Announce(label string) {
	style := lipgloss.NewStyle().Foreground(ColorSecondary)
	fmt.Fprintf(sd.w, "%s %s...\n", style.Render(SymbolProgress), label)
}

// Info renders an informational line in the info color.
func (sd *StepDisplay) Info(line string) {
	style := lipgloss.NewStyle().Foreground(ColorInfo)
	fmt.Fprintln(sd.w, style.Render(line))
}

// Plain renders an unstyled line.
func (sd *StepDisplay) Plain(line string) {
	fmt.Fprintln(sd.w, line)
}

// Done renders the final success line.
// Shows: ✓ Deployment complete.
func (sd *StepDisplay) Done(label string) {
	style := lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	fmt.Fprintf(sd.w, "%s %s\n", style.Render(SymbolSuccess), label)
}
