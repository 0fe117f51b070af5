package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Spinner animation frames, a braille scan pattern.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// clearLine returns the cursor to column 0 and erases the row, so each
// animation frame and the final line overwrite the previous frame.
const clearLine = "\r\x1b[2K"

// Spinner animates a label while a silent subprocess runs. The deploy uses it
// for the SSH connectivity probe, whose only output is its exit status. Start
// begins the animation; Success or Fail replaces it with a resolution line
// carrying the elapsed time.
type Spinner struct {
	w     io.Writer
	label string

	mu       sync.Mutex
	running  bool
	frame    int
	started  time.Time
	stop     chan struct{}
	finished chan struct{}
}

// NewSpinner creates a spinner that animates label on w.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{w: w, label: label}
}

// Start begins the animation. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.started = time.Now()
	s.stop = make(chan struct{})
	s.finished = make(chan struct{})

	go s.spin()
}

// Success resolves the spinner with a completed line.
func (s *Spinner) Success() {
	s.resolve(SymbolComplete, ColorSuccess)
}

// Fail resolves the spinner with a failure line.
func (s *Spinner) Fail() {
	s.resolve(SymbolFail, ColorError)
}

// spin owns all animation writes; resolve joins it before printing the final
// line, so w never sees interleaved output.
func (s *Spinner) spin() {
	defer close(s.finished)

	ticker := time.NewTicker(60 * time.Millisecond)
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame++
			s.mu.Unlock()
			s.draw()
		}
	}
}

func (s *Spinner) draw() {
	s.mu.Lock()
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	color := GradientColors[(s.frame/2)%len(GradientColors)]
	s.mu.Unlock()

	style := lipgloss.NewStyle().Foreground(color)
	fmt.Fprintf(s.w, "%s%s %s...", clearLine, style.Render(frame), s.label)
}

func (s *Spinner) resolve(symbol string, color lipgloss.Color) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	started := s.started
	close(s.stop)
	s.mu.Unlock()

	<-s.finished

	elapsed := formatDuration(time.Since(started))
	fmt.Fprintf(s.w, "%s%s %s %s\n",
		clearLine,
		lipgloss.NewStyle().Foreground(color).Render(symbol),
		s.label,
		lipgloss.NewStyle().Foreground(ColorMuted).Render(elapsed),
	)
}

// formatDuration keeps two decimals under a tenth of a second so quick
// probes still show a nonzero time.
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
