package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors use ANSI codes for broad terminal compatibility. Lip Gloss
// degrades them automatically on NO_COLOR and dumb terminals.
const (
	ColorSuccess   lipgloss.Color = "2" // Green
	ColorError     lipgloss.Color = "1" // Red
	ColorInfo      lipgloss.Color = "6" // Cyan
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// GradientColors cycle through the spinner animation (pink, purple, cyan,
// green).
var GradientColors = []lipgloss.Color{
	"#ff5fd2",
	"#af87ff",
	"#5fd7ff",
	"#5fff87",
}
