// Package styles provides shared lipgloss styles for tinty's terminal output.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Accent highlights names and keys (pink)
	Accent = lipgloss.Color("212")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for placeholder and hint text (gray)
	Muted = lipgloss.Color("240")
)

var (
	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Placeholder is shown in place of an unset value.
const Placeholder = "-"
