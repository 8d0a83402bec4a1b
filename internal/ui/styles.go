package ui

import (
	"github.com/charmbracelet/lipgloss"

	"cleanselect/internal/dom"
)

// Form colors (ANSI 256). Overlay colors come from the overlay's own style
// sheet instead.
const (
	ColorAccent    = "86"  // Titles
	ColorHighlight = "205" // Focused field, key hints
	ColorDanger    = "196" // Errors
	ColorMuted     = "241" // Hints, labels
	ColorText      = "252" // Field text
)

// Styles contains the form's shared styles.
var Styles = struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style // Closed select control
	FieldFocused lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style // "No matches" inside an overlay
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Field: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Italic(true).
		Faint(true),
}

// colorStyle turns computed element colors into a lipgloss style. Unset
// colors leave the terminal default.
func colorStyle(c dom.Colors) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.Background != "" {
		s = s.Background(lipgloss.Color(c.Background))
	}
	if c.Foreground != "" {
		s = s.Foreground(lipgloss.Color(c.Foreground))
	}
	return s
}

// borderStyle frames an overlay in its computed colors.
func borderStyle(c dom.Colors) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if c.Background != "" {
		s = s.BorderBackground(lipgloss.Color(c.Background))
	}
	if c.Foreground != "" {
		s = s.BorderForeground(lipgloss.Color(c.Foreground))
	}
	return s
}
