package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap lists the form's bindings. It implements help.KeyMap so the key
// bar is rendered by bubbles/help.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Close  key.Binding
	Move   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap returns the standard bindings. Bubble Tea reports space
// as " ".
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Close, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Move},
		{k.Open, k.Close},
		{k.Submit, k.Quit},
	}
}

// RenderKeyHelp renders the one-line key bar at the bottom of the form.
func RenderKeyHelp(k KeyMap, width int) string {
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h.View(k)
}
