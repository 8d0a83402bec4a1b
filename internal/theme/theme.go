// Package theme builds the scoped style sheet injected with every overlay.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"cleanselect/internal/dom"
)

// Mode selects the overlay color scheme.
type Mode int

const (
	// ModeSystem follows the terminal's background.
	ModeSystem Mode = iota
	ModeLight
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "system"
	}
}

// Brand highlight colors used when the form does not set its own.
const (
	DefaultDarkHighlight  = "#0176ff"
	DefaultLightHighlight = "#77b9fc"
)

// Fixed scheme colors.
const (
	lightBackground = "#e1e1e1"
	lightForeground = "#000"
	darkBackground  = "#333"
	darkForeground  = "#fff"
	darkInputBg     = "#202020"
)

// NewSheet returns the rules for one overlay instance. scope is the overlay
// container's id and highlightClass the class carried by the highlighted
// row; both are generated per instance so sheets never collide.
func NewSheet(scope, highlightClass string, mode Mode, darkHighlight, lightHighlight string) *dom.StyleSheet {
	id := "#" + scope
	hl := "." + highlightClass
	var rules []dom.Rule

	switch mode {
	case ModeDark:
		rules = append(rules,
			dom.Rule{Selector: id, Background: darkBackground, Foreground: darkForeground},
			dom.Rule{Selector: hl, Background: darkHighlight, Foreground: darkForeground},
			dom.Rule{Selector: id + " input", Background: darkInputBg, Foreground: darkForeground},
		)
	default:
		rules = append(rules,
			dom.Rule{Selector: id, Background: lightBackground, Foreground: lightForeground},
			dom.Rule{Selector: hl, Background: lightHighlight, Foreground: lightForeground},
		)
	}

	if mode == ModeSystem {
		rules = append(rules,
			dom.Rule{Selector: id, Media: dom.MediaDark, Background: darkBackground, Foreground: darkForeground},
			dom.Rule{Selector: id + " input", Media: dom.MediaDark, Background: darkInputBg, Foreground: darkForeground},
			dom.Rule{Selector: hl, Media: dom.MediaDark, Background: darkHighlight, Foreground: darkForeground},
		)
	}

	return &dom.StyleSheet{Scope: scope, Rules: rules}
}

// DetectDark reports whether the terminal has a dark background. It answers
// the "follow system" media query and may block briefly while the terminal
// is queried, so hosts call it once at startup.
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}
