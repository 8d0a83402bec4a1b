// Package config resolves overlay settings from anchor attributes, form
// files and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"cleanselect/internal/theme"
)

// Anchor attributes read when a dropdown is attached.
const (
	AttrSearchText     = "data-search-text"
	AttrForceTheme     = "data-force-theme"
	AttrDarkHighlight  = "data-dark-highlight-color"
	AttrLightHighlight = "data-light-highlight-color"
)

// DefaultPlaceholder is shown in an empty search field.
const DefaultPlaceholder = "Search..."

// ErrInvalidTheme is returned for a theme name other than light, dark or empty.
var ErrInvalidTheme = errors.New("invalid theme")

// Overlay is the resolved, read-only configuration of one dropdown.
type Overlay struct {
	Placeholder    string
	Theme          theme.Mode
	DarkHighlight  string
	LightHighlight string
}

// Default returns the configuration used when nothing is set.
func Default() Overlay {
	return Overlay{
		Placeholder:    DefaultPlaceholder,
		Theme:          theme.ModeSystem,
		DarkHighlight:  theme.DefaultDarkHighlight,
		LightHighlight: theme.DefaultLightHighlight,
	}
}

// ParseMode maps a theme name to a Mode. The empty string follows the system.
func ParseMode(s string) (theme.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return theme.ModeSystem, nil
	case "light":
		return theme.ModeLight, nil
	case "dark":
		return theme.ModeDark, nil
	}
	return theme.ModeSystem, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// FromAttributes resolves an Overlay from anchor attributes. Missing or
// empty attributes fall back to Default.
func FromAttributes(attrs map[string]string) (Overlay, error) {
	cfg := Default()
	if v := attrs[AttrSearchText]; v != "" {
		cfg.Placeholder = v
	}
	if v := attrs[AttrDarkHighlight]; v != "" {
		cfg.DarkHighlight = v
	}
	if v := attrs[AttrLightHighlight]; v != "" {
		cfg.LightHighlight = v
	}
	mode, err := ParseMode(attrs[AttrForceTheme])
	if err != nil {
		return Overlay{}, fmt.Errorf("%s: %w", AttrForceTheme, err)
	}
	cfg.Theme = mode
	return cfg, nil
}
