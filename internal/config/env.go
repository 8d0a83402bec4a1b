package config

import (
	"fmt"
	"strconv"
)

const (
	// ThemeEnv overrides the theme of every field.
	ThemeEnv = "CLEANSELECT_THEME"
	// CellWidthEnv and CellHeightEnv override the layout units per cell.
	CellWidthEnv  = "CLEANSELECT_CELL_WIDTH"
	CellHeightEnv = "CLEANSELECT_CELL_HEIGHT"
)

// CellMetrics is the size of one terminal cell in layout units.
type CellMetrics struct {
	Width  float64
	Height float64
}

// DefaultCellMetrics approximates a common terminal font.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// EnvSettings returns the overlay settings set in the environment.
func EnvSettings(getenv func(string) string) Settings {
	return Settings{Theme: getenv(ThemeEnv)}
}

// CellMetricsFromEnv returns DefaultCellMetrics with any environment
// overrides applied.
func CellMetricsFromEnv(getenv func(string) string) (CellMetrics, error) {
	m := DefaultCellMetrics
	for _, o := range []struct {
		env string
		dst *float64
	}{
		{CellWidthEnv, &m.Width},
		{CellHeightEnv, &m.Height},
	} {
		s := getenv(o.env)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return CellMetrics{}, fmt.Errorf("%s: want a positive number, got %q", o.env, s)
		}
		*o.dst = v
	}
	return m, nil
}
