// Package placement computes where the dropdown overlay goes.
package placement

import "cleanselect/internal/dom"

// Design constants, in layout units.
const (
	// MobileBreakpoint is the viewport width below which the overlay fills
	// the screen.
	MobileBreakpoint = 670
	MenuWidth        = 200
	MenuHeight       = 300
	// Margin separates an overlay placed below its anchor from the anchor.
	Margin = 5
)

// Geometry is the overlay's position and size. When FullScreen is set the
// overlay covers the whole viewport and the other fields are zero.
type Geometry struct {
	FullScreen bool
	Left       float64
	Top        float64
	Width      float64
	Height     float64
}

// IsMobile reports whether a viewport of the given width gets the
// full-screen layout.
func IsMobile(viewportWidth float64) bool {
	return viewportWidth < MobileBreakpoint
}

// Compute returns the overlay geometry for a viewport, document height and
// anchor rect. It has no state of its own.
func Compute(viewportWidth, viewportHeight, documentHeight float64, anchor dom.Rect) Geometry {
	if IsMobile(viewportWidth) {
		return Geometry{FullScreen: true}
	}

	left := anchor.X + anchor.W/2 - MenuWidth/2
	if left < 0 {
		left = 0
	}

	top := anchor.Bottom() + Margin
	if anchor.Bottom()+MenuHeight > documentHeight {
		// Flip above the anchor unless that would leave the top edge
		// off-screen, in which case overflowing the bottom is preferred.
		if above := anchor.Y - MenuHeight; above >= 0 {
			top = above
		}
	}

	return Geometry{
		Left:   left,
		Top:    top,
		Width:  MenuWidth,
		Height: MenuHeight,
	}
}

// Box converts the geometry into a positioned box. Full-screen geometry uses
// percentages so it follows the viewport without being recomputed.
func (g Geometry) Box() dom.Box {
	if g.FullScreen {
		return dom.Box{
			Left:   dom.Units(0),
			Top:    dom.Units(0),
			Width:  dom.Percent(100),
			Height: dom.Percent(100),
		}
	}
	return dom.Box{
		Left:   dom.Units(g.Left),
		Top:    dom.Units(g.Top),
		Width:  dom.Units(g.Width),
		Height: dom.Units(g.Height),
	}
}
