package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered block positioned on the screen in cells.
type Layer struct {
	X, Y  int
	Lines []string
}

// OverlayStack holds layers painted over the base screen, bottom first.
type OverlayStack struct {
	Stack []Layer
}

// Push adds a layer on top.
func (s *OverlayStack) Push(l Layer) {
	s.Stack = append(s.Stack, l)
}

// Pop removes and returns the top layer.
func (s *OverlayStack) Pop() (Layer, bool) {
	if len(s.Stack) == 0 {
		return Layer{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top layer without removing it.
func (s *OverlayStack) Peek() (Layer, bool) {
	if len(s.Stack) == 0 {
		return Layer{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of layers.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Reset drops every layer.
func (s *OverlayStack) Reset() {
	s.Stack = s.Stack[:0]
}

// Composite paints every layer onto base in stack order.
func (s *OverlayStack) Composite(base string) string {
	for _, l := range s.Stack {
		base = Splice(base, l.Lines, l.X, l.Y)
	}
	return base
}

// Splice replaces a rectangular region of view with the overlay lines,
// starting at cell (x, y). Cutting is ANSI-aware so styling on both sides of
// the overlay survives. Lines outside the view are dropped.
func Splice(view string, lines []string, x, y int) string {
	if len(lines) == 0 {
		return view
	}
	viewLines := strings.Split(view, "\n")
	width := ansi.StringWidth(lines[0])

	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(viewLines) {
			continue
		}
		orig := viewLines[row]
		origWidth := ansi.StringWidth(orig)

		var b strings.Builder
		if x > 0 {
			prefix := ansi.Truncate(orig, x, "")
			b.WriteString(prefix)
			if w := ansi.StringWidth(prefix); w < x {
				b.WriteString(strings.Repeat(" ", x-w))
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(line)
		b.WriteString("\x1b[0m")
		if end := x + width; end < origWidth {
			b.WriteString(ansi.TruncateLeft(orig, end, ""))
		}
		viewLines[row] = b.String()
	}
	return strings.Join(viewLines, "\n")
}
