// Package dom is a small element tree that stands in for a document.
//
// It carries exactly what an enhanced select control needs: attributes,
// classes, text, a value, visibility, bounds in layout units, positioned
// boxes, focus, bubbling events with explicit listener handles, resize
// observers and scoped style sheets. Hosts (the terminal UI, tests) build
// the tree and translate their own input into Dispatch calls.
package dom

import "slices"

// MaxDepth bounds every ancestor walk. Trees deeper than this are treated as
// if the chain ended there.
const MaxDepth = 512

// Rect is an axis-aligned box in layout units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Length is a box dimension, either absolute units or a percentage of the
// viewport.
type Length struct {
	Value   float64
	Percent bool
}

// Units returns an absolute length.
func Units(v float64) Length { return Length{Value: v} }

// Percent returns a viewport-relative length.
func Percent(v float64) Length { return Length{Value: v, Percent: true} }

func (l Length) resolve(extent float64) float64 {
	if l.Percent {
		return extent * l.Value / 100
	}
	return l.Value
}

// Box positions an element relative to the viewport.
type Box struct {
	Left, Top, Width, Height Length
}

// Resolve converts the box to a rect for the given viewport size.
func (b Box) Resolve(viewportW, viewportH float64) Rect {
	return Rect{
		X: b.Left.resolve(viewportW),
		Y: b.Top.resolve(viewportH),
		W: b.Width.resolve(viewportW),
		H: b.Height.resolve(viewportH),
	}
}

// Element is a node in the tree.
type Element struct {
	Tag  string
	ID   string
	Text string

	// Sheet is set on "style" elements.
	Sheet *StyleSheet

	classes   []string
	attrs     map[string]string
	value     string
	hidden    bool
	bounds    Rect
	box       *Box
	parent    *Element
	children  []*Element
	listeners map[EventType][]*listener
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Parent returns the parent element, or nil for a detached or root element.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in order. The slice must not be
// modified.
func (e *Element) Children() []*Element { return e.children }

// Append adds child as the last child of e, detaching it from any previous
// parent. Appending an ancestor of e panics.
func (e *Element) Append(child *Element) *Element {
	if child.Contains(e) {
		panic("dom: append would create a cycle")
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Attrs returns a copy of the element's attributes.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// AddClass adds a class name if not already present.
func (e *Element) AddClass(name string) {
	if name != "" && !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Value returns the element's value (inputs and selects).
func (e *Element) Value() string { return e.value }

// SetValue sets the element's value.
func (e *Element) SetValue(v string) { e.value = v }

// Hidden reports whether the element is excluded from rendering.
func (e *Element) Hidden() bool { return e.hidden }

// SetHidden toggles rendering of the element without removing it.
func (e *Element) SetHidden(h bool) { e.hidden = h }

// Bounds returns the element's laid-out rect in units.
func (e *Element) Bounds() Rect { return e.bounds }

// SetBounds records the element's laid-out rect.
func (e *Element) SetBounds(r Rect) { e.bounds = r }

// Box returns the positioned box, if any.
func (e *Element) Box() (Box, bool) {
	if e.box == nil {
		return Box{}, false
	}
	return *e.box, true
}

// SetBox positions the element relative to the viewport.
func (e *Element) SetBox(b Box) { e.box = &b }

// Focusable reports whether the element can take keyboard focus.
func (e *Element) Focusable() bool {
	return e.Tag == "input" || e.Tag == "select" || e.HasAttr("tabindex")
}

// Contains reports whether target is e or one of its descendants. The walk
// from target upward stops after MaxDepth steps.
func (e *Element) Contains(target *Element) bool {
	if e == nil {
		return false
	}
	n := target
	for depth := 0; n != nil && depth < MaxDepth; depth++ {
		if n == e {
			return true
		}
		n = n.parent
	}
	return false
}

// Closest returns the nearest of e and its ancestors that satisfies match,
// or nil. The walk stops after MaxDepth steps.
func (e *Element) Closest(match func(*Element) bool) *Element {
	n := e
	for depth := 0; n != nil && depth < MaxDepth; depth++ {
		if match(n) {
			return n
		}
		n = n.parent
	}
	return nil
}

// Query returns the first descendant of e (depth-first, document order)
// that satisfies match.
func (e *Element) Query(match func(*Element) bool) *Element {
	for _, c := range e.children {
		if match(c) {
			return c
		}
		if found := c.Query(match); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant of e that satisfies match, in document
// order.
func (e *Element) QueryAll(match func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.children {
		fn(c)
		c.walk(fn)
	}
}

// root returns the topmost ancestor of e, bounded by MaxDepth.
func (e *Element) root() *Element {
	n := e
	for depth := 0; n.parent != nil && depth < MaxDepth; depth++ {
		n = n.parent
	}
	return n
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool { return e.Tag == tag }
}

// ByAttr matches elements carrying the attribute.
func ByAttr(name string) func(*Element) bool {
	return func(e *Element) bool { return e.HasAttr(name) }
}
