package dom

import "slices"

// Document owns the root of a tree, the viewport, focus and resize
// observers.
type Document struct {
	root *Element
	body *Element

	width, height float64
	focused       *Element
	observers     []*Observer
}

// NewDocument creates an empty document with the given viewport size in
// units.
func NewDocument(width, height float64) *Document {
	root := NewElement("#document")
	body := root.Append(NewElement("body"))
	return &Document{root: root, body: body, width: width, height: height}
}

// Root returns the document node. Document-level listeners live here.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// On registers a document-level listener.
func (d *Document) On(t EventType, fn Listener) Handle {
	return d.root.On(t, fn)
}

// Connected reports whether el is attached to this document.
func (d *Document) Connected(el *Element) bool {
	return el != nil && d.root.Contains(el)
}

// Viewport returns the viewport size in units.
func (d *Document) Viewport() (width, height float64) {
	return d.width, d.height
}

// ScrollHeight returns the height of the document content: the viewport
// height or the lowest laid-out element, whichever is larger.
func (d *Document) ScrollHeight() float64 {
	h := d.height
	d.root.walk(func(e *Element) {
		if _, positioned := e.Box(); positioned {
			return
		}
		if b := e.bounds.Bottom(); b > h {
			h = b
		}
	})
	return h
}

// Resize updates the viewport and notifies resize observers synchronously.
func (d *Document) Resize(width, height float64) {
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	for _, o := range slices.Clone(d.observers) {
		if !o.disconnected {
			o.fn()
		}
	}
}

// Observer watches viewport size changes.
type Observer struct {
	doc          *Document
	fn           func()
	disconnected bool
}

// ObserveResize calls fn after every viewport size change until the
// returned observer is disconnected.
func (d *Document) ObserveResize(fn func()) *Observer {
	o := &Observer{doc: d, fn: fn}
	d.observers = append(d.observers, o)
	return o
}

// Disconnect stops notifications. It is idempotent.
func (o *Observer) Disconnect() {
	if o == nil || o.disconnected {
		return
	}
	o.disconnected = true
	if i := slices.Index(o.doc.observers, o); i >= 0 {
		o.doc.observers = slices.Delete(o.doc.observers, i, i+1)
	}
}

// ObserverCount returns the number of connected resize observers.
func (d *Document) ObserverCount() int { return len(d.observers) }

// Focus moves keyboard focus to el. A nil or detached element clears focus.
func (d *Document) Focus(el *Element) {
	if !d.Connected(el) {
		el = nil
	}
	d.focused = el
}

// Focused returns the focused element, or nil if focus was cleared or the
// focused element has since been removed.
func (d *Document) Focused() *Element {
	if d.focused != nil && !d.Connected(d.focused) {
		d.focused = nil
	}
	return d.focused
}

// Focusables returns the connected, visible, focusable elements in document
// order.
func (d *Document) Focusables() []*Element {
	var out []*Element
	var visit func(e *Element)
	visit = func(e *Element) {
		for _, c := range e.children {
			if c.hidden {
				continue
			}
			if c.Focusable() {
				out = append(out, c)
			}
			visit(c)
		}
	}
	visit(d.root)
	return out
}

// StyleSheets returns the sheets of connected style elements in document
// order.
func (d *Document) StyleSheets() []*StyleSheet {
	var out []*StyleSheet
	d.root.walk(func(e *Element) {
		if e.Tag == "style" && e.Sheet != nil {
			out = append(out, e.Sheet)
		}
	})
	return out
}
