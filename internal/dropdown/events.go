package dropdown

import (
	"slices"

	"cleanselect/internal/dom"
)

// Key names as reported by the terminal host.
const (
	keyEnter     = "enter"
	keySpace     = " "
	keyEsc       = "esc"
	keyArrowUp   = "up"
	keyArrowDown = "down"
)

func isActivation(key string) bool {
	return key == keyEnter || key == keySpace
}

// isAlphanumeric reports whether key is a single ASCII letter or digit.
func isAlphanumeric(key string) bool {
	if len(key) != 1 {
		return false
	}
	b := key[0]
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

// onAnchorPointer focuses the anchor, then toggles.
func (c *Controller) onAnchorPointer(ev *dom.Event) {
	ev.PreventDefault()
	c.doc.Focus(c.anchor.Element)
	c.toggle()
}

func (c *Controller) onAnchorKey(ev *dom.Event) {
	switch {
	case isActivation(ev.Key):
		ev.PreventDefault()
		c.toggle()
	case isAlphanumeric(ev.Key):
		ev.PreventDefault()
		if c.inst == nil {
			c.open(ev.Key)
			return
		}
		c.inst.search.SetValue(c.inst.search.Value() + ev.Key)
		c.refilter()
		c.doc.Focus(c.inst.search)
	}
}

// onDocumentEvent closes the overlay when a pointer or key event lands
// outside both the overlay and the anchor.
func (c *Controller) onDocumentEvent(ev *dom.Event) {
	if c.inst == nil {
		return
	}
	if c.inst.root.Contains(ev.Target) || c.anchor.Contains(ev.Target) {
		return
	}
	c.close("outside")
}

func (c *Controller) onSearchKey(ev *dom.Event) {
	switch ev.Key {
	case keyEnter:
		ev.PreventDefault()
	case keyEsc:
		ev.PreventDefault()
		c.dismiss()
	case keyArrowDown:
		ev.PreventDefault()
		if rows := c.inst.visibleRows(); len(rows) > 0 {
			c.doc.Focus(rows[0])
		}
	}
}

func (c *Controller) onRowKey(ev *dom.Event) {
	switch {
	case isActivation(ev.Key):
		ev.PreventDefault()
		c.onRowActivate(ev)
	case ev.Key == keyEsc:
		ev.PreventDefault()
		c.dismiss()
	case ev.Key == keyArrowUp || ev.Key == keyArrowDown:
		ev.PreventDefault()
		c.moveFocus(ev.CurrentTarget, ev.Key == keyArrowDown)
	}
}

// onRowActivate resolves the activated row's value and selects it.
func (c *Controller) onRowActivate(ev *dom.Event) {
	if c.inst == nil {
		return
	}
	row := ev.Target.Closest(dom.ByAttr(AttrRowValue))
	if row == nil || !c.inst.root.Contains(row) {
		c.log.Warn("row activation without a value", "target", ev.Target.Tag)
		return
	}
	value, _ := row.Attr(AttrRowValue)
	c.choose(value)
}

// moveFocus steps focus to the next or previous visible row. Stepping up
// from the first row returns to the search field.
func (c *Controller) moveFocus(from *dom.Element, down bool) {
	rows := c.inst.visibleRows()
	i := slices.Index(rows, from)
	if i < 0 {
		return
	}
	switch {
	case down && i+1 < len(rows):
		c.doc.Focus(rows[i+1])
	case !down && i == 0:
		c.doc.Focus(c.inst.search)
	case !down:
		c.doc.Focus(rows[i-1])
	}
}

// dismiss closes the overlay and hands focus back to the anchor.
func (c *Controller) dismiss() {
	c.close("dismiss")
	c.doc.Focus(c.anchor.Element)
}
