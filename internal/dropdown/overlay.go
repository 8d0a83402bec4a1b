package dropdown

import (
	"strconv"

	"cleanselect/internal/dom"
	"cleanselect/internal/options"
	"cleanselect/internal/placement"
	"cleanselect/internal/theme"
)

// Element ids, classes and attributes of a mounted overlay.
const (
	ScopePrefix     = "custom-select-"
	HighlightPrefix = "highlighted-option-"

	ClassOverlay     = "custom-select"
	ClassMobile      = "mobile"
	ClassOptions     = "options"
	ClassDescription = "description"

	AttrRowValue = "data-value"
	AttrOption   = "data-option"
)

// instance is one mounted overlay. It is never reused.
type instance struct {
	root   *dom.Element
	search *dom.Element
	list   *dom.Element

	rows   []options.Row
	rowEls []*dom.Element

	observer *dom.Observer
	mobile   bool
}

// anchorOptions reads the anchor's option children.
func (c *Controller) anchorOptions() []options.Option {
	els := c.anchor.Options()
	out := make([]options.Option, len(els))
	for i, el := range els {
		value, _ := el.Attr(dom.AttrValue)
		desc, _ := el.Attr(dom.AttrDescription)
		out[i] = options.Option{
			Value:       value,
			Label:       el.Text,
			Description: desc,
			Selected:    el.HasAttr(dom.AttrSelected),
		}
	}
	return out
}

// mount builds an overlay instance, attaches it to the body, starts the
// viewport watcher and focuses the search field.
func (c *Controller) mount(search string) {
	id := c.ids()
	scope := ScopePrefix + id
	highlight := HighlightPrefix + id

	vw, vh := c.doc.Viewport()
	geo := placement.Compute(vw, vh, c.doc.ScrollHeight(), c.anchor.Bounds())

	inst := &instance{mobile: geo.FullScreen}

	root := dom.NewElement("div")
	root.ID = scope
	root.AddClass(ClassOverlay)
	if inst.mobile {
		root.AddClass(ClassMobile)
	}
	root.SetBox(geo.Box())
	inst.root = root

	form := root.Append(dom.NewElement("form"))
	input := form.Append(dom.NewElement("input"))
	input.SetAttr("type", "search")
	input.SetAttr("placeholder", c.cfg.Placeholder)
	input.SetValue(search)
	input.On(dom.Input, func(*dom.Event) { c.refilter() })
	input.On(dom.KeyDown, c.onSearchKey)
	inst.search = input

	inst.list = root.Append(dom.NewElement("div"))
	inst.list.AddClass(ClassOptions)

	inst.rows = options.Build(c.anchorOptions(), search)
	inst.rowEls = make([]*dom.Element, len(inst.rows))
	for i, r := range inst.rows {
		el := inst.list.Append(dom.NewElement("div"))
		el.ID = scope + "-option-" + strconv.Itoa(i)
		el.SetAttr(AttrRowValue, r.Value)
		el.SetAttr(AttrOption, "")
		el.SetAttr("tabindex", "0")
		if r.Highlighted {
			el.AddClass(highlight)
		}
		title := el.Append(dom.NewElement("span"))
		title.Text = r.Label
		// An empty description counts as absent.
		if r.Description != "" {
			desc := el.Append(dom.NewElement("div"))
			desc.AddClass(ClassDescription)
			desc.Text = r.Description
		}
		el.SetHidden(!r.Visible)
		el.On(dom.Click, c.onRowActivate)
		el.On(dom.KeyDown, c.onRowKey)
		inst.rowEls[i] = el
	}

	style := root.Append(dom.NewElement("style"))
	style.Sheet = theme.NewSheet(scope, highlight, c.cfg.Theme, c.cfg.DarkHighlight, c.cfg.LightHighlight)

	c.doc.Body().Append(root)
	inst.observer = c.doc.ObserveResize(c.onResize)
	c.inst = inst
	c.doc.Focus(input)
}

// teardown disconnects the watcher and removes the overlay subtree. The
// overlay's own listeners go with it.
func (c *Controller) teardown() {
	inst := c.inst
	if inst == nil {
		return
	}
	c.inst = nil
	inst.observer.Disconnect()
	inst.root.Remove()
}

// refilter applies the search field's text to the rows.
func (c *Controller) refilter() {
	inst := c.inst
	if inst == nil {
		return
	}
	options.Filter(inst.rows, inst.search.Value())
	for i, r := range inst.rows {
		inst.rowEls[i].SetHidden(!r.Visible)
	}
	if f := c.doc.Focused(); f != nil && f.Hidden() && inst.root.Contains(f) {
		c.doc.Focus(inst.search)
	}
}

// onResize rebuilds the overlay when the viewport crosses the mobile
// breakpoint. Anchored geometry is otherwise left as placed.
func (c *Controller) onResize() {
	if c.inst == nil {
		return
	}
	vw, _ := c.doc.Viewport()
	if mobile := placement.IsMobile(vw); mobile != c.inst.mobile {
		c.relayout(mobile)
	}
}

// visibleRows returns the row elements that pass the filter.
func (inst *instance) visibleRows() []*dom.Element {
	var out []*dom.Element
	for i, r := range inst.rows {
		if r.Visible {
			out = append(out, inst.rowEls[i])
		}
	}
	return out
}
