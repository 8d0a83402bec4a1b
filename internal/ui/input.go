package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cleanselect/internal/dom"
)

// target returns the element key events are delivered to.
func (v *FormView) target() *dom.Element {
	if el := v.Doc.Focused(); el != nil {
		return el
	}
	return v.Doc.Body()
}

// handleKey dispatches a keydown to the focused element, then runs the
// default action unless a listener prevented it.
func (v *FormView) handleKey(msg tea.KeyMsg) tea.Cmd {
	target := v.target()
	ev := &dom.Event{Type: dom.KeyDown, Target: target, Key: msg.String()}
	dom.Dispatch(ev)
	if ev.DefaultPrevented() {
		return nil
	}

	switch {
	case key.Matches(msg, v.Keys.Next):
		v.moveFocus(true)
		return nil
	case key.Matches(msg, v.Keys.Prev):
		v.moveFocus(false)
		return nil
	}

	if target.Tag == "input" && v.Doc.Connected(target) {
		return v.editInput(target, msg)
	}
	return nil
}

// moveFocus runs Tab traversal over the document's focusable elements.
func (v *FormView) moveFocus(forward bool) {
	v.focus.Order = v.Doc.Focusables()
	v.focus.Current = v.Doc.Focused()
	if forward {
		v.Doc.Focus(v.focus.Next())
	} else {
		v.Doc.Focus(v.focus.Prev())
	}
}

// input returns the editing model for an input element, synced to the
// element's value.
func (v *FormView) input(el *dom.Element) *textinput.Model {
	if m, ok := v.inputs[el]; ok {
		if m.Value() != el.Value() {
			m.SetValue(el.Value())
			m.CursorEnd()
		}
		return m
	}
	m := textinput.New()
	m.Prompt = ""
	m.Cursor.SetMode(cursor.CursorStatic)
	if p, ok := el.Attr("placeholder"); ok {
		m.Placeholder = p
	}
	m.SetValue(el.Value())
	m.CursorEnd()
	v.inputs[el] = &m
	return &m
}

// editInput applies a key to an input element's text and announces the
// change with an input event.
func (v *FormView) editInput(el *dom.Element, msg tea.KeyMsg) tea.Cmd {
	m := v.input(el)
	m.Focus()
	updated, cmd := m.Update(msg)
	*m = updated
	if m.Value() != el.Value() {
		el.SetValue(m.Value())
		dom.Dispatch(&dom.Event{Type: dom.Input, Target: el})
	}
	return cmd
}

// pruneInputs forgets editing models of removed elements.
func (v *FormView) pruneInputs() {
	for el := range v.inputs {
		if !v.Doc.Connected(el) {
			delete(v.inputs, el)
		}
	}
}

// hitTarget returns the element under a cell, or the body.
func (v *FormView) hitTarget(x, y int) *dom.Element {
	if r := v.hits.Test(x, y); r != nil {
		if el, ok := r.Data.(*dom.Element); ok && v.Doc.Connected(el) {
			return el
		}
	}
	return v.Doc.Body()
}

// handleMouse turns a left press into pointerdown plus focus, and a release
// over the pressed element into click.
func (v *FormView) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		target := v.hitTarget(msg.X, msg.Y)
		v.pressed = target
		ev := &dom.Event{Type: dom.PointerDown, Target: target}
		dom.Dispatch(ev)
		if !ev.DefaultPrevented() {
			v.Doc.Focus(target.Closest((*dom.Element).Focusable))
		}
	case tea.MouseActionRelease:
		pressed := v.pressed
		v.pressed = nil
		if pressed == nil || !v.Doc.Connected(pressed) {
			return
		}
		if target := v.hitTarget(msg.X, msg.Y); target == pressed {
			dom.Dispatch(&dom.Event{Type: dom.Click, Target: target})
		}
	}
}
