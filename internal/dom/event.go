package dom

// EventType names an event.
type EventType string

const (
	PointerDown EventType = "pointerdown"
	Click       EventType = "click"
	KeyDown     EventType = "keydown"
	Input       EventType = "input"
	Change      EventType = "change"
)

// Event is delivered to listeners on the target and then on each ancestor.
type Event struct {
	Type   EventType
	Target *Element
	// Key uses Bubble Tea key names: "enter", " ", "esc", "a", "up".
	Key string

	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault asks the host to skip its default action.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation stops delivery to further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Listener handles an event.
type Listener func(*Event)

type listener struct {
	fn      Listener
	removed bool
}

// Handle detaches one listener registration.
type Handle struct {
	el  *Element
	typ EventType
	l   *listener
}

// Remove detaches the listener. Calling it more than once is a no-op.
func (h Handle) Remove() {
	if h.l == nil || h.l.removed {
		return
	}
	h.l.removed = true
	ls := h.el.listeners[h.typ]
	for i, l := range ls {
		if l == h.l {
			h.el.listeners[h.typ] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
}

// On registers fn for events of type t reaching e.
func (e *Element) On(t EventType, fn Listener) Handle {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[t] = append(e.listeners[t], l)
	return Handle{el: e, typ: t, l: l}
}

// ListenerCount returns how many listeners of type t are attached to e.
func (e *Element) ListenerCount(t EventType) int {
	return len(e.listeners[t])
}

// Dispatch delivers ev to its target and bubbles it up the ancestor chain
// captured at dispatch time. Listeners removed mid-dispatch are skipped.
func Dispatch(ev *Event) {
	if ev.Target == nil {
		return
	}
	var path []*Element
	n := ev.Target
	for depth := 0; n != nil && depth < MaxDepth; depth++ {
		path = append(path, n)
		n = n.parent
	}
	for _, node := range path {
		ls := append([]*listener(nil), node.listeners[ev.Type]...)
		ev.CurrentTarget = node
		for _, l := range ls {
			if l.removed {
				continue
			}
			l.fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
}
