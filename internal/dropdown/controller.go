// Package dropdown replaces a select control's popup with a searchable
// overlay.
//
// A Controller is bound to one anchor select for its whole life. It is
// CLOSED until the anchor is activated, OPEN while an overlay instance is
// mounted, and inert after Unmount. Every overlay instance is built fresh
// from the anchor's options and torn down completely on close.
package dropdown

import (
	"context"
	"log/slog"

	oteltrace "go.opentelemetry.io/otel/trace"

	"cleanselect/internal/config"
	"cleanselect/internal/dom"
	"cleanselect/internal/options"
	"cleanselect/internal/trace"
)

// Controller runs the dropdown state machine for one anchor.
type Controller struct {
	doc    *dom.Document
	anchor dom.Select
	cfg    config.Overlay

	ids    IDGenerator
	tracer oteltrace.Tracer
	log    *slog.Logger
	ctx    context.Context

	inst *instance

	handles []dom.Handle
	// ariaValue and ariaPresent snapshot the anchor's aria-haspopup
	// attribute at construction.
	ariaValue   string
	ariaPresent bool
	unmounted   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator overrides the UUID-based instance identifiers.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) { c.ids = g }
}

// WithTracer sets the tracer used for transition spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithContext sets the parent context of transition spans.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// New binds a controller to anchor. It attaches anchor and document
// listeners, snapshots aria-haspopup and sets it to "true". The listeners
// stay attached until Unmount.
func New(doc *dom.Document, anchor dom.Select, cfg config.Overlay, opts ...Option) *Controller {
	c := &Controller{
		doc:    doc,
		anchor: anchor,
		cfg:    cfg,
		ids:    UUIDs,
		tracer: trace.Tracer(),
		log:    slog.New(slog.DiscardHandler),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("anchor", anchor.ID)

	c.ariaValue, c.ariaPresent = anchor.Attr(dom.AttrHasPopup)
	anchor.SetAttr(dom.AttrHasPopup, "true")

	c.handles = []dom.Handle{
		anchor.On(dom.PointerDown, c.onAnchorPointer),
		anchor.On(dom.KeyDown, c.onAnchorKey),
		doc.On(dom.PointerDown, c.onDocumentEvent),
		doc.On(dom.KeyDown, c.onDocumentEvent),
	}
	return c
}

// IsOpen reports whether an overlay instance is mounted.
func (c *Controller) IsOpen() bool { return c.inst != nil }

// SearchText returns the search field's text, or "" when closed.
func (c *Controller) SearchText() string {
	if c.inst == nil {
		return ""
	}
	return c.inst.search.Value()
}

// Rows returns a copy of the mounted instance's rows, or nil when closed.
func (c *Controller) Rows() []options.Row {
	if c.inst == nil {
		return nil
	}
	return append([]options.Row(nil), c.inst.rows...)
}

// Overlay returns the mounted overlay's root element, or nil when closed.
func (c *Controller) Overlay() *dom.Element {
	if c.inst == nil {
		return nil
	}
	return c.inst.root
}

// Anchor returns the anchor control.
func (c *Controller) Anchor() dom.Select { return c.anchor }

// Close tears down the overlay instance, if any. It is idempotent.
func (c *Controller) Close() {
	c.close("api")
}

func (c *Controller) close(reason string) {
	if c.inst == nil {
		return
	}
	_, span := c.tracer.Start(c.ctx, trace.SpanClose, oteltrace.WithAttributes(
		trace.AnchorKey.String(c.anchor.ID),
		trace.OverlayKey.String(c.inst.root.ID),
		trace.ReasonKey.String(reason),
	))
	defer span.End()

	c.teardown()
	c.log.Debug("dropdown closed", "reason", reason)
}

// Unmount fully tears the controller down: it closes any overlay, removes
// every listener it attached and restores aria-haspopup. Only the first
// call has an effect.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true

	_, span := c.tracer.Start(c.ctx, trace.SpanUnmount, oteltrace.WithAttributes(
		trace.AnchorKey.String(c.anchor.ID),
	))
	defer span.End()

	c.close("unmount")
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil

	if c.ariaPresent {
		c.anchor.SetAttr(dom.AttrHasPopup, c.ariaValue)
	} else {
		c.anchor.RemoveAttr(dom.AttrHasPopup)
	}
	c.log.Debug("dropdown unmounted")
}

// open mounts a new overlay with the given search text.
func (c *Controller) open(search string) {
	if c.unmounted || c.inst != nil {
		return
	}
	_, span := c.tracer.Start(c.ctx, trace.SpanOpen)
	defer span.End()

	c.mount(search)
	span.SetAttributes(
		trace.AnchorKey.String(c.anchor.ID),
		trace.OverlayKey.String(c.inst.root.ID),
		trace.MobileKey.Bool(c.inst.mobile),
		trace.SearchLenKey.Int(len(search)),
		trace.VisibleRowKey.Int(options.VisibleCount(c.inst.rows)),
		trace.ThemeKey.String(c.cfg.Theme.String()),
	)
	c.log.Debug("dropdown opened", "overlay", c.inst.root.ID, "mobile", c.inst.mobile)
}

// toggle is the anchor's primary activation.
func (c *Controller) toggle() {
	if c.inst != nil {
		c.close("toggle")
		return
	}
	c.open("")
}

// choose writes value to the anchor, announces the change and closes.
func (c *Controller) choose(value string) {
	_, span := c.tracer.Start(c.ctx, trace.SpanSelect, oteltrace.WithAttributes(
		trace.AnchorKey.String(c.anchor.ID),
		trace.ValueKey.String(value),
	))
	defer span.End()

	c.anchor.SetValue(value)
	dom.Dispatch(&dom.Event{Type: dom.Change, Target: c.anchor.Element})
	c.close("select")
	c.doc.Focus(c.anchor.Element)
	c.log.Info("option selected", "value", value)
}

// relayout rebuilds the overlay in place after the viewport crossed the
// mobile breakpoint, keeping the search text.
func (c *Controller) relayout(mobile bool) {
	_, span := c.tracer.Start(c.ctx, trace.SpanRelayout, oteltrace.WithAttributes(
		trace.AnchorKey.String(c.anchor.ID),
		trace.MobileKey.Bool(mobile),
	))
	defer span.End()

	search := c.inst.search.Value()
	c.teardown()
	c.mount(search)
	c.log.Debug("dropdown relayout", "mobile", mobile)
}
