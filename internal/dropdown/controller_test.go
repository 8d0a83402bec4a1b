package dropdown

import (
	"testing"

	"github.com/google/uuid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cleanselect/internal/config"
	"cleanselect/internal/dom"
	"cleanselect/internal/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	doc     *dom.Document
	anchor  dom.Select
	c       *Controller
	changes int
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	doc := dom.NewDocument(1024, 768)
	anchor := dom.NewSelect("fruit")
	anchor.AddOption("a", "Apple", "", false)
	anchor.AddOption("b", "Banana", "yellow", false)
	anchor.AddOption("c", "Cherry", "", true)
	anchor.SetBounds(dom.Rect{X: 300, Y: 100, W: 100, H: 20})
	doc.Body().Append(anchor.Element)

	f := &fixture{doc: doc, anchor: anchor}
	anchor.On(dom.Change, func(*dom.Event) { f.changes++ })

	opts = append([]Option{WithIDGenerator(Sequential("t"))}, opts...)
	f.c = New(doc, anchor, config.Default(), opts...)
	t.Cleanup(f.c.Unmount)
	return f
}

func dispatch(typ dom.EventType, target *dom.Element, key string) *dom.Event {
	ev := &dom.Event{Type: typ, Target: target, Key: key}
	dom.Dispatch(ev)
	return ev
}

func press(target *dom.Element) *dom.Event { return dispatch(dom.PointerDown, target, "") }

func keyDown(target *dom.Element, key string) *dom.Event {
	return dispatch(dom.KeyDown, target, key)
}

// typeSearch replaces the search text the way the host's field editor does.
func (f *fixture) typeSearch(s string) {
	f.c.inst.search.SetValue(s)
	dispatch(dom.Input, f.c.inst.search, "")
}

func (f *fixture) row(value string) *dom.Element {
	return f.c.Overlay().Query(func(e *dom.Element) bool {
		v, ok := e.Attr(AttrRowValue)
		return ok && v == value
	})
}

func (f *fixture) visible() []string {
	var out []string
	for _, r := range f.c.Rows() {
		if r.Visible {
			out = append(out, r.Value)
		}
	}
	return out
}

func TestToggle(t *testing.T) {
	f := newFixture(t)
	require.False(t, f.c.IsOpen())

	ev := press(f.anchor.Element)
	assert.True(t, ev.DefaultPrevented())
	require.True(t, f.c.IsOpen())
	assert.Equal(t, "", f.c.SearchText())
	assert.Equal(t, "custom-select-t1", f.c.Overlay().ID)
	assert.True(t, f.doc.Connected(f.c.Overlay()))
	assert.Equal(t, f.c.inst.search, f.doc.Focused(), "focus lands in the search field")
	assert.Equal(t, 1, f.doc.ObserverCount())

	root := f.c.Overlay()
	press(f.anchor.Element)
	assert.False(t, f.c.IsOpen())
	assert.False(t, f.doc.Connected(root))
	assert.Equal(t, 0, f.doc.ObserverCount())
	assert.Equal(t, "c", f.anchor.Value(), "toggle never changes the value")
	assert.Zero(t, f.changes)
}

func TestPointerCloseRefocusesAnchor(t *testing.T) {
	f := newFixture(t)

	press(f.anchor.Element)
	require.True(t, f.c.IsOpen())
	press(f.anchor.Element)
	require.False(t, f.c.IsOpen())
	assert.Same(t, f.anchor.Element, f.doc.Focused())

	keyDown(f.anchor.Element, "enter")
	assert.True(t, f.c.IsOpen(), "Enter on the focused anchor reopens")
}

func TestToggle_Keys(t *testing.T) {
	for _, key := range []string{"enter", " "} {
		f := newFixture(t)
		keyDown(f.anchor.Element, key)
		assert.True(t, f.c.IsOpen(), "%q opens", key)
		keyDown(f.anchor.Element, key)
		assert.False(t, f.c.IsOpen(), "%q closes", key)
	}
}

func TestAlphanumericPrepopulatesSearch(t *testing.T) {
	f := newFixture(t)

	for _, key := range []string{"tab", "ctrl+a", "?", "up"} {
		keyDown(f.anchor.Element, key)
		require.False(t, f.c.IsOpen(), "%q does not open", key)
	}

	ev := keyDown(f.anchor.Element, "b")
	assert.True(t, ev.DefaultPrevented())
	require.True(t, f.c.IsOpen())
	assert.Equal(t, "b", f.c.SearchText())
	assert.Equal(t, []string{"b"}, f.visible())
	assert.Equal(t, f.c.inst.search, f.doc.Focused())
}

func TestAlphanumericWhileOpenAppends(t *testing.T) {
	f := newFixture(t)
	keyDown(f.anchor.Element, "a")
	keyDown(f.anchor.Element, "N")

	assert.Equal(t, "aN", f.c.SearchText())
	assert.Equal(t, []string{"b"}, f.visible())
	assert.Equal(t, "custom-select-t1", f.c.Overlay().ID, "same instance")
}

func TestSearchFilters(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)

	f.typeSearch("an")
	assert.Equal(t, []string{"b"}, f.visible())
	assert.True(t, f.row("a").Hidden())
	assert.False(t, f.row("b").Hidden())

	f.typeSearch("yel")
	assert.Empty(t, f.visible(), "descriptions are not searched")
	assert.Len(t, f.c.Rows(), 3, "rows are kept")

	f.typeSearch("")
	assert.Equal(t, []string{"a", "b", "c"}, f.visible())
}

func TestRowsReflectAnchor(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)

	rows := f.c.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Banana", rows[1].Label)
	assert.Equal(t, "yellow", rows[1].Description)
	assert.True(t, rows[2].Highlighted)

	assert.True(t, f.row("c").HasClass("highlighted-option-t1"))
	assert.False(t, f.row("a").HasClass("highlighted-option-t1"))
	assert.NotNil(t, f.row("b").Query(dom.ByTag("div")), "description line")
	assert.Nil(t, f.row("a").Query(dom.ByTag("div")))

	search := f.c.inst.search
	placeholder, _ := search.Attr("placeholder")
	assert.Equal(t, config.DefaultPlaceholder, placeholder)
}

func TestEmptyDescriptionRendersNoLine(t *testing.T) {
	f := newFixture(t)
	f.anchor.Options()[0].SetAttr(dom.AttrDescription, "")
	press(f.anchor.Element)

	assert.Equal(t, "", f.c.Rows()[0].Description)
	assert.Nil(t, f.row("a").Query(dom.ByTag("div")), "an empty description counts as absent")
}

func TestRowActivation(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)

	title := f.row("b").Query(dom.ByTag("span"))
	require.NotNil(t, title)
	dispatch(dom.Click, title, "")

	assert.Equal(t, "b", f.anchor.Value())
	assert.Equal(t, 1, f.changes, "exactly one change event")
	assert.False(t, f.c.IsOpen())
	assert.Equal(t, f.anchor.Element, f.doc.Focused())
}

func TestRowActivation_Keys(t *testing.T) {
	for _, key := range []string{"enter", " "} {
		f := newFixture(t)
		press(f.anchor.Element)
		keyDown(f.row("a"), key)

		assert.Equal(t, "a", f.anchor.Value(), key)
		assert.Equal(t, 1, f.changes, key)
		assert.False(t, f.c.IsOpen(), key)
	}
}

func TestRowActivation_UnresolvableTargetIsNoop(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)

	f.c.onRowActivate(&dom.Event{Type: dom.Click, Target: f.c.inst.list})
	assert.True(t, f.c.IsOpen())
	assert.Equal(t, "c", f.anchor.Value())
	assert.Zero(t, f.changes)
}

func TestOutsideActivationCloses(t *testing.T) {
	f := newFixture(t)
	other := f.doc.Body().Append(dom.NewElement("div"))

	press(f.anchor.Element)
	press(other)
	assert.False(t, f.c.IsOpen())
	assert.Equal(t, "c", f.anchor.Value())
	assert.Zero(t, f.changes)

	press(f.anchor.Element)
	keyDown(other, "x")
	assert.False(t, f.c.IsOpen(), "outside key closes too")
}

func TestInsideActivationKeepsOpen(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)

	press(f.c.inst.search)
	press(f.c.inst.list)
	keyDown(f.c.inst.search, "x")
	assert.True(t, f.c.IsOpen())
}

func TestDocumentListenersIgnoredWhileClosed(t *testing.T) {
	f := newFixture(t)
	other := f.doc.Body().Append(dom.NewElement("div"))
	press(other)
	keyDown(other, "enter")
	assert.False(t, f.c.IsOpen())
}

func TestSearchKeys(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)
	search := f.c.inst.search

	ev := keyDown(search, "enter")
	assert.True(t, ev.DefaultPrevented(), "enter is swallowed")
	assert.True(t, f.c.IsOpen())

	keyDown(search, "down")
	assert.Equal(t, f.row("a"), f.doc.Focused())
	keyDown(f.row("a"), "down")
	assert.Equal(t, f.row("b"), f.doc.Focused())
	keyDown(f.row("b"), "up")
	assert.Equal(t, f.row("a"), f.doc.Focused())
	keyDown(f.row("a"), "up")
	assert.Equal(t, search, f.doc.Focused())

	f.typeSearch("an")
	keyDown(search, "down")
	assert.Equal(t, f.row("b"), f.doc.Focused(), "hidden rows are skipped")
	keyDown(f.row("b"), "down")
	assert.Equal(t, f.row("b"), f.doc.Focused(), "last row stays")

	keyDown(f.row("b"), "esc")
	assert.False(t, f.c.IsOpen())
	assert.Equal(t, f.anchor.Element, f.doc.Focused())
	assert.Zero(t, f.changes)
}

func TestEscFromSearch(t *testing.T) {
	f := newFixture(t)
	keyDown(f.anchor.Element, "enter")
	keyDown(f.c.inst.search, "esc")
	assert.False(t, f.c.IsOpen())
	assert.Equal(t, f.anchor.Element, f.doc.Focused())
}

func TestRefilterMovesFocusOffHiddenRow(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)
	f.doc.Focus(f.row("a"))

	f.typeSearch("ban")
	assert.Equal(t, f.c.inst.search, f.doc.Focused())
}

func TestCloseIdempotent(t *testing.T) {
	f := newFixture(t)
	f.c.Close()
	press(f.anchor.Element)
	f.c.Close()
	f.c.Close()
	assert.False(t, f.c.IsOpen())
	assert.Equal(t, 0, f.doc.ObserverCount())
	assert.Len(t, f.doc.Body().Children(), 1, "only the anchor is left")
}

func TestUnmountRemovesListeners(t *testing.T) {
	f := newFixture(t)
	root := f.doc.Root()
	assert.Equal(t, 1, f.anchor.ListenerCount(dom.PointerDown))
	assert.Equal(t, 1, f.anchor.ListenerCount(dom.KeyDown))
	assert.Equal(t, 1, root.ListenerCount(dom.PointerDown))
	assert.Equal(t, 1, root.ListenerCount(dom.KeyDown))

	press(f.anchor.Element)
	f.c.Unmount()
	f.c.Unmount()

	assert.False(t, f.c.IsOpen())
	assert.Equal(t, 0, f.doc.ObserverCount())
	assert.Zero(t, f.anchor.ListenerCount(dom.PointerDown))
	assert.Zero(t, f.anchor.ListenerCount(dom.KeyDown))
	assert.Zero(t, root.ListenerCount(dom.PointerDown))
	assert.Zero(t, root.ListenerCount(dom.KeyDown))
	assert.Equal(t, 1, f.anchor.ListenerCount(dom.Change), "owner listeners survive")

	press(f.anchor.Element)
	assert.False(t, f.c.IsOpen(), "unmount is terminal")
}

func TestUnmountRestoresHasPopup(t *testing.T) {
	cases := []struct {
		name    string
		initial *string
	}{
		{"absent", nil},
		{"menu", ptr("menu")},
		{"empty", ptr("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := dom.NewDocument(1024, 768)
			anchor := dom.NewSelect("s")
			anchor.AddOption("a", "A", "", false)
			doc.Body().Append(anchor.Element)
			if tc.initial != nil {
				anchor.SetAttr(dom.AttrHasPopup, *tc.initial)
			}

			c := New(doc, anchor, config.Default())
			v, _ := anchor.Attr(dom.AttrHasPopup)
			assert.Equal(t, "true", v)

			c.Unmount()
			v, ok := anchor.Attr(dom.AttrHasPopup)
			if tc.initial == nil {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, *tc.initial, v)
		})
	}
}

func ptr(s string) *string { return &s }

func TestMobileRelayoutKeepsSearch(t *testing.T) {
	f := newFixture(t)
	press(f.anchor.Element)
	f.typeSearch("an")

	root := f.c.Overlay()
	box, _ := root.Box()
	assert.Equal(t, dom.Rect{X: 250, Y: 125, W: 200, H: 300}, box.Resolve(f.doc.Viewport()))

	f.doc.Resize(500, 800)
	require.True(t, f.c.IsOpen())
	assert.False(t, f.doc.Connected(root), "old instance is gone")
	assert.Equal(t, "custom-select-t2", f.c.Overlay().ID)
	assert.True(t, f.c.Overlay().HasClass(ClassMobile))
	assert.Equal(t, "an", f.c.SearchText())
	assert.Equal(t, []string{"b"}, f.visible())
	box, _ = f.c.Overlay().Box()
	assert.Equal(t, dom.Rect{W: 500, H: 800}, box.Resolve(f.doc.Viewport()))
	assert.Equal(t, 1, f.doc.ObserverCount())

	f.doc.Resize(600, 700)
	assert.Equal(t, "custom-select-t2", f.c.Overlay().ID, "no crossing, no rebuild")

	f.doc.Resize(1024, 768)
	assert.Equal(t, "custom-select-t3", f.c.Overlay().ID)
	assert.False(t, f.c.Overlay().HasClass(ClassMobile))
	assert.Equal(t, "an", f.c.SearchText())
	assert.Equal(t, 1, f.doc.ObserverCount())
	assert.Len(t, f.doc.StyleSheets(), 1)
}

func TestStyleSheetScopedToInstance(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.doc.StyleSheets())

	press(f.anchor.Element)
	sheets := f.doc.StyleSheets()
	require.Len(t, sheets, 1)
	assert.Equal(t, "custom-select-t1", sheets[0].Scope)

	f.c.Close()
	assert.Empty(t, f.doc.StyleSheets())
}

func TestSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	f := newFixture(t, WithTracer(provider.Tracer("test")))

	press(f.anchor.Element)
	dispatch(dom.Click, f.row("a"), "")
	f.c.Unmount()

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{trace.SpanOpen, trace.SpanClose, trace.SpanSelect, trace.SpanUnmount}, names)

	open := rec.Ended()[0]
	attrs := map[string]string{}
	for _, kv := range open.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "fruit", attrs[string(trace.AnchorKey)])
	assert.Equal(t, "custom-select-t1", attrs[string(trace.OverlayKey)])
	assert.Equal(t, "3", attrs[string(trace.VisibleRowKey)])
	assert.Equal(t, "system", attrs[string(trace.ThemeKey)])
}

func TestDefaultIDsAreUUIDs(t *testing.T) {
	doc := dom.NewDocument(1024, 768)
	anchor := dom.NewSelect("s")
	anchor.AddOption("a", "A", "", false)
	doc.Body().Append(anchor.Element)
	c := New(doc, anchor, config.Default())
	defer c.Unmount()

	press(anchor.Element)
	id := c.Overlay().ID
	require.Greater(t, len(id), len(ScopePrefix))
	_, err := uuid.Parse(id[len(ScopePrefix):])
	assert.NoError(t, err)
}

func TestSequential(t *testing.T) {
	next := Sequential("x")
	assert.Equal(t, "x1", next())
	assert.Equal(t, "x2", next())
}
