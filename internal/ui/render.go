package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cleanselect/internal/dom"
	"cleanselect/internal/dropdown"
	"cleanselect/internal/ui/textutil"
)

// View implements View. It renders the base form, then composites every
// open overlay on top and rebuilds the hit map to match.
func (v *FormView) View() string {
	v.hits.Clear()
	v.layers.Reset()
	v.hits.AddRect("body", 0, 0, v.width, v.height, v.Doc.Body())

	base := v.renderBase()
	for _, f := range v.fields {
		if root := f.ctrl.Overlay(); root != nil {
			v.pushOverlay(root)
		}
	}
	return v.layers.Composite(base)
}

// renderBase draws the title, every field and the status and key bars,
// padded to the full screen so overlays can be spliced anywhere.
func (v *FormView) renderBase() string {
	lines := make([]string, v.height)
	set := func(row int, s string) {
		if row >= 0 && row < len(lines) {
			lines[row] = s
		}
	}

	title := v.Form.Title
	if title == "" {
		title = "cleanselect"
	}
	set(0, " "+Styles.Title.Render(title))

	focused := v.Doc.Focused()
	for _, f := range v.fields {
		set(f.row, strings.Repeat(" ", fieldLeft)+Styles.Label.Render(f.title()))

		style := Styles.Field
		if focused == f.anchor.Element {
			style = Styles.FieldFocused
		}
		label := f.anchor.SelectedLabel()
		if label == "" {
			label = "—"
		}
		inner := fieldWidth - 6
		control := "[ " + textutil.Fit(label, inner) + " ▾ ]"
		set(f.row+1, strings.Repeat(" ", fieldLeft)+style.Render(control))
		v.hits.AddRect(f.anchor.ID, fieldLeft, f.row+1, fieldWidth, 1, f.anchor.Element)
	}

	if v.Status != "" {
		set(v.height-2, " "+Styles.Status.Render(v.Status))
	}
	set(v.height-1, " "+RenderKeyHelp(v.Keys, v.width-1))

	for i, l := range lines {
		lines[i] = padRight(l, v.width)
	}
	return strings.Join(lines, "\n")
}

// pushOverlay renders one overlay subtree as a layer and registers its hit
// regions above everything drawn so far.
func (v *FormView) pushOverlay(root *dom.Element) {
	box, ok := root.Box()
	if !ok {
		return
	}
	r := v.cells(box.Resolve(v.Doc.Viewport())).Clip(v.width, v.height)
	if r.W < 6 || r.H < 4 {
		return
	}
	innerW, innerH := r.W-2, r.H-2
	colors := v.Doc.Computed(root, v.Dark)
	fill := colorStyle(colors)

	var lines []string
	var targets []*dom.Element

	search := root.Query(dom.ByTag("input"))
	lines = append(lines, v.renderSearch(search, innerW))
	targets = append(targets, search)
	lines = append(lines, fill.Render(strings.Repeat("─", innerW)))
	targets = append(targets, nil)

	body, bodyTargets := v.renderRows(root, innerW, innerH-len(lines))
	lines = append(lines, body...)
	targets = append(targets, bodyTargets...)
	for len(lines) < innerH {
		lines = append(lines, fill.Render(strings.Repeat(" ", innerW)))
		targets = append(targets, nil)
	}

	framed := borderStyle(colors).Render(strings.Join(lines, "\n"))
	v.layers.Push(Layer{X: r.X, Y: r.Y, Lines: strings.Split(framed, "\n")})

	v.hits.AddRect(root.ID, r.X, r.Y, r.W, r.H, root)
	for i, el := range targets {
		if el != nil {
			v.hits.AddRect(describe(el), r.X+1, r.Y+1+i, innerW, 1, el)
		}
	}
}

// renderSearch draws the search field with its editing cursor.
func (v *FormView) renderSearch(search *dom.Element, width int) string {
	style := colorStyle(v.Doc.Computed(search, v.Dark))
	if search == nil {
		return style.Render(strings.Repeat(" ", width))
	}
	m := v.input(search)
	m.Width = width - 3
	m.TextStyle = style
	m.PlaceholderStyle = style.Faint(true)
	if v.Doc.Focused() == search {
		m.Focus()
	} else {
		m.Blur()
	}
	return style.Render(padRight(" "+m.View(), width))
}

type rowLine struct {
	text string
	el   *dom.Element
}

// renderRows draws the visible rows, scrolled so the focused row and its
// description fit in height lines.
func (v *FormView) renderRows(root *dom.Element, width, height int) ([]string, []*dom.Element) {
	if height <= 0 {
		return nil, nil
	}
	focused := v.Doc.Focused()
	var body []rowLine
	focusEnd := -1

	for _, el := range root.QueryAll(dom.ByAttr(dropdown.AttrOption)) {
		if el.Hidden() {
			continue
		}
		style := colorStyle(v.Doc.Computed(el, v.Dark))
		marker := "  "
		if el == focused {
			marker = "› "
			style = style.Bold(true)
		}
		label := ""
		if t := el.Query(dom.ByTag("span")); t != nil {
			label = t.Text
		}
		body = append(body, rowLine{line(style, marker+label, width), el})
		if d := el.Query(dom.ByTag("div")); d != nil {
			body = append(body, rowLine{line(style.Faint(true), "  "+d.Text, width), el})
		}
		if el == focused {
			focusEnd = len(body) - 1
		}
	}
	if len(body) == 0 {
		fill := colorStyle(v.Doc.Computed(root, v.Dark))
		body = append(body, rowLine{line(fill.Inherit(Styles.Empty), "  No matches", width), nil})
	}

	offset := 0
	if focusEnd >= height {
		offset = focusEnd - height + 1
	}
	end := min(offset+height, len(body))

	var lines []string
	var targets []*dom.Element
	for _, l := range body[offset:end] {
		lines = append(lines, l.text)
		targets = append(targets, l.el)
	}
	return lines, targets
}

// line renders plain text fitted to exactly width cells.
func line(style lipgloss.Style, text string, width int) string {
	return style.Render(textutil.Fit(text, width))
}

// padRight pads s with spaces to width cells. Wider strings are returned
// unchanged.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
