package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cleanselect/internal/config"
	"cleanselect/internal/dom"
	"cleanselect/internal/dropdown"
)

// Form layout, in cells.
const (
	fieldLeft     = 2
	fieldWidth    = 30
	firstFieldRow = 2
	rowsPerField  = 3 // label, control, spacer
)

// FormOptions configures a FormView.
type FormOptions struct {
	// Overrides are applied over each field's settings, in order.
	Overrides []config.Settings
	Metrics   config.CellMetrics
	// Dark answers the "follow system" theme.
	Dark     bool
	Logger   *slog.Logger
	Dropdown []dropdown.Option
	Width    int
	Height   int
}

// FieldValue is one submitted field.
type FieldValue struct {
	Name  string
	Value string
}

type formField struct {
	cfg    config.Field
	anchor dom.Select
	ctrl   *dropdown.Controller
	row    int
}

// FormView hosts a document of select fields, each replaced by a dropdown,
// and bridges Bubble Tea messages to element events.
type FormView struct {
	Form   *config.Form
	Doc    *dom.Document
	Keys   KeyMap
	Dark   bool
	Status string

	metrics config.CellMetrics
	log     *slog.Logger
	fields  []*formField
	focus   FocusManager
	inputs  map[*dom.Element]*textinput.Model
	hits    *HitMap
	layers  OverlayStack
	pressed *dom.Element

	width, height int
	submitted     bool
	aborted       bool
}

var _ View = (*FormView)(nil)

// NewFormView builds the document for form and attaches a dropdown to every
// field. It fails if a field's overlay settings do not resolve.
func NewFormView(form *config.Form, opts FormOptions) (*FormView, error) {
	if opts.Metrics.Width <= 0 || opts.Metrics.Height <= 0 {
		opts.Metrics = config.DefaultCellMetrics
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	v := &FormView{
		Form:    form,
		Keys:    DefaultKeyMap(),
		Dark:    opts.Dark,
		metrics: opts.Metrics,
		log:     opts.Logger,
		inputs:  make(map[*dom.Element]*textinput.Model),
		hits:    NewHitMap(),
		width:   opts.Width,
		height:  opts.Height,
	}
	v.Doc = dom.NewDocument(v.units(opts.Width, opts.Height))
	v.focus.OnChange = func(from, to *dom.Element) {
		v.log.Debug("focus moved", "from", describe(from), "to", describe(to))
	}

	for i, fc := range form.Fields {
		f := &formField{cfg: fc, row: firstFieldRow + i*rowsPerField}
		f.anchor = dom.NewSelect(fc.Name)
		for _, o := range fc.Options {
			f.anchor.AddOption(o.Value, o.Label, o.Description, o.Selected)
		}
		for name, val := range form.FieldSettings(i, opts.Overrides...).Attributes() {
			f.anchor.SetAttr(name, val)
		}
		f.anchor.SetBounds(dom.Rect{
			X: float64(fieldLeft) * v.metrics.Width,
			Y: float64(f.row+1) * v.metrics.Height,
			W: float64(fieldWidth) * v.metrics.Width,
			H: v.metrics.Height,
		})
		v.Doc.Body().Append(f.anchor.Element)

		dopts := append([]dropdown.Option{dropdown.WithLogger(v.log)}, opts.Dropdown...)
		ctrl, err := dropdown.Mount(v.Doc, f.anchor, dopts...)
		if err != nil {
			v.Close()
			return nil, err
		}
		f.ctrl = ctrl
		f.anchor.On(dom.Change, func(*dom.Event) {
			v.Status = fmt.Sprintf("%s: %s", f.title(), f.anchor.SelectedLabel())
			v.log.Info("field changed", "field", fc.Name, "value", f.anchor.Value())
		})
		v.fields = append(v.fields, f)
	}

	if len(v.fields) > 0 {
		v.Doc.Focus(v.fields[0].anchor.Element)
	}
	return v, nil
}

func (f *formField) title() string {
	if f.cfg.Label != "" {
		return f.cfg.Label
	}
	return f.cfg.Name
}

// units converts a size in cells to layout units.
func (v *FormView) units(cols, rows int) (float64, float64) {
	return float64(cols) * v.metrics.Width, float64(rows) * v.metrics.Height
}

// cells converts a layout rect to cells, truncating toward the origin.
func (v *FormView) cells(r dom.Rect) Rect {
	return Rect{
		X: int(r.X / v.metrics.Width),
		Y: int(r.Y / v.metrics.Height),
		W: int(r.W / v.metrics.Width),
		H: int(r.H / v.metrics.Height),
	}
}

// Controllers returns the dropdown controllers in field order.
func (v *FormView) Controllers() []*dropdown.Controller {
	out := make([]*dropdown.Controller, len(v.fields))
	for i, f := range v.fields {
		out[i] = f.ctrl
	}
	return out
}

// Values returns every field's current value in form order.
func (v *FormView) Values() []FieldValue {
	out := make([]FieldValue, len(v.fields))
	for i, f := range v.fields {
		out[i] = FieldValue{Name: f.cfg.Name, Value: f.anchor.Value()}
	}
	return out
}

// Submitted reports whether the form was submitted.
func (v *FormView) Submitted() bool { return v.submitted }

// Aborted reports whether the form was abandoned.
func (v *FormView) Aborted() bool { return v.aborted }

// Close unmounts every dropdown.
func (v *FormView) Close() {
	for _, f := range v.fields {
		if f.ctrl != nil {
			f.ctrl.Unmount()
		}
	}
}

// Init implements View.
func (v *FormView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.Doc.Resize(v.units(msg.Width, msg.Height))
	case tea.KeyMsg:
		cmd = v.handleKey(msg)
	case tea.MouseMsg:
		v.handleMouse(msg)
	}
	v.pruneInputs()
	return v, cmd
}

func describe(el *dom.Element) string {
	switch {
	case el == nil:
		return "none"
	case el.ID != "":
		return el.ID
	}
	return el.Tag
}
