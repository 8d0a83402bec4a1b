package dom

// Attribute names shared by select controls and their options.
const (
	AttrValue       = "value"
	AttrSelected    = "selected"
	AttrDescription = "data-description"
	AttrHasPopup    = "aria-haspopup"
)

// Select wraps a "select" element whose "option" children hold the choices.
type Select struct {
	*Element
}

// NewSelect creates a detached, focusable select element.
func NewSelect(id string) Select {
	el := NewElement("select")
	el.ID = id
	return Select{Element: el}
}

// AddOption appends an option. An empty description is dropped: the option
// gets no data-description attribute and renders without a description line.
func (s Select) AddOption(value, label, description string, selected bool) *Element {
	opt := NewElement("option")
	opt.SetAttr(AttrValue, value)
	opt.Text = label
	if description != "" {
		opt.SetAttr(AttrDescription, description)
	}
	if selected {
		opt.SetAttr(AttrSelected, "")
	}
	return s.Append(opt)
}

// Options returns the option children in order. Other children are ignored.
func (s Select) Options() []*Element {
	var out []*Element
	for _, c := range s.Children() {
		if c.Tag == "option" {
			out = append(out, c)
		}
	}
	return out
}

// Value returns the value of the first selected option, or of the first
// option when none is selected, or "" when there are no options.
func (s Select) Value() string {
	opts := s.Options()
	for _, o := range opts {
		if o.HasAttr(AttrSelected) {
			v, _ := o.Attr(AttrValue)
			return v
		}
	}
	if len(opts) > 0 {
		v, _ := opts[0].Attr(AttrValue)
		return v
	}
	return ""
}

// SetValue selects the first option with the given value and deselects the
// rest. An unknown value deselects everything.
func (s Select) SetValue(v string) {
	matched := false
	for _, o := range s.Options() {
		ov, _ := o.Attr(AttrValue)
		if !matched && ov == v {
			o.SetAttr(AttrSelected, "")
			matched = true
			continue
		}
		o.RemoveAttr(AttrSelected)
	}
}

// SelectedLabel returns the label of the option Value refers to.
func (s Select) SelectedLabel() string {
	v := s.Value()
	for _, o := range s.Options() {
		if ov, _ := o.Attr(AttrValue); ov == v {
			return o.Text
		}
	}
	return ""
}
