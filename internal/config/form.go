package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidForm is returned when a form file fails validation.
var ErrInvalidForm = errors.New("invalid form")

// Settings are optional overlay settings as written in a form file, the
// environment or on the command line. Empty fields are unset.
type Settings struct {
	Placeholder    string `toml:"placeholder"`
	Theme          string `toml:"theme"`
	DarkHighlight  string `toml:"dark_highlight"`
	LightHighlight string `toml:"light_highlight"`
}

// Merge returns s with every set field of over applied on top.
func (s Settings) Merge(over Settings) Settings {
	if over.Placeholder != "" {
		s.Placeholder = over.Placeholder
	}
	if over.Theme != "" {
		s.Theme = over.Theme
	}
	if over.DarkHighlight != "" {
		s.DarkHighlight = over.DarkHighlight
	}
	if over.LightHighlight != "" {
		s.LightHighlight = over.LightHighlight
	}
	return s
}

// Attributes renders the set fields as anchor attributes, the form
// FromAttributes reads back.
func (s Settings) Attributes() map[string]string {
	attrs := make(map[string]string, 4)
	for name, v := range map[string]string{
		AttrSearchText:     s.Placeholder,
		AttrForceTheme:     s.Theme,
		AttrDarkHighlight:  s.DarkHighlight,
		AttrLightHighlight: s.LightHighlight,
	} {
		if v != "" {
			attrs[name] = v
		}
	}
	return attrs
}

// Form describes the select fields shown by the terminal host.
type Form struct {
	Title   string   `toml:"title"`
	Overlay Settings `toml:"overlay"`
	Fields  []Field  `toml:"field"`
}

// Field is one select control.
type Field struct {
	Name    string        `toml:"name"`
	Label   string        `toml:"label"`
	Overlay Settings      `toml:"overlay"`
	Options []FieldOption `toml:"option"`
}

// FieldOption is one option of a Field.
type FieldOption struct {
	Value       string `toml:"value"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
	Selected    bool   `toml:"selected"`
}

// LoadForm reads and validates a TOML form file.
func LoadForm(path string) (*Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open form: %w", err)
	}
	defer f.Close()

	var form Form
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&form); err != nil {
		return nil, fmt.Errorf("failed to parse form %s: %w", path, err)
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return &form, nil
}

// Validate reports every problem in the form, each wrapping ErrInvalidForm.
func (f *Form) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidForm}, args...)...))
	}

	if len(f.Fields) == 0 {
		fail("no fields")
	}
	if _, err := ParseMode(f.Overlay.Theme); err != nil {
		fail("overlay: %v", err)
	}

	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		switch {
		case field.Name == "":
			fail("field %d: missing name", i+1)
		case seen[field.Name]:
			fail("field %q: duplicate name", field.Name)
		}
		seen[field.Name] = true

		if len(field.Options) == 0 {
			fail("field %q: no options", field.Name)
		}
		if _, err := ParseMode(field.Overlay.Theme); err != nil {
			fail("field %q: %v", field.Name, err)
		}
	}
	return errors.Join(errs...)
}

// FieldSettings resolves the overlay settings of field i: form defaults,
// then the field's own settings, then each override in order.
func (f *Form) FieldSettings(i int, overrides ...Settings) Settings {
	s := f.Overlay.Merge(f.Fields[i].Overlay)
	for _, o := range overrides {
		s = s.Merge(o)
	}
	return s
}
