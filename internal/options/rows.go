// Package options projects a select control's options into searchable rows.
package options

import "strings"

// Option is one choice read from the anchor control.
type Option struct {
	Value       string
	Label       string
	Description string
	Selected    bool
}

// Row is the overlay's view of an Option.
type Row struct {
	Value       string
	Label       string
	Description string
	// Highlighted is the option's selected flag at build time.
	Highlighted bool
	Visible     bool
}

// Build returns one row per option, in option order, filtered by term.
func Build(opts []Option, term string) []Row {
	rows := make([]Row, len(opts))
	for i, o := range opts {
		rows[i] = Row{
			Value:       o.Value,
			Label:       o.Label,
			Description: o.Description,
			Highlighted: o.Selected,
		}
	}
	Filter(rows, term)
	return rows
}

// Matches reports whether term is a case-insensitive substring of the row's
// label or value. The empty term matches everything.
func Matches(r Row, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Label), needle) ||
		strings.Contains(strings.ToLower(r.Value), needle)
}

// Filter sets Visible on every row in place and returns how many are
// visible. Rows are never added, removed or reordered.
func Filter(rows []Row, term string) int {
	n := 0
	for i := range rows {
		rows[i].Visible = Matches(rows[i], term)
		if rows[i].Visible {
			n++
		}
	}
	return n
}

// VisibleCount returns how many rows are visible.
func VisibleCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Visible {
			n++
		}
	}
	return n
}
