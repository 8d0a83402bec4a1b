package dom

import "strings"

// Media restricts a rule to a color scheme.
type Media int

const (
	MediaAll Media = iota
	MediaDark
)

// Rule assigns colors to elements matching Selector. Supported selectors are
// "#id", ".class", and "#id tag" (a tag inside the element with that id).
type Rule struct {
	Selector   string
	Media      Media
	Background string
	Foreground string
}

// StyleSheet is an ordered rule list; later rules win.
type StyleSheet struct {
	Scope string
	Rules []Rule
}

// Colors is a computed background/foreground pair. Empty means unset.
type Colors struct {
	Background string
	Foreground string
}

func (c Colors) merge(r Rule) Colors {
	if r.Background != "" {
		c.Background = r.Background
	}
	if r.Foreground != "" {
		c.Foreground = r.Foreground
	}
	return c
}

// matches reports whether el is selected by sel.
func matches(sel string, el *Element) bool {
	scope, tag, nested := strings.Cut(sel, " ")
	if nested {
		if el.Tag != tag || !strings.HasPrefix(scope, "#") {
			return false
		}
		id := scope[1:]
		return el.Closest(func(a *Element) bool { return a != el && a.ID == id }) != nil
	}
	switch {
	case strings.HasPrefix(sel, "#"):
		return el.ID == sel[1:]
	case strings.HasPrefix(sel, "."):
		return el.HasClass(sel[1:])
	}
	return false
}

// Computed cascades the document's style sheets onto el. Colors are
// inherited from ancestors so that nested elements paint over their
// container's background. Dark media rules apply only when dark is true.
func (d *Document) Computed(el *Element, dark bool) Colors {
	sheets := d.StyleSheets()
	var chain []*Element
	for n, depth := el, 0; n != nil && depth < MaxDepth; n, depth = n.parent, depth+1 {
		chain = append(chain, n)
	}
	var c Colors
	for i := len(chain) - 1; i >= 0; i-- {
		for _, s := range sheets {
			for _, r := range s.Rules {
				if r.Media == MediaDark && !dark {
					continue
				}
				if matches(r.Selector, chain[i]) {
					c = c.merge(r)
				}
			}
		}
	}
	return c
}
