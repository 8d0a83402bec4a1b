package ui

import "cleanselect/internal/dom"

// FocusManager rotates focus through an ordered list of elements.
type FocusManager struct {
	Current  *dom.Element   // Currently focused element, nil for none
	Order    []*dom.Element // Tab order
	OnChange func(from, to *dom.Element)
}

func (f *FocusManager) index() int {
	for i, el := range f.Order {
		if el == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to *dom.Element) *dom.Element {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Next advances focus to the next element in order, wrapping around. With
// nothing focused it lands on the first element.
func (f *FocusManager) Next() *dom.Element {
	if len(f.Order) == 0 {
		return nil
	}
	return f.move(f.Order[(f.index()+1)%len(f.Order)])
}

// Prev moves focus to the previous element in order, wrapping around.
func (f *FocusManager) Prev() *dom.Element {
	if len(f.Order) == 0 {
		return nil
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(f.Order[i])
}

// SetFocus focuses el. Returns false if el is not in the order.
func (f *FocusManager) SetFocus(el *dom.Element) bool {
	for _, o := range f.Order {
		if o == el {
			f.move(el)
			return true
		}
	}
	return false
}
