package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanselect/internal/dom"
)

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1), "right edge is exclusive")
	assert.False(t, r.Contains(2, 3), "bottom edge is exclusive")

	assert.Equal(t, Rect{X: 0, Y: 0, W: 2, H: 3}, Rect{X: -1, Y: -2, W: 3, H: 5}.Clip(10, 10))
	assert.Equal(t, Rect{X: 8, Y: 9, W: 2, H: 1}, Rect{X: 8, Y: 9, W: 5, H: 5}.Clip(10, 10))
	assert.Equal(t, 0, Rect{X: 12, Y: 0, W: 3, H: 1}.Clip(10, 10).W)
}

func TestHitMap_LaterRegionsWin(t *testing.T) {
	m := NewHitMap()
	assert.Nil(t, m.Test(0, 0))

	m.AddRect("base", 0, 0, 10, 10, "base")
	m.AddRect("popup", 2, 2, 3, 3, "popup")
	require.Equal(t, 2, m.Len())

	assert.Equal(t, "popup", m.Test(3, 3).ID)
	assert.Equal(t, "base", m.Test(5, 5).ID)
	assert.Nil(t, m.Test(10, 0))

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Test(3, 3))
}

func TestSplice(t *testing.T) {
	view := "aaaaa\nbbbbb\nccccc"

	got := Splice(view, []string{"XY"}, 1, 1)
	assert.Equal(t, []string{"aaaaa", "bXYbb", "ccccc"}, strings.Split(ansi.Strip(got), "\n"))

	got = Splice("ab", []string{"Z"}, 4, 0)
	assert.Equal(t, "ab  Z", ansi.Strip(got), "short lines are padded")

	got = Splice(view, []string{"1", "2", "3"}, 0, 2)
	assert.Equal(t, []string{"aaaaa", "bbbbb", "1cccc"}, strings.Split(ansi.Strip(got), "\n"), "rows past the view are dropped")

	assert.Equal(t, view, Splice(view, nil, 0, 0))
}

func TestSplice_KeepsStylingOutsideLayer(t *testing.T) {
	base := "\x1b[31mredredred\x1b[0m"
	got := Splice(base, []string{"--"}, 3, 0)
	assert.Equal(t, "red--dred", ansi.Strip(got))
	assert.True(t, strings.HasPrefix(got, "\x1b[31m"))
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(Layer{X: 0, Y: 0, Lines: []string{"11"}})
	s.Push(Layer{X: 1, Y: 0, Lines: []string{"2"}})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "12..", ansi.Strip(s.Composite("....")), "later layers paint over earlier ones")

	top, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, top.X)
	s.Reset()
	assert.Equal(t, 0, s.Len())
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestFocusManager(t *testing.T) {
	a, b, c := dom.NewElement("a"), dom.NewElement("b"), dom.NewElement("c")
	var moves [][2]*dom.Element
	f := FocusManager{
		Order:    []*dom.Element{a, b, c},
		OnChange: func(from, to *dom.Element) { moves = append(moves, [2]*dom.Element{from, to}) },
	}

	assert.Equal(t, a, f.Next(), "nothing focused lands on the first element")
	assert.Equal(t, b, f.Next())
	assert.Equal(t, c, f.Next())
	assert.Equal(t, a, f.Next(), "wraps")
	assert.Equal(t, c, f.Prev(), "wraps backwards")

	assert.True(t, f.SetFocus(b))
	assert.False(t, f.SetFocus(dom.NewElement("x")))
	assert.Equal(t, b, f.Current)
	assert.Len(t, moves, 6)

	f.SetFocus(b)
	assert.Len(t, moves, 6, "focusing the current element is not a change")

	assert.Nil(t, (&FocusManager{}).Next())
	assert.Nil(t, (&FocusManager{}).Prev())
}
