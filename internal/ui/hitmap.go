package ui

// Rect is a screen region in cells. Right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clip returns r intersected with a width x height screen.
func (r Rect) Clip(width, height int) Rect {
	if r.X < 0 {
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.H += r.Y
		r.Y = 0
	}
	if r.X+r.W > width {
		r.W = width - r.X
	}
	if r.Y+r.H > height {
		r.H = height - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Region is a clickable area with caller data attached.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves screen cells to regions. It is rebuilt on every render.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Regions added later take priority.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear removes all regions.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Len returns the number of regions.
func (m *HitMap) Len() int { return len(m.regions) }
