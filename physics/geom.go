package physics

// Side identifies the rectangle edge a collision resolved against.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// Rect is an axis-aligned rectangle given by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CircleOverlaps reports whether a circle's bounding extents overlap r.
// The circle is treated as its bounding box, so diagonal near-misses at
// corners still count as hits.
func (r Rect) CircleOverlaps(c Vec2, radius float64) bool {
	return c.X+radius > r.X && c.X-radius < r.Right() &&
		c.Y+radius > r.Y && c.Y-radius < r.Bottom()
}

// Bounds is the playable arena: window size plus the thickness of the
// solid border framing it.
type Bounds struct {
	Width  float64
	Height float64
	Border float64
}

// Inner returns the playable area inside the border.
func (b Bounds) Inner() Rect {
	return Rect{
		X: b.Border,
		Y: b.Border,
		W: b.Width - 2*b.Border,
		H: b.Height - 2*b.Border,
	}
}
