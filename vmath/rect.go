package vmath

// Rect is an axis-aligned box in surface units, origin at the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Translate returns the rect moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether two rects intersect with positive area
// Touching edges do not count. Symmetric in its arguments
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// ClampInto returns r shifted so it lies inside [0, width] x [0, height]
// A rect larger than the bounds is pinned to the origin on that axis
func ClampInto(r Rect, width, height float64) Rect {
	r.X = Clamp(r.X, 0, max(0, width-r.W))
	r.Y = Clamp(r.Y, 0, max(0, height-r.H))
	return r
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
