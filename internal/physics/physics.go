// Package physics provides the axis-aligned rectangle shared by every body
// in the arena and the overlap test used for paddle contact.
package physics

// Rect is an axis-aligned rectangle in arena coordinates.
// The origin is the top-left corner and y grows downward.
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has a non-positive dimension.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Move returns the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// WithCenter returns the rectangle moved so its center is (x, y).
func (r Rect) WithCenter(x, y float64) Rect {
	r.X = x - r.Width/2
	r.Y = y - r.Height/2
	return r
}

// WithTop returns the rectangle moved vertically so its top edge is at y.
func (r Rect) WithTop(y float64) Rect {
	r.Y = y
	return r
}

// WithBottom returns the rectangle moved vertically so its bottom edge is at y.
func (r Rect) WithBottom(y float64) Rect {
	r.Y = y - r.Height
	return r
}

// Fits reports whether r could be placed entirely inside bounds.
func (r Rect) Fits(bounds Rect) bool {
	return r.Width <= bounds.Width && r.Height <= bounds.Height
}

// Clamp returns r moved the minimum distance needed to lie inside bounds.
// Each axis is pushed back past the near edge first, then the far edge, so a
// rectangle larger than bounds ends up flush with the far edge.
func (r Rect) Clamp(bounds Rect) Rect {
	r = r.ClampVertical(bounds)
	if r.Left() < bounds.Left() {
		r.X = bounds.Left()
	}
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.Width
	}
	return r
}

// ClampVertical returns r moved vertically to lie between the top and bottom
// edges of bounds. The horizontal position is left untouched.
func (r Rect) ClampVertical(bounds Rect) Rect {
	if r.Top() < bounds.Top() {
		r.Y = bounds.Top()
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.Height
	}
	return r
}

// Overlaps checks whether two rectangles intersect (standard AABB test).
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	if a.Left() >= b.Right() || b.Left() >= a.Right() {
		return false
	}
	if a.Top() >= b.Bottom() || b.Top() >= a.Bottom() {
		return false
	}
	return true
}

// Overlaps reports whether r intersects other.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
