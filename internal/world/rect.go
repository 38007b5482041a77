package world

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
		X2: max(r.X2, other.X2),
		Y2: max(r.Y2, other.Y2),
	}
}
