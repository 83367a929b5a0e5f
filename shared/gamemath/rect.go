package gamemath

// Rect is an axis-aligned rectangle in screen space (y grows downward).
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share interior area. Touching edges do
// not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Overlaps is the method form of Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
