package snapgrid

import "math"

// Point is a position in one of the engine's coordinate frames.
// Which frame is meant is documented per operation; the engine never
// mixes frames implicitly.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair in length units.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle: origin plus size.
type Rect struct {
	Min  Point
	Size Size
}

// NewRect creates a rectangle from its origin and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Contains reports whether p lies inside r, inclusive of the origin
// edges and exclusive of the far edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Size.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Size.H
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
