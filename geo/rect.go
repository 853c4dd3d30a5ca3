// Package geo provides the small amount of float geometry the debug
// painter needs.
package geo

// Point is an (x, y) pair.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Rectangle is an axis-aligned box with Min at the top left.
type Rectangle struct {
	Min, Max Point
}

// Rect returns the rectangle spanning (x0, y0) and (x1, y1), normalizing
// swapped coordinates.
func Rect(x0, y0, x1, y1 float64) Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rectangle{Point{x0, y0}, Point{x1, y1}}
}

// Dx returns the rectangle's width.
func (r Rectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the rectangle's height.
func (r Rectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a point.
func (r Rectangle) Size() Point {
	return Point{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y}
}

// Add returns the rectangle translated by p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}
