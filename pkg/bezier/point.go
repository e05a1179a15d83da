// Geometric primitives shared by the store, the evaluator and the
// renderers.

package bezier

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. The same type serves pointer space (pixels,
// origin top-left, y growing downward) and normalized space (origin at
// the viewport centre, y growing upward); which space a value lives in
// depends on where it came from.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp interpolates between p and q. It uses the two-product form
// (1-t)*p + t*q, which yields p exactly at t=0 and q exactly at t=1.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: (1-t)*p.X + t*q.X,
		Y: (1-t)*p.Y + t*q.Y,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSquared returns the squared distance from p to q. Hit testing
// compares squared distances so no square root is taken per candidate.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
