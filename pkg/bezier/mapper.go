package bezier

import "fmt"

// Mapper converts between pointer space and normalized space for one
// fixed viewport. Pointer space has its origin at the top-left corner
// with y growing downward; normalized space spans [-1, 1] on both axes
// with the origin at the viewport centre and y growing upward.
type Mapper struct {
	width  float64
	height float64
}

// NewMapper returns a Mapper for a viewport of the given pixel size.
// Both dimensions must be positive.
func NewMapper(width, height float64) (Mapper, error) {
	if width <= 0 || height <= 0 {
		return Mapper{}, fmt.Errorf("%w: viewport %gx%g, dimensions must be positive", ErrInvalidConfig, width, height)
	}
	return Mapper{width: width, height: height}, nil
}

// ToNormalized maps a pointer-space point into normalized space.
func (m Mapper) ToNormalized(p Point) Point {
	return Point{
		X: 2*p.X/m.width - 1,
		Y: 1 - 2*p.Y/m.height,
	}
}

// FromNormalized is the inverse of ToNormalized.
func (m Mapper) FromNormalized(p Point) Point {
	return Point{
		X: (p.X + 1) / 2 * m.width,
		Y: (1 - p.Y) / 2 * m.height,
	}
}

// Size returns the viewport dimensions in pixels.
func (m Mapper) Size() (width, height float64) {
	return m.width, m.height
}
