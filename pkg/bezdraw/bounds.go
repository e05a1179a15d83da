// Content bounds and viewport fitting shared by the PNG and SVG
// renderers.

package bezdraw

import (
	"math"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// minContentExtent keeps near-degenerate content (all points coincident
// or collinear along one axis) from producing an unbounded fit scale.
const minContentExtent = 0.1

// Bounds returns the axis-aligned bounding box of pts. ok is false when
// pts is empty. A Bézier curve never leaves the convex hull of its
// control points, so the control bounds cover the curve as well.
func Bounds(pts []bezier.Point) (min, max bezier.Point, ok bool) {
	if len(pts) == 0 {
		return bezier.Point{}, bezier.Point{}, false
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, true
}

// viewTransform maps normalized content coordinates onto the pixel
// canvas: uniform scale, centred in the padded area, y axis flipped
// from y-up to y-down.
type viewTransform struct {
	scale float64
	offX  float64
	offY  float64
	minX  float64
	maxY  float64
}

func (v viewTransform) apply(p bezier.Point) (x, y float64) {
	return v.offX + (p.X-v.minX)*v.scale, v.offY + (v.maxY-p.Y)*v.scale
}

// fitContent computes the transform that places the content box
// [min, max] inside a width x height canvas, leaving padding on every
// side and titleSpace extra at the top.
func fitContent(min, max bezier.Point, width, height, padding, titleSpace float64) viewTransform {
	contentW := max.X - min.X
	contentH := max.Y - min.Y

	if contentW < minContentExtent {
		cx := (min.X + max.X) / 2
		min.X = cx - minContentExtent/2
		max.X = cx + minContentExtent/2
		contentW = minContentExtent
	}
	if contentH < minContentExtent {
		cy := (min.Y + max.Y) / 2
		min.Y = cy - minContentExtent/2
		max.Y = cy + minContentExtent/2
		contentH = minContentExtent
	}

	availW := width - 2*padding
	availH := height - 2*padding - titleSpace
	scale := math.Min(availW/contentW, availH/contentH)

	scaledW := contentW * scale
	scaledH := contentH * scale
	return viewTransform{
		scale: scale,
		offX:  padding + (availW-scaledW)/2,
		offY:  padding + titleSpace + (availH-scaledH)/2,
		minX:  min.X,
		maxY:  max.Y,
	}
}
