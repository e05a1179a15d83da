// Curve coloring for rendered snapshots.

package bezdraw

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp anchors: spring green at t=0 blending to the control-polygon
// blue at t=1.
var (
	rampStart = colorful.Color{R: 0.0, G: 1.0, B: 0.3}
	rampEnd   = colorful.Color{R: 0.188, G: 0.360, B: 0.992}
)

// Ramp returns the curve color at parameter t, blending the anchors in
// HCL space. t is clamped to [0, 1].
func Ramp(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := rampStart.BlendHcl(rampEnd, t).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// rampHex returns the Ramp color at t as an SVG hex literal.
func rampHex(t float64) string {
	c := Ramp(t)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
