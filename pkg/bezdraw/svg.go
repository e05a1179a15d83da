package bezdraw

import (
	"fmt"
	"html"
	"strings"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width        int    // canvas width in pixels
	Height       int    // canvas height in pixels
	Padding      int    // padding around edges
	MarkerRadius int    // radius of control-point markers
	FontSize     int    // font size for marker labels
	TitleSize    int    // font size for title (0 = FontSize + 4)
	ShowPolygon  bool   // draw the dashed control polygon
	ShowLabels   bool   // label markers with their curve order
	Title        string // diagram title
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:        900,
		Height:       600,
		Padding:      40,
		MarkerRadius: 6,
		FontSize:     14,
		TitleSize:    0, // will default to FontSize + 4
		ShowPolygon:  true,
		ShowLabels:   true,
	}
}

// GenerateSVG renders a session snapshot to SVG without external
// dependencies. The curve stroke uses the ramp start color (the PNG
// renderer shades the full ramp) and ends in an arrowhead oriented
// along the curve direction.
func GenerateSVG(data bezier.RenderData, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 900
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.MarkerRadius == 0 {
		opts.MarkerRadius = 6
	}
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}
	if opts.TitleSize == 0 {
		opts.TitleSize = opts.FontSize + 4
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs>
  <marker id="curve-end" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">
    <polygon points="0 0, 10 3.5, 0 7" fill="%s"/>
  </marker>
</defs>
<style>
  .polygon { fill: none; stroke: #305cfd; stroke-width: 1.5; stroke-dasharray: 6 4; }
  .curve { fill: none; stroke: %s; stroke-width: 2.5; stroke-linecap: round; stroke-linejoin: round; marker-end: url(#curve-end); }
  .marker { fill: #d60028; stroke: #7a0017; stroke-width: 1.5; }
  .marker-label { font-family: sans-serif; font-size: %dpx; fill: #333; text-anchor: middle; }
  .title { font-family: sans-serif; font-size: %dpx; font-weight: bold; text-anchor: middle; }
</style>
`, opts.Width, opts.Height, opts.Width, opts.Height, rampHex(0), rampHex(0), opts.FontSize, opts.TitleSize))

	// Background
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>
`, opts.Width, opts.Height))

	// Title
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="25" class="title">%s</text>
`, opts.Width/2, html.EscapeString(opts.Title)))
	}

	min, max, ok := Bounds(data.Controls)
	if !ok {
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = 35
	}
	view := fitContent(min, max, float64(opts.Width), float64(opts.Height),
		float64(opts.Padding), titleSpace)

	// Control polygon under the curve
	if opts.ShowPolygon && len(data.Controls) >= 2 {
		sb.WriteString(`<polyline class="polygon" points="`)
		writePoints(&sb, data.Controls, view)
		sb.WriteString("\"/>\n")
	}

	// Curve
	if len(data.Curve) >= 2 {
		sb.WriteString(`<polyline class="curve" points="`)
		writePoints(&sb, data.Curve, view)
		sb.WriteString("\"/>\n")
	}

	// Markers and labels on top
	for i, p := range data.Controls {
		x, y := view.apply(p)
		sb.WriteString(fmt.Sprintf(`<circle class="marker" cx="%.1f" cy="%.1f" r="%d"/>
`, x, y, opts.MarkerRadius))
		if opts.ShowLabels {
			labelY := y - float64(opts.MarkerRadius) - 6
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="marker-label">%d</text>
`, x, labelY, i))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// writePoints appends a space-separated SVG point list.
func writePoints(sb *strings.Builder, pts []bezier.Point, view viewTransform) {
	for i, p := range pts {
		x, y := view.apply(p)
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%.1f,%.1f", x, y)
	}
}
