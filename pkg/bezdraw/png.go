// Native PNG rendering of curve editing snapshots.
// Mirrors the SVG renderer output using Go's image packages.

package bezdraw

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width        int
	Height       int
	Padding      int
	MarkerRadius int
	FontSize     int
	ShowPolygon  bool
	ShowLabels   bool
	Title        string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:        900,
		Height:       600,
		Padding:      40,
		MarkerRadius: 6,
		FontSize:     14,
		ShowPolygon:  true,
		ShowLabels:   true,
		Title:        "",
	}
}

// Colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorInk       = color.RGBA{51, 51, 51, 255}  // #333
	colorPolygon   = color.RGBA{48, 92, 253, 255} // #305cfd
	colorMarker    = color.RGBA{214, 0, 40, 255}  // #d60028
	colorMarkerBdr = color.RGBA{122, 0, 23, 255}  // #7a0017
)

// renderContext holds rendering parameters including scale
type renderContext struct {
	img       *image.RGBA
	scale     float64   // multiplier for line thickness, marker size, etc.
	lineWidth float64   // base line width (scaled)
	fontSize  float64   // font size in points
	face      font.Face // font face for text rendering
}

func newRenderContext(img *image.RGBA, scale int) *renderContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // should never happen with embedded font
	}

	// Face at scaled size; the image is downsampled afterwards, so
	// hinting is off and supersampling does the smoothing.
	fontSize := float64(14 * scale)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}

	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 2,
		fontSize:  fontSize,
		face:      face,
	}
}

// RenderPNG renders a session snapshot to PNG format.
// Uses 4x supersampling for smoother output.
func RenderPNG(data bezier.RenderData, w io.Writer, opts PNGOptions) error {
	scale := 4
	largeOpts := opts
	largeOpts.Width = opts.Width * scale
	largeOpts.Height = opts.Height * scale
	largeOpts.Padding = opts.Padding * scale
	largeOpts.MarkerRadius = opts.MarkerRadius * scale
	largeOpts.FontSize = opts.FontSize * scale

	largeImg := renderPNGInternal(data, largeOpts, scale)

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

// renderPNGInternal renders the snapshot to an image at the requested size.
func renderPNGInternal(data bezier.RenderData, opts PNGOptions, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	ctx := newRenderContext(img, scale)

	// Fill background white
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, colorWhite)
		}
	}

	if opts.Title != "" {
		drawTextCentered(ctx, opts.Width/2, 25*scale, opts.Title, colorInk)
	}

	min, max, ok := Bounds(data.Controls)
	if !ok {
		return img
	}

	titleSpace := 0.0
	if opts.Title != "" {
		titleSpace = 35 * ctx.scale
	}
	view := fitContent(min, max, float64(opts.Width), float64(opts.Height),
		float64(opts.Padding), titleSpace)

	// Control polygon first, so the curve draws on top of it
	if opts.ShowPolygon {
		for i := 1; i < len(data.Controls); i++ {
			x1, y1 := view.apply(data.Controls[i-1])
			x2, y2 := view.apply(data.Controls[i])
			drawLine(ctx, x1, y1, x2, y2, colorPolygon)
		}
	}

	// Curve, colored along its parameter
	if n := len(data.Curve); n >= 2 {
		for i := 1; i < n; i++ {
			t := float64(i) / float64(n-1)
			x1, y1 := view.apply(data.Curve[i-1])
			x2, y2 := view.apply(data.Curve[i])
			drawLine(ctx, x1, y1, x2, y2, Ramp(t))
		}
	}

	// Markers last (on top of polygon and curve)
	r := float64(opts.MarkerRadius)
	for i, p := range data.Controls {
		x, y := view.apply(p)
		drawDisc(ctx, x, y, r, colorMarker, colorMarkerBdr)
		if opts.ShowLabels {
			labelY := y - r - 10*ctx.scale
			drawTextCentered(ctx, int(x), int(labelY), strconv.Itoa(i), colorInk)
		}
	}

	return img
}

// drawDisc draws a filled circle with an outline.
func drawDisc(ctx *renderContext, cx, cy, r float64, fill, stroke color.Color) {
	img := ctx.img
	thickness := ctx.lineWidth

	for dy := -r; dy <= r; dy++ {
		yNorm := dy / r
		if yNorm*yNorm <= 1 {
			xExtent := r * math.Sqrt(1-yNorm*yNorm)
			for dx := -xExtent; dx <= xExtent; dx++ {
				img.Set(int(cx+dx), int(cy+dy), fill)
			}
		}
	}

	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)

		// Thickness along the radial direction
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			nx := math.Cos(angle)
			ny := math.Sin(angle)
			img.Set(int(x+nx*t), int(y+ny*t), stroke)
		}
	}
}

// drawLine draws a line between two points with thickness from context.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	thickness := ctx.lineWidth

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawTextCentered draws text centered at the given position using Go Regular font.
func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	// The baseline sits below the visual centre of the glyphs; nudge
	// down by a fraction of the ascent to centre caps and digits.
	metrics := ctx.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	baselineY := y + int(float64(ascent)*0.15)

	point := fixed.Point26_6{
		X: fixed.I(x - width/2),
		Y: fixed.I(baselineY),
	}

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  point,
	}
	d.DrawString(text)
}
