package bezdraw

import (
	"math"
	"testing"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

func TestBoundsEmpty(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) reported content")
	}
}

func TestBounds(t *testing.T) {
	pts := []bezier.Point{
		bezier.Pt(-0.8, 0.8),
		bezier.Pt(0, -0.8),
		bezier.Pt(0.8, 0.8),
		bezier.Pt(0.1, 0.1),
	}
	min, max, ok := Bounds(pts)
	if !ok {
		t.Fatal("Bounds reported no content")
	}
	if min != bezier.Pt(-0.8, -0.8) {
		t.Errorf("min = %v", min)
	}
	if max != bezier.Pt(0.8, 0.8) {
		t.Errorf("max = %v", max)
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	min, max, ok := Bounds([]bezier.Point{bezier.Pt(0.3, -0.4)})
	if !ok || min != max || min != bezier.Pt(0.3, -0.4) {
		t.Errorf("min=%v max=%v ok=%v", min, max, ok)
	}
}

func TestFitContentCentres(t *testing.T) {
	// Symmetric content must land on the canvas centre.
	view := fitContent(bezier.Pt(-0.8, -0.8), bezier.Pt(0.8, 0.8), 900, 600, 40, 0)
	x, y := view.apply(bezier.Pt(0, 0))
	if math.Abs(x-450) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("centre mapped to (%g, %g), want (450, 300)", x, y)
	}
}

func TestFitContentRespectsPadding(t *testing.T) {
	min := bezier.Pt(-1, -1)
	max := bezier.Pt(1, 1)
	view := fitContent(min, max, 900, 600, 40, 0)

	corners := []bezier.Point{min, max, bezier.Pt(-1, 1), bezier.Pt(1, -1)}
	for _, c := range corners {
		x, y := view.apply(c)
		if x < 40-1e-9 || x > 860+1e-9 || y < 40-1e-9 || y > 560+1e-9 {
			t.Errorf("corner %v mapped outside padded area: (%g, %g)", c, x, y)
		}
	}
}

func TestFitContentFlipsY(t *testing.T) {
	view := fitContent(bezier.Pt(-1, -1), bezier.Pt(1, 1), 900, 600, 40, 0)
	_, top := view.apply(bezier.Pt(0, 0.9))
	_, bottom := view.apply(bezier.Pt(0, -0.9))
	if top >= bottom {
		t.Errorf("higher content not above lower: top=%g bottom=%g", top, bottom)
	}
}

func TestFitContentUniformScale(t *testing.T) {
	// Wide content in a tall canvas: one unit must map to the same
	// pixel length on both axes.
	view := fitContent(bezier.Pt(-1, -0.1), bezier.Pt(1, 0.1), 400, 400, 20, 0)
	x0, y0 := view.apply(bezier.Pt(0, 0))
	x1, _ := view.apply(bezier.Pt(0.1, 0))
	_, y1 := view.apply(bezier.Pt(0, 0.1))
	dx := x1 - x0
	dy := y0 - y1
	if math.Abs(dx-dy) > 1e-9 {
		t.Errorf("anisotropic scale: dx=%g dy=%g", dx, dy)
	}
}

func TestFitContentDegenerate(t *testing.T) {
	// All points coincident: the fit must stay finite.
	p := bezier.Pt(0.25, 0.25)
	view := fitContent(p, p, 900, 600, 40, 0)
	x, y := view.apply(p)
	if math.IsInf(x, 0) || math.IsNaN(x) || math.IsInf(y, 0) || math.IsNaN(y) {
		t.Errorf("degenerate content mapped to (%g, %g)", x, y)
	}
}

func TestFitContentTitleSpace(t *testing.T) {
	plain := fitContent(bezier.Pt(-1, -1), bezier.Pt(1, 1), 900, 600, 40, 0)
	titled := fitContent(bezier.Pt(-1, -1), bezier.Pt(1, 1), 900, 600, 40, 35)
	_, yPlain := plain.apply(bezier.Pt(0, 1))
	_, yTitled := titled.apply(bezier.Pt(0, 1))
	if yTitled <= yPlain {
		t.Errorf("title space did not push content down: %g vs %g", yTitled, yPlain)
	}
}
