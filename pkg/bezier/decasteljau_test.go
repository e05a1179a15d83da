package bezier

import (
	"math"
	"testing"
)

func TestEvaluateTooFewPoints(t *testing.T) {
	if got := Evaluate(nil, 16); got != nil {
		t.Errorf("Evaluate(nil) = %v", got)
	}
	if got := Evaluate([]Point{Pt(5, 5)}, 16); got != nil {
		t.Errorf("Evaluate(one point) = %v", got)
	}
}

func TestEvaluateSampleCount(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(1, 2), Pt(3, 1), Pt(4, 4)}
	for _, samples := range []int{1, 2, 16, 100, 256} {
		got := Evaluate(ctrl, samples)
		if len(got) != samples+1 {
			t.Errorf("samples=%d: got %d points, want %d", samples, len(got), samples+1)
		}
	}
}

func TestEvaluateEndpointsExact(t *testing.T) {
	// Awkward magnitudes so any rounding in the endpoint samples would
	// show up as a bitwise mismatch.
	base := []Point{
		Pt(0.1, 0.7),
		Pt(1e7+0.3, -2.5),
		Pt(-333.33, 1e-9),
		Pt(12.0625, 900.01),
		Pt(-1e5, 0.333333),
		Pt(59.9, 2.6),
	}
	for n := 2; n <= len(base); n++ {
		ctrl := base[:n]
		got := Evaluate(ctrl, 64)
		if got[0] != ctrl[0] {
			t.Errorf("n=%d: first sample %v, want %v", n, got[0], ctrl[0])
		}
		if got[len(got)-1] != ctrl[n-1] {
			t.Errorf("n=%d: last sample %v, want %v", n, got[len(got)-1], ctrl[n-1])
		}
	}
}

func TestEvaluateLine(t *testing.T) {
	a := Pt(10, 10)
	b := Pt(90, 50)
	got := Evaluate([]Point{a, b}, 8)
	for i, p := range got {
		tt := float64(i) / 8
		want := a.Lerp(b, tt)
		if p != want {
			t.Errorf("sample %d: %v, want %v", i, p, want)
		}
	}
}

func TestEvaluateQuadraticMidpoint(t *testing.T) {
	p0 := Pt(0, 0)
	p1 := Pt(2, 4)
	p2 := Pt(4, 0)
	got, ok := EvaluateAt([]Point{p0, p1, p2}, 0.5)
	if !ok {
		t.Fatal("EvaluateAt reported no curve")
	}
	// B(0.5) = 0.25*p0 + 0.5*p1 + 0.25*p2
	want := p0.Mul(0.25).Add(p1.Mul(0.5)).Add(p2.Mul(0.25))
	nearPt(t, want, got, 1e-12)
}

func TestEvaluateMatchesBernsteinCubic(t *testing.T) {
	ctrl := []Point{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(9.7, 9.3)}
	bernstein := func(tt float64) Point {
		u := 1 - tt
		b0 := u * u * u
		b1 := 3 * u * u * tt
		b2 := 3 * u * tt * tt
		b3 := tt * tt * tt
		return ctrl[0].Mul(b0).Add(ctrl[1].Mul(b1)).Add(ctrl[2].Mul(b2)).Add(ctrl[3].Mul(b3))
	}
	const n = 20
	got := Evaluate(ctrl, n)
	for i := 0; i <= n; i++ {
		tt := float64(i) / n
		nearPt(t, bernstein(tt), got[i], 1e-12)
	}
}

func TestEvaluateAtMatchesEvaluate(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(5, 10), Pt(10, -3), Pt(15, 6), Pt(20, 0)}
	const n = 10
	samples := Evaluate(ctrl, n)
	for i := 0; i <= n; i++ {
		tt := float64(i) / n
		got, ok := EvaluateAt(ctrl, tt)
		if !ok {
			t.Fatalf("EvaluateAt(%g) reported no curve", tt)
		}
		if got != samples[i] {
			t.Errorf("t=%g: EvaluateAt %v, Evaluate %v", tt, got, samples[i])
		}
	}
}

func TestEvaluateAtTooFewPoints(t *testing.T) {
	if _, ok := EvaluateAt(nil, 0.5); ok {
		t.Error("EvaluateAt(nil) reported a curve")
	}
	if _, ok := EvaluateAt([]Point{Pt(1, 1)}, 0.5); ok {
		t.Error("EvaluateAt(one point) reported a curve")
	}
}

func TestTangentLine(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(7, -4)
	want := b.Sub(a)
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		got, ok := Tangent([]Point{a, b}, tt)
		if !ok {
			t.Fatal("Tangent reported no curve")
		}
		nearPt(t, want, got, 1e-12)
	}
}

func TestTangentQuadraticEndpoints(t *testing.T) {
	p0 := Pt(0, 0)
	p1 := Pt(2, 4)
	p2 := Pt(6, 2)
	// Derivative at the ends of a quadratic is 2*(p1-p0) and 2*(p2-p1).
	got0, _ := Tangent([]Point{p0, p1, p2}, 0)
	nearPt(t, p1.Sub(p0).Mul(2), got0, 1e-12)
	got1, _ := Tangent([]Point{p0, p1, p2}, 1)
	nearPt(t, p2.Sub(p1).Mul(2), got1, 1e-12)
}

func TestTangentMatchesFiniteDifference(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(0, 0.5), Pt(1, 1), Pt(1.5, 0.25)}
	const delta = 1e-6
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		d, ok := Tangent(ctrl, tt)
		if !ok {
			t.Fatal("Tangent reported no curve")
		}
		p0, _ := EvaluateAt(ctrl, tt)
		p1, _ := EvaluateAt(ctrl, tt+delta)
		approx := p1.Sub(p0).Mul(1 / delta)
		if err := d.Sub(approx).Distance(Pt(0, 0)); err > delta*20 {
			t.Errorf("t=%g: difference %g between analytic and numeric derivative", tt, err)
		}
	}
}

func TestTangentTooFewPoints(t *testing.T) {
	if _, ok := Tangent([]Point{Pt(1, 1)}, 0.5); ok {
		t.Error("Tangent(one point) reported a curve")
	}
}

func TestCurveLengthLine(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(30, 40)
	got := CurveLength([]Point{a, b}, 64)
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("length = %g, want 50", got)
	}
}

func TestCurveLengthDegenerate(t *testing.T) {
	if got := CurveLength(nil, 64); got != 0 {
		t.Errorf("length of no curve = %g", got)
	}
	if got := CurveLength([]Point{Pt(1, 1)}, 64); got != 0 {
		t.Errorf("length of single point = %g", got)
	}
}

func TestCurveLengthAtLeastChord(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(10, 20), Pt(20, 0)}
	chord := ctrl[0].Distance(ctrl[len(ctrl)-1])
	if got := CurveLength(ctrl, 128); got < chord {
		t.Errorf("length %g shorter than chord %g", got, chord)
	}
}
