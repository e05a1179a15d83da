// De Casteljau evaluation of Bézier curves of arbitrary degree.

package bezier

// Evaluate samples the curve defined by ctrl at samples+1 uniformly
// spaced parameters from t=0 to t=1 inclusive. With fewer than two
// control points there is no curve and the result is nil. The first
// sample equals ctrl[0] and the last equals the final control point
// exactly, not merely to within rounding.
//
// Each call recomputes the full sequence at O(samples * n²) cost, so
// callers driving interactive drags should keep samples bounded.
func Evaluate(ctrl []Point, samples int) []Point {
	if len(ctrl) < 2 || samples < 1 {
		return nil
	}
	out := make([]Point, 0, samples+1)
	scratch := make([]Point, len(ctrl))
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		out = append(out, reduce(scratch, ctrl, t))
	}
	return out
}

// EvaluateAt returns the curve point at parameter t. It reports false
// when fewer than two control points are supplied. t outside [0, 1]
// extrapolates the curve polynomial.
func EvaluateAt(ctrl []Point, t float64) (Point, bool) {
	if len(ctrl) < 2 {
		return Point{}, false
	}
	scratch := make([]Point, len(ctrl))
	return reduce(scratch, ctrl, t), true
}

// reduce runs the full De Casteljau pyramid for one parameter value,
// repeatedly replacing adjacent pairs with their interpolation until a
// single point remains. scratch must have len(ctrl) capacity; it is
// overwritten every call.
func reduce(scratch, ctrl []Point, t float64) Point {
	copy(scratch, ctrl)
	for k := len(ctrl) - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}

// Tangent returns the derivative vector of the curve at parameter t.
// The reduction is stopped one stage early: the difference of the last
// two surviving points, scaled by the degree, is the derivative. It
// reports false when fewer than two control points are supplied.
func Tangent(ctrl []Point, t float64) (Point, bool) {
	n := len(ctrl)
	if n < 2 {
		return Point{}, false
	}
	scratch := make([]Point, n)
	copy(scratch, ctrl)
	for k := n - 1; k > 1; k-- {
		for i := 0; i < k; i++ {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[1].Sub(scratch[0]).Mul(float64(n - 1)), true
}

// CurveLength approximates arc length by summing the chord lengths of
// an Evaluate run with the given sample count.
func CurveLength(ctrl []Point, samples int) float64 {
	pts := Evaluate(ctrl, samples)
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += pts[i].Distance(pts[i-1])
	}
	return length
}
