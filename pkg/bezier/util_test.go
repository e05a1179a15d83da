package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func nearPt(t *testing.T, want, got Point, eps float64) {
	t.Helper()
	if math.Abs(want.X-got.X) > eps || math.Abs(want.Y-got.Y) > eps {
		t.Errorf("got %v, want %v (within %g)", got, want, eps)
	}
}
