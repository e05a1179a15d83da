package main

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		wantX   float64
		wantY   float64
		wantErr bool
	}{
		{"10,20", 10, 20, false},
		{"10, 20", 10, 20, false},
		{"10 20", 10, 20, false},
		{"-1.5,2.25", -1.5, 2.25, false},
		{"1e3,-2e-2", 1000, -0.02, false},
		{"10", 0, 0, true},
		{"10,20,30", 0, 0, true},
		{"a,b", 0, 0, true},
		{"10,b", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		p, err := parsePoint(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePoint(%q): expected error, got %v", tt.in, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePoint(%q): %v", tt.in, err)
			continue
		}
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("parsePoint(%q) = %v, want (%g, %g)", tt.in, p, tt.wantX, tt.wantY)
		}
	}
}

func TestReadPoints(t *testing.T) {
	in := `# demo curve
10,20

30,40
  50 , 60
`
	pts, err := readPoints(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readPoints: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	if pts[0].X != 10 || pts[0].Y != 20 {
		t.Errorf("first point = %v, want (10, 20)", pts[0])
	}
	if pts[2].X != 50 || pts[2].Y != 60 {
		t.Errorf("last point = %v, want (50, 60)", pts[2])
	}
}

func TestReadPointsBadLine(t *testing.T) {
	_, err := readPoints(strings.NewReader("10,20\nnot a point\n"))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}

func TestReadPointsEmpty(t *testing.T) {
	pts, err := readPoints(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("readPoints: %v", err)
	}
	if len(pts) != 0 {
		t.Errorf("got %d points, want 0", len(pts))
	}
}

func TestResolvePoints(t *testing.T) {
	// Inline "x,y" arguments
	pts, err := resolvePoints([]string{"10,10", "50,90", "90,10"})
	if err != nil {
		t.Fatalf("resolvePoints: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	if pts[1].X != 50 || pts[1].Y != 90 {
		t.Errorf("pts[1] = %s, want (50, 90)", pts[1])
	}

	// A single comma-bearing argument is still an inline point
	pts, err = resolvePoints([]string{"3,4"})
	if err != nil {
		t.Fatalf("resolvePoints: %v", err)
	}
	if len(pts) != 1 {
		t.Errorf("got %d points, want 1", len(pts))
	}

	// A single argument without a comma is a file name
	if _, err := resolvePoints([]string{"no-such-points-file.txt"}); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := resolvePoints(nil); err == nil {
		t.Error("expected error for empty input")
	}

	if _, err := resolvePoints([]string{"10,10", "bogus,"}); err == nil {
		t.Error("expected error for malformed inline point")
	}
}

// FuzzParsePoint tests the point parser with arbitrary input.
// Looking for panics; accepted input must survive a round-trip.
func FuzzParsePoint(f *testing.F) {
	f.Add("10,20")
	f.Add("1e308,-1e-308")
	f.Add("-0.5 2.5")
	f.Add("")
	f.Add(",")
	f.Add("NaN,NaN")
	f.Add("Inf,-Inf")
	f.Add("10,20,30")
	f.Add("0x1p-2,1_000")

	f.Fuzz(func(t *testing.T, s string) {
		p, err := parsePoint(s)
		if err != nil {
			return
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return // NaN never compares equal
		}

		// Round-trip through the same format the files use
		formatted := fmt.Sprintf("%g,%g", p.X, p.Y)
		p2, err := parsePoint(formatted)
		if err != nil {
			t.Fatalf("round-trip parse of %q failed: %v", formatted, err)
		}
		if p2 != p {
			t.Errorf("round-trip mismatch: %q -> %v -> %q -> %v", s, p, formatted, p2)
		}
	})
}
