package binning

import (
	"math"
	"testing"

	"github.com/banshee-data/trackgeom/geom"
)

func TestAxisPartition(t *testing.T) {
	t.Parallel()

	a := Axis{Bins: 5, Min: -2, Max: 3, Boundary: Open, Coord: CoordZ}

	// Bins tile [Min, Max] without gap or overlap: edges are exact
	// multiples of the width and every center falls inside the range.
	if w := a.Width(); math.Abs(w-1.0) > 1e-12 {
		t.Fatalf("expected width 1.0, got %v", w)
	}
	for bin := 0; bin < a.Bins; bin++ {
		c := a.Center(bin)
		if c <= a.Min || c >= a.Max {
			t.Errorf("center of bin %d (%v) outside range [%v, %v]", bin, c, a.Min, a.Max)
		}
	}
}

func TestAxisCenterRoundTrip(t *testing.T) {
	t.Parallel()

	axes := []Axis{
		{Bins: 8, Min: -math.Pi, Max: math.Pi, Boundary: Closed, Coord: CoordPhi},
		{Bins: 7, Min: -100, Max: 100, Boundary: Open, Coord: CoordZ},
		{Bins: 3, Min: 20, Max: 80, Boundary: Open, Coord: CoordR},
	}
	for _, a := range axes {
		for bin := 0; bin < a.Bins; bin++ {
			if got := a.Index(a.Center(bin)); got != bin {
				t.Errorf("axis %+v: Index(Center(%d)) = %d", a, bin, got)
			}
		}
	}
}

func TestClosedAxisWrap(t *testing.T) {
	t.Parallel()

	a := Axis{Bins: 8, Min: -math.Pi, Max: math.Pi, Boundary: Closed, Coord: CoordPhi}

	// Just below +pi stays in the last bin, at/above +pi wraps to bin 0.
	if got := a.Index(math.Pi - 1e-9); got != 7 {
		t.Errorf("just below +pi: expected bin 7, got %d", got)
	}
	if got := a.Index(math.Pi + 1e-9); got != 0 {
		t.Errorf("just above +pi: expected bin 0, got %d", got)
	}
	if got := a.Index(-math.Pi - 1e-9); got != 7 {
		t.Errorf("just below -pi: expected bin 7, got %d", got)
	}
	// Whole turns away resolve to the same bin.
	if got := a.Index(0.1 + 2*math.Pi); got != a.Index(0.1) {
		t.Errorf("full turn changed the bin: %d vs %d", got, a.Index(0.1))
	}
}

func TestOpenAxisClamp(t *testing.T) {
	t.Parallel()

	a := Axis{Bins: 4, Min: -50, Max: 50, Boundary: Open, Coord: CoordZ}
	if got := a.Index(-1000); got != 0 {
		t.Errorf("below range: expected bin 0, got %d", got)
	}
	if got := a.Index(1000); got != 3 {
		t.Errorf("above range: expected bin 3, got %d", got)
	}
}

func TestSingleBinPassThrough(t *testing.T) {
	t.Parallel()

	a := Axis{Bins: 1, Min: 30, Max: 60, Boundary: Open, Coord: CoordR}
	for _, v := range []float64{-10, 0, 45, 1e6} {
		if got := a.Index(v); got != 0 {
			t.Errorf("Index(%v) = %d, want 0", v, got)
		}
	}
	if c := a.Center(0); math.Abs(c-45) > 1e-12 {
		t.Errorf("expected midpoint center 45, got %v", c)
	}
}

func TestAxisCoordinate(t *testing.T) {
	t.Parallel()

	p := geom.Vec{X: 3, Y: 4, Z: -7}
	cases := []struct {
		coord Coord
		want  float64
	}{
		{CoordX, 3},
		{CoordY, 4},
		{CoordZ, -7},
		{CoordR, 5},
		{CoordPhi, math.Atan2(4, 3)},
	}
	for _, tc := range cases {
		a := Axis{Bins: 1, Coord: tc.coord}
		if got := a.Coordinate(p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("coord %v: expected %v, got %v", tc.coord, tc.want, got)
		}
	}
}
