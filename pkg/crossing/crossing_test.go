package crossing

import (
	"math"
	"testing"
)

// linear models a quantity advancing at degreesPerDay from an origin JD.
func linear(origin, degreesPerDay float64) AngleFunc {
	return func(jd float64) float64 {
		deg := math.Mod((jd-origin)*degreesPerDay, 360)
		if deg < 0 {
			deg += 360
		}
		return deg
	}
}

func TestFindLinearCrossing(t *testing.T) {
	// A quantity advancing 12 degrees/day from jd=0 hits 180 degrees at jd=15.
	f := linear(0, 12)
	got := Find(0, 30, 180, f)
	if math.Abs(got-15) > 1.0/1440.0 { // within a minute
		t.Errorf("Find = %.6f, expected ~15.0", got)
	}
}

func TestFindRespectsTolerance(t *testing.T) {
	f := linear(100, 13.1763) // tithi-like rate
	target := 90.0
	got := FindTol(100, 130, target, f, 1e-6)
	diff := shortestSignedArc(f(got) - target)
	if math.Abs(diff) > 1e-5 {
		t.Errorf("angle at solved JD differs from target by %.8f degrees", diff)
	}
}

func TestFindNonConvergenceReturnsFinalMidpoint(t *testing.T) {
	// A function that oscillates rapidly so bisection can't converge
	// within the tolerance; Find must still return a value inside the bracket.
	f := func(jd float64) float64 {
		v := math.Mod(jd*1000, 360)
		if v < 0 {
			v += 360
		}
		return v
	}
	got := Find(0, 1, 180, f)
	if got < 0 || got > 1 {
		t.Errorf("Find returned %.6f outside bracket [0,1]", got)
	}
}

func TestShortestSignedArc(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{-181, 179},
		{359, -1},
		{-359, 1},
		{720 + 10, 10},
	}
	for _, tt := range tests {
		got := shortestSignedArc(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("shortestSignedArc(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
