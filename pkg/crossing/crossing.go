// Package crossing implements the bracketed-bisection root finder shared
// by every limb engine: given a monotone (modulo 360) angle function of
// Julian Day, find the next instant at which it equals a target angle.
package crossing

import "math"

// MaxIterations bounds the bisection loop. On exhaustion the final
// midpoint is returned rather than an error — SolverNonConvergence is
// never surfaced to callers and is not logged; the returned value does
// not tell a caller whether the tolerance was met.
const MaxIterations = 50

// DefaultTolerance is the angular tolerance, in degrees, at which the
// bisection stops. For the motions involved (Sun/Moon ecliptic longitude)
// this resolves the crossing instant to within about a minute of time.
const DefaultTolerance = 1e-3

// AngleFunc maps a Julian Day to a degree value that may fall anywhere
// in (-inf, inf); callers are expected to reduce it mod 360 themselves
// or rely on Find's internal wrapping via shortestSignedArc.
type AngleFunc func(jd float64) float64

// Find returns the Julian Day in [lo, hi] at which f crosses target,
// using angular bisection: the interval is halved toward whichever half
// straddles zero signed angular difference from target. Callers must
// bracket by at least one full expected event period — f is assumed
// monotone (modulo 360) over [lo, hi] after accounting for wraparound.
func Find(lo, hi, target float64, f AngleFunc) float64 {
	return FindTol(lo, hi, target, f, DefaultTolerance)
}

// FindTol is Find with an explicit angular tolerance in degrees.
func FindTol(lo, hi, target float64, f AngleFunc, tol float64) float64 {
	mid := lo
	for i := 0; i < MaxIterations; i++ {
		mid = (lo + hi) / 2
		diffLo := shortestSignedArc(f(lo) - target)
		diffMid := shortestSignedArc(f(mid) - target)

		if math.Abs(diffMid) < tol {
			return mid
		}

		// The half whose endpoints straddle zero contains the crossing.
		if sameSign(diffLo, diffMid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mid
}

// shortestSignedArc reduces a degree difference to (-180, 180].
func shortestSignedArc(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

func sameSign(a, b float64) bool {
	if a == 0 || b == 0 {
		return false
	}
	return (a > 0) == (b > 0)
}
