package planar

import "github.com/blevesearch/geo/r2"

// Point is a finite (x, y) pair on the plane. It is a named alias of
// r2.Vector so callers get vector arithmetic (Add, Sub, Mul, Dot, Norm)
// for free instead of a hand-rolled struct with duplicated math.
type Point = r2.Vector

// DefaultEpsilon is the default tolerance for ε-equality, per spec.md §3.
const DefaultEpsilon = 1e-6

// EpsilonEqual reports whether a and b are within eps on each axis:
// |Δx| < eps ∧ |Δy| < eps. This is the only equality Locator and Graph
// use when comparing points to a graph vertex; spec.md §9 notes the
// original source also carried a redundant exact-equality branch, which
// this module drops (see DESIGN.md).
func EpsilonEqual(a, b Point, eps float64) bool {
	d := a.Sub(b)
	return absf(d.X) < eps && absf(d.Y) < eps
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
