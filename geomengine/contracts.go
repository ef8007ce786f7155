// Package geomengine declares the geometry-engine contract the tracer
// consumes (spec.md §6): segmentizing curved geometry, splitting and
// measuring polylines, computing offset curves, and the optional
// external noding step. "The geometry library that performs
// segmentization, polyline splitting/length/offset-curve operations, and
// the optional geometric noding step" is explicitly out of scope per
// spec.md §1 — this package is the seam, not an implementation.
//
// planar.ClosestPointOnPolyline and planar.SplitAt already implement the
// closest_segment/split half of this contract in-process (spec.md §6),
// since those are pure planar arithmetic this module owns regardless of
// which external engine is wired. Segmentize, OffsetCurve, and Node stay
// interfaces because they depend on a curved-geometry model and a
// noding algorithm this module does not implement.
package geomengine

import "github.com/planartrace/tracer/planar"

// JoinStyle selects how OffsetCurve renders convex corners, per
// spec.md §4.5's offset parameters.
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinBevel
	JoinRound
)

// Segmentizer expands curved segments (arcs, splines) in a source
// geometry into polyline approximations, per spec.md §6.
type Segmentizer interface {
	Segmentize(parts [][]planar.Point) ([]planar.Polyline, error)
}

// OffsetCurver computes a parallel offset curve of a polyline, per
// spec.md §4.5/§6. A negative distance offsets to the opposite side; the
// resulting curve's handedness relative to the original direction is not
// guaranteed by this contract (the facade corrects it by comparing
// endpoints, per spec.md §4.5 step 6).
type OffsetCurver interface {
	OffsetCurve(p planar.Polyline, distance float64, quadSegments int, join JoinStyle, miterLimit float64) (planar.Polyline, error)
}

// Noder splits a multi-linestring at every mutual intersection so it
// only meets itself at endpoints, per spec.md §4.1/§6. Node may return
// an error (e.g. the original source's noding step can raise); callers
// MUST catch it and degrade to the un-noded input rather than
// propagate it, per spec.md §4.1/§9.
type Noder interface {
	Node(lines []planar.Polyline) ([]planar.Polyline, error)
}
