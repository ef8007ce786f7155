package planar

import "math"

// Polyline is an ordered sequence of >=2 planar points, interpreted as
// linear interpolation between consecutive points.
type Polyline []Point

// Length returns the sum of Euclidean distances between consecutive
// points. Reversing a polyline preserves Length.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Norm()
	}
	return total
}

// Reverse returns a new Polyline with the point order reversed; p is not
// modified.
func (p Polyline) Reverse() Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// First returns p[0]. Panics on an empty polyline — every Polyline in
// this module has at least two points by construction.
func (p Polyline) First() Point { return p[0] }

// Last returns p[len(p)-1].
func (p Polyline) Last() Point { return p[len(p)-1] }

// ClosestPointOnPolyline finds the point on p closest to pt by projecting
// pt onto each segment in turn and keeping the minimum-distance
// projection; ties (equal distance) are broken in favor of the
// lowest-indexed segment, matching the Locator tie-break rule of
// spec.md §4.2. vertexAfter is the index into p of the polyline vertex
// immediately following the closest point — the split point for
// SplitAt.
func ClosestPointOnPolyline(p Polyline, pt Point) (closest Point, vertexAfter int, dist float64) {
	dist = math.Inf(1)
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		seg := b.Sub(a)
		segLen2 := seg.Dot(seg)

		var proj Point
		var after int
		if segLen2 == 0 {
			proj = a
			after = i + 1
		} else {
			t := pt.Sub(a).Dot(seg) / segLen2
			switch {
			case t <= 0:
				proj = a
				after = i
			case t >= 1:
				proj = b
				after = i + 1
			default:
				proj = a.Add(seg.Mul(t))
				after = i + 1
			}
		}

		d := pt.Sub(proj).Norm()
		if d < dist {
			dist = d
			closest = proj
			vertexAfter = after
		}
	}
	return closest, vertexAfter, dist
}

// SplitAt splits p at pt using the vertexAfter index ClosestPointOnPolyline
// produced, returning the two halves. Both halves share pt as their
// common endpoint; all of p's intermediate vertices are preserved on
// their correct side.
func SplitAt(p Polyline, pt Point, vertexAfter int) (before, after Polyline) {
	before = make(Polyline, 0, vertexAfter+1)
	before = append(before, p[:vertexAfter]...)
	before = append(before, pt)

	after = make(Polyline, 0, len(p)-vertexAfter+1)
	after = append(after, pt)
	after = append(after, p[vertexAfter:]...)

	return before, after
}
