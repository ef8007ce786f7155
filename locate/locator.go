package locate

import (
	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/planar"
)

// PointToVertex returns the index of the first vertex whose Point
// ε-equals pt, and true. If no vertex matches, it returns (0, false).
func PointToVertex(g *core.Graph, pt planar.Point, eps float64) (int, bool) {
	n := g.NumVertices()
	for i := 0; i < n; i++ {
		v, err := g.Vertex(i)
		if err != nil {
			continue
		}
		if planar.EpsilonEqual(v.Pt, pt, eps) {
			return i, true
		}
	}
	return 0, false
}

// PointToEdge scans active edges for one whose polyline comes within eps
// of pt, returning the lowest-indexed match (the tie-break spec.md §4.2
// mandates), the polyline index immediately following the hit point, and
// true. If idx is non-nil, its Candidates are scanned instead of every
// active edge — same answer, fewer polyline projections on a large
// graph.
func PointToEdge(g *core.Graph, pt planar.Point, eps float64, idx *Index) (edgeIdx, vertexAfter int, ok bool) {
	candidates := g.ActiveEdges()
	if idx != nil {
		candidates = idx.Candidates(pt, eps)
	}

	bestEdge := -1
	bestVertexAfter := 0
	for _, i := range candidates {
		if !g.IsActive(i) {
			continue
		}
		e, err := g.Edge(i)
		if err != nil {
			continue
		}
		_, after, dist := planar.ClosestPointOnPolyline(e.Coords, pt)
		if dist >= eps {
			continue
		}
		if bestEdge == -1 || i < bestEdge {
			bestEdge = i
			bestVertexAfter = after
		}
	}

	if bestEdge == -1 {
		return 0, 0, false
	}
	return bestEdge, bestVertexAfter, true
}
