package graft

import (
	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/locate"
	"github.com/planartrace/tracer/planar"
)

// Join splits the active edge under pt (if any) and appends a transient
// vertex at pt, per spec.md §4.3. idx is an optional locate.Index
// (may be nil); when non-nil it is rebuilt by the caller between queries,
// never by Join itself.
//
// Returns the new vertex's index and true, or (0, false) if pt does not
// lie on any active edge within eps.
func Join(g *core.Graph, pt planar.Point, eps float64, idx *locate.Index) (int, bool) {
	hitEdge, vertexAfter, ok := locate.PointToEdge(g, pt, eps, idx)
	if !ok {
		return 0, false
	}

	e, err := g.Edge(hitEdge)
	if err != nil {
		return 0, false
	}
	a, b := e.V1, e.V2

	before, after := planar.SplitAt(e.Coords, pt, vertexAfter)

	// A split landing exactly on the hit edge's first vertex
	// (vertexAfter == 0) produces a one-point half; reject before mutating
	// g at all, since
	// AppendVertex has no corresponding remove and a half-finished graft
	// (vertex appended, JoinedVertices never incremented) would corrupt
	// every subsequent Revert.
	if len(before) < 2 || len(after) < 2 {
		return 0, false
	}

	n := g.AppendVertex(core.Vertex{Pt: pt})

	e1idx, err := g.AppendEdge(core.Edge{V1: a, V2: n, Coords: before})
	if err != nil {
		return 0, false
	}
	e2idx, err := g.AppendEdge(core.Edge{V1: n, V2: b, Coords: after})
	if err != nil {
		return 0, false
	}

	g.ReplaceEdgeRef(a, hitEdge, e1idx)
	g.ReplaceEdgeRef(b, hitEdge, e2idx)

	g.Deactivate(hitEdge)
	g.IncJoinedVertices()

	return n, true
}

// PointInGraph returns the index of the vertex at pt: an existing vertex
// if one ε-matches, otherwise a freshly grafted transient one. Returns
// (0, false) if pt neither matches a vertex nor lies on any active edge.
func PointInGraph(g *core.Graph, pt planar.Point, eps float64, idx *locate.Index) (int, bool) {
	if v, ok := locate.PointToVertex(g, pt, eps); ok {
		return v, true
	}
	return Join(g, pt, eps, idx)
}

// Revert undoes every Join performed since the last Revert, restoring
// the graph's vertex and edge slices to their pre-graft length and
// reinstating each edge a graft deactivated, per spec.md §4.3 step-by-step.
func Revert(g *core.Graph) {
	inactive := g.InactiveEdgeIndices()

	g.TruncateToOriginal()

	touched := make(map[int]struct{})
	for _, i := range inactive {
		if i >= g.NumEdges() {
			continue
		}
		e, err := g.Edge(i)
		if err != nil {
			continue
		}
		for _, v := range []int{e.V1, e.V2} {
			if _, done := touched[v]; done {
				continue
			}
			g.PruneStaleEdgeRefs(v)
			touched[v] = struct{}{}
		}
	}

	for _, i := range inactive {
		if i >= g.NumEdges() {
			continue
		}
		g.ReinstateEdge(i)
	}

	g.ClearInactive()
}
