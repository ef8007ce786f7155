package builder

import (
	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/geomengine"
	"github.com/planartrace/tracer/planar"
)

// Build consumes a multi-linestring and returns a *core.Graph whose
// edges are exactly the input polylines (verbatim, including every
// intermediate vertex) and whose vertices are the deduplicated
// endpoints, per spec.md §4.1.
//
// Zero-length polylines (first == last) still produce an edge with
// V1 == V2, a degenerate self-loop core.Graph permits; duplicate input
// polylines produce duplicate parallel edges. Neither is filtered —
// spec.md §4.1 leaves both as the caller's choice, and dijkstra treats
// both correctly (a zero-weight loop never improves a shortest path; a
// duplicate edge is just another zero-or-more-weight route).
func Build(lines []planar.Polyline) *core.Graph {
	g := core.NewGraph()
	index := make(map[planar.Point]int)

	vertexFor := func(pt planar.Point) int {
		if idx, ok := index[pt]; ok {
			return idx
		}
		idx := g.AppendVertex(core.Vertex{Pt: pt})
		index[pt] = idx
		return idx
	}

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		v1 := vertexFor(line.First())
		v2 := vertexFor(line.Last())
		// AppendEdge cannot fail here: v1/v2 were just minted or looked up
		// on g itself, and line has at least two points.
		_, _ = g.AppendEdge(core.Edge{V1: v1, V2: v2, Coords: line})
	}

	return g
}

// BuildWithNoder runs the optional external noding pre-pass of spec.md
// §4.1/§6 before calling Build. If noder is nil, noding is skipped
// entirely (the default: spec.md treats noding as optional and delegates
// the decision to the caller, an Open Question the original source left
// unresolved — see DESIGN.md). If noder.Node returns an error, the
// failure is caught here, topologyProblem is reported true, and Build
// proceeds on the original un-noded lines.
func BuildWithNoder(lines []planar.Polyline, noder geomengine.Noder) (g *core.Graph, topologyProblem bool) {
	if noder == nil {
		return Build(lines), false
	}

	noded, err := noder.Node(lines)
	if err != nil {
		return Build(lines), true
	}
	return Build(noded), false
}
