// File: mutate.go
// Role: Surgical mutation primitives used by the graft package to splice
// a query point into the graph and later undo the splice exactly.
//
// These are deliberately narrow: graft.Join and graft.Revert are the only
// callers, and each method here does exactly one step of spec.md §4.3 so
// that package graft reads as a straight transcription of the algorithm
// rather than reaching into Graph's fields directly.
package core

import "sort"

// ReplaceEdgeRef replaces the first occurrence of oldIdx with newIdx in
// V[vertexIdx].Edges. Used when a graft splits edge oldIdx into two new
// edges and the endpoints' adjacency must point at the correct half.
func (g *Graph) ReplaceEdgeRef(vertexIdx, oldIdx, newIdx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	edges := g.V[vertexIdx].Edges
	for i, e := range edges {
		if e == oldIdx {
			edges[i] = newIdx
			return
		}
	}
}

// Deactivate inserts idx into InactiveEdges.
func (g *Graph) Deactivate(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.InactiveEdges[idx] = struct{}{}
}

// IncJoinedVertices increments the transient-vertex counter by one.
func (g *Graph) IncJoinedVertices() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.JoinedVertices++
}

// TruncateToOriginal drops every transient vertex and edge appended since
// the last revert, per the layout invariant of spec.md §3: the last
// JoinedVertices entries of V and the last 2*JoinedVertices entries of E
// are always transient.
func (g *Graph) TruncateToOriginal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.JoinedVertices == 0 {
		return
	}
	newVLen := len(g.V) - g.JoinedVertices
	newELen := len(g.E) - 2*g.JoinedVertices
	g.V = g.V[:newVLen]
	g.E = g.E[:newELen]
}

// PruneStaleEdgeRefs removes from V[vertexIdx].Edges every index that is
// now >= the current len(E), i.e. every reference to an edge truncated
// away by TruncateToOriginal.
func (g *Graph) PruneStaleEdgeRefs(vertexIdx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	edges := g.V[vertexIdx].Edges
	out := edges[:0]
	for _, e := range edges {
		if e < len(g.E) {
			out = append(out, e)
		}
	}
	g.V[vertexIdx].Edges = out
}

// ReinstateEdge appends idx back onto both of its endpoints' Edges lists,
// using the endpoints recorded on E[idx] itself (which TruncateToOriginal
// never touches — only the tail of E is removed, and idx by construction
// survived the truncation).
func (g *Graph) ReinstateEdge(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.E[idx]
	g.V[e.V1].Edges = append(g.V[e.V1].Edges, idx)
	if e.V2 != e.V1 {
		g.V[e.V2].Edges = append(g.V[e.V2].Edges, idx)
	}
}

// InactiveEdgeIndices returns the indices currently in InactiveEdges,
// sorted ascending, for deterministic revert processing order.
func (g *Graph) InactiveEdgeIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.InactiveEdges))
	for i := range g.InactiveEdges {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// ClearInactive empties InactiveEdges and resets JoinedVertices to zero,
// completing Grafter.Revert.
func (g *Graph) ClearInactive() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.InactiveEdges = make(map[int]struct{})
	g.JoinedVertices = 0
}
