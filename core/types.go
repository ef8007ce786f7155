// File: types.go
// Role: Vertex, Edge, Graph types and sentinel errors.
package core

import (
	"errors"
	"sync"

	"github.com/planartrace/tracer/planar"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexIndexOutOfRange indicates a vertex index outside [0, len(V)).
	ErrVertexIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeIndexOutOfRange indicates an edge index outside [0, len(E)).
	ErrEdgeIndexOutOfRange = errors.New("core: edge index out of range")

	// ErrDegenerateEdge indicates an edge whose endpoints coincide with no
	// coords, which cannot happen via Builder/Grafter but is rejected by
	// AppendEdge defensively.
	ErrDegenerateEdge = errors.New("core: edge has fewer than two coords")

	// ErrInvariantViolation is returned by CheckInvariants, wrapped with
	// a specific reason.
	ErrInvariantViolation = errors.New("core: invariant violation")
)

// Vertex is a planar graph vertex: a point plus the indices of the edges
// incident to it. Two vertices in the same Graph never share the same
// Point (enforced by Builder's dedup and by Grafter's Locator lookup).
type Vertex struct {
	Pt    planar.Point
	Edges []int
}

// Edge is a polyline-weighted planar graph edge between two vertex
// indices, distinct except for the zero-length self-loops Builder
// permits. Coords.First ε-equals V[V1].Pt and Coords.Last
// ε-equals V[V2].Pt, or the reverse — the polyline is undirected and its
// orientation is recovered from endpoint identity when traversed.
type Edge struct {
	V1, V2 int
	Coords planar.Polyline
}

// Weight is the edge's planar length, always >= 0.
func (e Edge) Weight() float64 { return e.Coords.Length() }

// OtherEndpoint returns the endpoint of e that is not v. Panics if v is
// neither endpoint — a programming error in every caller within this
// module, since edges are only ever walked from one of their own
// endpoints.
func (e Edge) OtherEndpoint(v int) int {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		panic("core: OtherEndpoint called with a vertex not on the edge")
	}
}

// Graph is the in-memory planar graph. V and E are indexed, append-only
// slices except for the truncation Grafter.Revert performs to undo a
// graft. InactiveEdges holds indices of edges temporarily excluded from
// path search and point-to-edge lookup — original edges split by a graft,
// pending revert. JoinedVertices counts transient vertices appended
// since the last revert; each one added exactly two transient edges and
// inactivated exactly one original edge.
type Graph struct {
	mu sync.RWMutex

	V []Vertex
	E []Edge

	InactiveEdges map[int]struct{}

	JoinedVertices int
}

// NewGraph returns an empty Graph ready for Builder to populate.
func NewGraph() *Graph {
	return &Graph{
		InactiveEdges: make(map[int]struct{}),
	}
}

// NumVertices returns len(V) under the read lock.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.V)
}

// NumEdges returns len(E) under the read lock.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.E)
}

// Vertex returns a copy of V[i]. Returns ErrVertexIndexOutOfRange if i is
// not a valid index.
func (g *Graph) Vertex(i int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.V) {
		return Vertex{}, ErrVertexIndexOutOfRange
	}
	return g.V[i], nil
}

// Edge returns a copy of E[i]. Returns ErrEdgeIndexOutOfRange if i is not
// a valid index.
func (g *Graph) Edge(i int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.E) {
		return Edge{}, ErrEdgeIndexOutOfRange
	}
	return g.E[i], nil
}

// IsActive reports whether edge index i is active: in range and not in
// InactiveEdges. Mirrors spec.md's "active edges" definition exactly.
func (g *Graph) IsActive(i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isActiveLocked(i)
}

func (g *Graph) isActiveLocked(i int) bool {
	if i < 0 || i >= len(g.E) {
		return false
	}
	_, inactive := g.InactiveEdges[i]
	return !inactive
}

// ActiveEdges returns the indices of all active edges in ascending order.
func (g *Graph) ActiveEdges() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.E)-len(g.InactiveEdges))
	for i := range g.E {
		if g.isActiveLocked(i) {
			out = append(out, i)
		}
	}
	return out
}

// AppendVertex appends v to V and returns its new index. Used by Builder
// during construction and by Grafter to insert a transient vertex.
func (g *Graph) AppendVertex(v Vertex) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.V = append(g.V, v)
	return len(g.V) - 1
}

// AppendEdge appends e to E, registers its index in both endpoints'
// Edges lists, and returns the new index. Returns ErrDegenerateEdge if
// Coords has fewer than two points (every Polyline must, per spec.md
// §3); returns ErrVertexIndexOutOfRange if either endpoint is invalid.
func (g *Graph) AppendEdge(e Edge) (int, error) {
	if len(e.Coords) < 2 {
		return 0, ErrDegenerateEdge
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if e.V1 < 0 || e.V1 >= len(g.V) || e.V2 < 0 || e.V2 >= len(g.V) {
		return 0, ErrVertexIndexOutOfRange
	}
	idx := len(g.E)
	g.E = append(g.E, e)
	g.V[e.V1].Edges = append(g.V[e.V1].Edges, idx)
	if e.V2 != e.V1 {
		g.V[e.V2].Edges = append(g.V[e.V2].Edges, idx)
	}
	return idx, nil
}
