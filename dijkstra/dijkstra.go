package dijkstra

import (
	"container/heap"
	"math"

	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/planar"
)

// ShortestPath returns the shortest path from vertex s to vertex t in g,
// as a single stitched polyline running from g.Vertex(s).Pt to
// g.Vertex(t).Pt. If no path exists, it returns a nil polyline.
//
// Edge weight is planar polyline length (core.Edge.Weight), never
// negative, so there is no analogue of a negative-edge pre-scan here.
func ShortestPath(g *core.Graph, s, t int) (planar.Polyline, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if s < 0 || s >= n || t < 0 || t >= n {
		return nil, ErrVertexIndexOutOfRange
	}
	if s == t {
		v, err := g.Vertex(s)
		if err != nil {
			return nil, err
		}
		return planar.Polyline{v.Pt}, nil
	}

	inf := math.Inf(1)
	dist := make([]float64, n)
	prevEdge := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		prevEdge[i] = -1
	}
	dist[s] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, &nodeItem{vertex: s, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex

		if visited[u] {
			continue
		}
		visited[u] = true

		if u == t {
			break
		}

		vtx, err := g.Vertex(u)
		if err != nil {
			return nil, err
		}
		for _, edgeIdx := range vtx.Edges {
			if !g.IsActive(edgeIdx) {
				continue
			}
			e, err := g.Edge(edgeIdx)
			if err != nil {
				return nil, err
			}
			v := e.OtherEndpoint(u)
			if visited[v] {
				continue
			}
			newDist := dist[u] + e.Weight()
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			prevEdge[v] = edgeIdx
			heap.Push(&pq, &nodeItem{vertex: v, dist: newDist})
		}
	}

	if !visited[t] {
		return nil, nil
	}

	return reconstructPath(g, s, t, prevEdge)
}

// reconstructPath walks prevEdge from t back to s, re-orienting each
// edge's polyline to match traversal direction and dropping the shared
// overlap vertex between consecutive segments.
func reconstructPath(g *core.Graph, s, t int, prevEdge []int) (planar.Polyline, error) {
	var edgeChain []int
	for v := t; v != s; {
		edgeIdx := prevEdge[v]
		edgeChain = append(edgeChain, edgeIdx)
		e, err := g.Edge(edgeIdx)
		if err != nil {
			return nil, err
		}
		v = e.OtherEndpoint(v)
	}

	// edgeChain is t -> s order; reverse to s -> t.
	for i, j := 0, len(edgeChain)-1; i < j; i, j = i+1, j-1 {
		edgeChain[i], edgeChain[j] = edgeChain[j], edgeChain[i]
	}

	sVtx, err := g.Vertex(s)
	if err != nil {
		return nil, err
	}
	path := planar.Polyline{sVtx.Pt}
	cur := s
	for _, edgeIdx := range edgeChain {
		e, err := g.Edge(edgeIdx)
		if err != nil {
			return nil, err
		}
		coords := e.Coords
		if e.V1 != cur {
			coords = coords.Reverse()
		}
		// Drop coords[0]: it is the overlap vertex already at path's tail.
		path = append(path, coords[1:]...)
		cur = e.OtherEndpoint(cur)
	}

	return path, nil
}

// nodeItem is a (vertex, cumulative distance) pair stored in the heap.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// lazy-decrease-key pattern: a shorter distance to an already-queued
// vertex is pushed as a new entry rather than updating the old one,
// and stale entries are discarded via the visited set when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
