package dijkstra

import "errors"

var (
	// ErrNilGraph is returned when ShortestPath is called with a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexIndexOutOfRange is returned when s or t does not address a
	// vertex of g.
	ErrVertexIndexOutOfRange = errors.New("dijkstra: vertex index out of range")
)
