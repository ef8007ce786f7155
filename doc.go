// Package tracer finds shortest paths through the linework of a set of
// vector-feature layers: it lazily builds a planar core.Graph from
// layer geometry, locates query points on that graph without permanently
// mutating it, runs Dijkstra, and returns a stitched polyline.
//
// Under the hood:
//
//	planar/     - points, polylines, ε-equality, projection
//	core/       - the indexed planar Graph, Vertex, Edge types
//	builder/    - multi-linestring -> Graph
//	locate/     - point_to_vertex / point_to_edge, optional spatial index
//	graft/      - temporary point insertion and exact revert
//	dijkstra/   - shortest path over a core.Graph
//	source/     - the feature-source contract this package consumes
//	geomengine/ - the geometry-engine contract this package consumes
//
// Tracer owns the whole pipeline; FindShortestPath is the single
// operation most callers need.
package tracer
