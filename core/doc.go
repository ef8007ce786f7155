// Package core defines the in-memory planar graph that the tracer builds
// from noded linework and searches for shortest paths.
//
// A Graph is an indexed, not ID-keyed, structure: Vertex and Edge live at
// stable positions in G.V and G.E, and a handful of positions at the tail
// of each slice may be "transient" — appended by graft.Join for the
// duration of a single query and truncated away by graft.Revert. Every
// other package in this module (builder, locate, graft, dijkstra) treats
// a *Graph as shared, mutable state passed by pointer; Graph itself does
// not know about queries, grafting, or the facade above it.
//
// Concurrency: Graph guards its slices and sets with a single
// sync.RWMutex. Per the tracer's concurrency model the engine is
// single-threaded and non-suspending — callers are not expected to
// mutate a Graph from multiple goroutines concurrently with a query in
// flight — but read-only inspection (CheckInvariants, ActiveEdges) from a
// second goroutine between queries is safe.
package core
