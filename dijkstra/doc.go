// Package dijkstra finds the shortest path between two vertices of a
// core.Graph, weighted by polyline length, and returns the path as a
// single stitched polyline rather than a distance map.
//
// The algorithm is classical Dijkstra over a container/heap min-priority
// queue: lazy decrease-key (stale entries are pushed over rather than
// updated in place) and a finalized-vertex set to discard them cheaply
// when popped.
package dijkstra
