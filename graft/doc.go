// Package graft implements the temporary insertion of a query point into
// a core.Graph by splitting the edge it lies on — and the exact undo of
// that insertion — per spec.md §4.3.
//
// Join, PointInGraph, and Revert are the only three operations; every
// call to Join within a query must be matched by a call to Revert before
// the query returns, restoring the graph to bit-identical semantics,
// per spec.md §8 invariant 3. Revert relies entirely on the layout
// invariant core.Graph documents: transient vertices/edges always sit at
// the tail of V/E.
package graft
