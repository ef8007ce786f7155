// Package builder consumes a multi-linestring — the noded or un-noded
// linework a feature source produced — and emits a *core.Graph whose
// edges are exactly the input polylines and whose vertices are the
// deduplicated endpoints, per spec.md §4.1.
//
// Build is the single entry point; BuildWithNoder adds the optional
// external-noder pre-pass of spec.md §4.1/§6, catching a noder failure
// and degrading to the un-noded input rather than propagating the error.
package builder
