// Package planar provides the planar geometry primitives the tracing
// engine is built on: Point (a thin alias over r2.Vector), Polyline, and
// the ε-equality and segment-projection operations spec.md §3 and §6
// define. Nothing here knows about graphs, layers, or queries — it is
// pure 2D arithmetic, reused by core, builder, locate, and graft.
package planar
