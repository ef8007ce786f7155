package tracer

import "errors"

// Errors returned by FindShortestPath, per spec.md §7's error taxonomy.
// ERR_NONE is represented as err == nil, the idiomatic Go rendering of
// "no error" — there is deliberately no ErrNone sentinel.
var (
	// ErrPoint1 means p1 could not be located in the graph: neither an
	// existing vertex nor any active edge matched it within ε.
	ErrPoint1 = errors.New("tracer: point 1 not found in graph")

	// ErrPoint2 means p2 could not be located in the graph.
	ErrPoint2 = errors.New("tracer: point 2 not found in graph")

	// ErrNoPath means both endpoints were located but no route connects
	// them.
	ErrNoPath = errors.New("tracer: no path between points")

	// ErrTooManyFeatures means graph initialization aborted because the
	// number of accumulated features reached the configured MaxFeatures
	// cap.
	ErrTooManyFeatures = errors.New("tracer: too many features")
)
