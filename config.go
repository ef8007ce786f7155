package tracer

import (
	"github.com/planartrace/tracer/geomengine"
	"github.com/planartrace/tracer/source"
)

// Offset configures the lateral offset curve find_shortest_path applies
// to a found path when Distance != 0, per spec.md §4.5.
type Offset struct {
	Distance     float64
	QuadSegments int
	Join         geomengine.JoinStyle
	MiterLimit   float64
}

// config holds the Tracer's mutable configuration: the fields that
// invalidate the cached graph when changed (Layers, DestCRS, Extent,
// RenderContext) and the fields that don't (Offset, MaxFeatures).
type config struct {
	layers        []source.Layer
	destCRS       source.CRSTransform
	extent        *source.Rect
	renderContext renderContext
	maxFeatures   int

	offset Offset

	segmentizer geomengine.Segmentizer
	offsetCurve geomengine.OffsetCurver
	noder       geomengine.Noder
}

// renderContext switches on hidden-feature snapping per spec.md §4.5
// step 1: when Active, a layer's Renderer.WillRenderFeature filters
// features before they are accumulated into the graph.
type renderContext struct {
	Active bool
}

// Option configures a Tracer at construction, in the functional-options
// style the underlying graph/pathfinding packages use for their own
// configuration.
type Option func(*Tracer)

// WithSegmentizer supplies the geometry engine's curve-flattening
// collaborator. Without one, FindShortestPath treats every feature's
// geometry as already linear.
func WithSegmentizer(s geomengine.Segmentizer) Option {
	return func(t *Tracer) { t.cfg.segmentizer = s }
}

// WithOffsetCurver supplies the geometry engine's offset-curve
// collaborator. Without one, a non-zero Offset.Distance is ignored.
func WithOffsetCurver(o geomengine.OffsetCurver) Option {
	return func(t *Tracer) { t.cfg.offsetCurve = o }
}

// WithNoder supplies an optional noding pre-pass run before Builder, per
// spec.md §4.1/§6. Without one, noding is skipped.
func WithNoder(n geomengine.Noder) Option {
	return func(t *Tracer) { t.cfg.noder = n }
}

// WithMaxFeatures caps the number of features graph initialization will
// accumulate before aborting with ErrTooManyFeatures. Zero (the default)
// means unlimited.
func WithMaxFeatures(n int) Option {
	return func(t *Tracer) { t.cfg.maxFeatures = n }
}
