// Package source declares the feature-source contract the tracer
// consumes (spec.md §6) and deliberately implements nothing: "the
// vector-feature data source (feature iteration, rendering-based
// filtering, CRS transforms)" is explicitly out of scope per spec.md §1.
// These interfaces are the seam between that collaborator and the
// tracer facade.
package source

import "github.com/planartrace/tracer/planar"

// GeometryType distinguishes the shapes a Feature's Geometry may
// take before Segmentize expands curves into polylines.
type GeometryType int

const (
	GeometryUnknown GeometryType = iota
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryMultiLineString
)

// Geometry is the raw geometry a Feature carries, possibly curved — the
// geometry engine's Segmentizer turns it into Polylines the builder can
// consume.
type Geometry struct {
	Type  GeometryType
	Parts [][]planar.Point
}

// Rect is an axis-aligned planar extent, used both as the optional
// configured extent (spec.md §4.5) and as a feature query filter. The
// tracer itself never calls Contains: it passes Rect through
// FeatureQuery.Extent unexamined, and a Layer implementation is expected
// to call Contains (or an equivalent spatial-index query) to restrict
// which features Features' iterator yields.
type Rect struct {
	Min, Max planar.Point
}

// Contains reports whether pt falls within the rectangle, inclusive of
// its boundary.
func (r Rect) Contains(pt planar.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// CRSTransform reprojects a Feature's geometry into the tracer's
// configured destination CRS. The tracer treats CRS handling as opaque:
// it passes FeatureQuery.DestCRS through to Layer.Features and never
// calls Transform or inspects the coordinate system identifiers itself.
// A Layer implementation is expected to call Transform(f.Geometry()) per
// feature (when DestCRS is non-nil) before its iterator yields that
// feature, so every Feature the tracer sees is already in the
// destination CRS.
type CRSTransform interface {
	Transform(g Geometry) (Geometry, error)
}

// Feature is a single vector feature a Layer yields. Geometry may be
// absent (ok == false), matching spec.md §6 ("possibly empty").
type Feature interface {
	Geometry() (Geometry, bool)
}

// Renderer filters features by the layer's current rendering state —
// spec.md §4.5's "hidden-feature snapping" switch consults this per
// feature when enabled.
type Renderer interface {
	WillRenderFeature(f Feature) bool
}

// FeatureQuery narrows Layer.Features to an optional extent and
// destination CRS, per spec.md §6.
type FeatureQuery struct {
	Extent  *Rect
	DestCRS CRSTransform
}

// FeatureIterator yields features one at a time; Close releases any
// resources the Layer allocated for the query.
type FeatureIterator interface {
	Next() (Feature, bool)
	Close()
}

// MutationListener receives the mutation signals spec.md §4.5 lists as
// invalidation triggers. The tracer implements this interface internally
// and registers one per subscribed Layer.
type MutationListener interface {
	OnFeatureAdded(Feature)
	OnFeatureDeleted(Feature)
	OnGeometryChanged(Feature)
	OnAttributeValueChanged(Feature)
	OnDataChanged()
	OnStyleChanged()
	OnDestroyed()
}

// Layer is a single vector-feature source: iterable, optionally
// filterable by a Renderer, and observable for mutation.
type Layer interface {
	Features(q FeatureQuery) (FeatureIterator, error)
	Renderer() Renderer
	// Subscribe registers l to receive this layer's mutation signals and
	// returns a function that unsubscribes it. Delivery is synchronous on
	// the caller's thread, per spec.md §5.
	Subscribe(l MutationListener) (unsubscribe func())
}
