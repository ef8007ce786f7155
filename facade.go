package tracer

import (
	"sync"

	"github.com/planartrace/tracer/builder"
	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/dijkstra"
	"github.com/planartrace/tracer/geomengine"
	"github.com/planartrace/tracer/graft"
	"github.com/planartrace/tracer/locate"
	"github.com/planartrace/tracer/planar"
	"github.com/planartrace/tracer/source"
)

// Tracer orchestrates lazy graph construction from one or more feature
// layers, answers shortest-path queries against it, and applies an
// optional lateral offset to the result. It owns its *core.Graph
// exclusively: no caller ever sees an unreverted graft, and invalidation
// from upstream feature mutation always discards the cached graph rather
// than patching it incrementally.
type Tracer struct {
	mu sync.Mutex

	cfg config
	eps float64

	graph           *core.Graph
	index           *locate.Index
	topologyProblem bool

	listeners map[source.Layer]func()
}

// NewTracer returns a Tracer with no layers configured; FindShortestPath
// will locate no points and report ErrPoint1 until SetLayers is called.
func NewTracer(opts ...Option) *Tracer {
	t := &Tracer{
		eps:       planar.DefaultEpsilon,
		listeners: make(map[source.Layer]func()),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetLayers replaces the configured layer list, unsubscribing from every
// previously configured layer's mutation signals and subscribing to the
// new ones, and invalidates the cached graph.
func (t *Tracer) SetLayers(layers []source.Layer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, unsubscribe := range t.listeners {
		unsubscribe()
	}
	t.listeners = make(map[source.Layer]func())

	t.cfg.layers = layers
	for _, l := range layers {
		t.listeners[l] = l.Subscribe(&tracerListener{t: t, layer: l})
	}
	t.invalidateLocked()
}

// SetDestinationCRS sets the destination CRS passed to every layer's
// feature query and invalidates the cached graph.
func (t *Tracer) SetDestinationCRS(crs source.CRSTransform) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.destCRS = crs
	t.invalidateLocked()
}

// SetExtent restricts feature queries to r (nil for unrestricted) and
// invalidates the cached graph.
func (t *Tracer) SetExtent(r *source.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.extent = r
	t.invalidateLocked()
}

// SetRenderContext toggles hidden-feature snapping: when active, a
// layer's Renderer.WillRenderFeature filters features during graph
// initialization. Invalidates the cached graph.
func (t *Tracer) SetRenderContext(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.renderContext = renderContext{Active: active}
	t.invalidateLocked()
}

// SetOffset sets the signed lateral offset distance applied to found
// paths. Zero disables offsetting. Does not invalidate the cached graph.
func (t *Tracer) SetOffset(distance float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.offset.Distance = distance
}

// SetOffsetParameters sets the join style, quad-segment count, and
// miter limit used when computing an offset curve. Does not invalidate
// the cached graph.
func (t *Tracer) SetOffsetParameters(quadSegments int, join geomengine.JoinStyle, miterLimit float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg.offset.QuadSegments = quadSegments
	t.cfg.offset.Join = join
	t.cfg.offset.MiterLimit = miterLimit
}

// HasTopologyProblem reports whether the most recent graph
// initialization degraded to un-noded linework after the configured
// noder failed.
func (t *Tracer) HasTopologyProblem() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.topologyProblem
}

// IsPointSnapped reports whether pt matches an existing vertex or lies
// on an active edge of the graph, without mutating it.
func (t *Tracer) IsPointSnapped(pt planar.Point) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ensureGraphLocked(); err != nil {
		return false
	}
	if _, ok := locate.PointToVertex(t.graph, pt, t.eps); ok {
		return true
	}
	_, _, ok := locate.PointToEdge(t.graph, pt, t.eps, t.index)
	return ok
}

// FindShortestPath locates p1 and p2 in the graph (graphing it first if
// necessary), finds the shortest connecting route, reverts any temporary
// grafts, and applies the configured lateral offset if one is set, per
// spec.md §4.5.
func (t *Tracer) FindShortestPath(p1, p2 planar.Point) (planar.Polyline, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ensureGraphLocked(); err != nil {
		return nil, err
	}

	// t.index is built once over the graph's original active edges and is
	// never rebuilt mid-query; a graft deactivates the edge it splits and
	// adds transient halves the index knows nothing about. Passing it to
	// PointInGraph here would make the *second* call blind to any point
	// lying on an edge the *first* call just split. Grafting always falls
	// back to the unindexed linear scan, which sees every active edge
	// (original and transient) per g.ActiveEdges().
	v1, ok := graft.PointInGraph(t.graph, p1, t.eps, nil)
	if !ok {
		return nil, ErrPoint1
	}
	v2, ok := graft.PointInGraph(t.graph, p2, t.eps, nil)
	if !ok {
		graft.Revert(t.graph)
		return nil, ErrPoint2
	}

	path, err := dijkstra.ShortestPath(t.graph, v1, v2)
	graft.Revert(t.graph)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, ErrNoPath
	}

	if t.cfg.offset.Distance != 0 && t.cfg.offsetCurve != nil {
		curved, err := t.cfg.offsetCurve.OffsetCurve(path, t.cfg.offset.Distance, t.cfg.offset.QuadSegments, t.cfg.offset.Join, t.cfg.offset.MiterLimit)
		if err == nil && len(curved) > 0 {
			path = orientOffsetCurve(curved, p1, p2)
		}
	}

	return path, nil
}

// orientOffsetCurve reverses curve if its endpoints are closer to
// (p2, p1) than to (p1, p2), correcting the handedness ambiguity a
// negative offset distance can introduce, per spec.md §4.5 step 6.
func orientOffsetCurve(curve planar.Polyline, p1, p2 planar.Point) planar.Polyline {
	first, last := curve.First(), curve.Last()
	straight := first.Sub(p1).Norm() + last.Sub(p2).Norm()
	flipped := first.Sub(p2).Norm() + last.Sub(p1).Norm()
	if flipped < straight {
		return curve.Reverse()
	}
	return curve
}

// invalidateLocked discards the cached graph; the next query rebuilds it
// from the current layer configuration. Called with t.mu held.
func (t *Tracer) invalidateLocked() {
	t.graph = nil
	t.index = nil
	t.topologyProblem = false
}

// ensureGraphLocked builds t.graph from the configured layers if it is
// nil, per spec.md §4.5's graph-initialization algorithm. Called with
// t.mu held.
func (t *Tracer) ensureGraphLocked() error {
	if t.graph != nil {
		return nil
	}

	var lines []planar.Polyline
	count := 0
	for _, layer := range t.cfg.layers {
		it, err := layer.Features(source.FeatureQuery{Extent: t.cfg.extent, DestCRS: t.cfg.destCRS})
		if err != nil {
			continue
		}
		renderer := layer.Renderer()

		for {
			f, more := it.Next()
			if !more {
				break
			}
			if t.cfg.renderContext.Active && renderer != nil && !renderer.WillRenderFeature(f) {
				continue
			}
			if t.cfg.maxFeatures > 0 && count >= t.cfg.maxFeatures {
				it.Close()
				return ErrTooManyFeatures
			}

			geom, ok := f.Geometry()
			if !ok {
				continue
			}

			segs, err := t.segmentize(geom)
			if err != nil {
				continue
			}
			lines = append(lines, segs...)
			count++
			if t.cfg.maxFeatures > 0 && count >= t.cfg.maxFeatures {
				it.Close()
				return ErrTooManyFeatures
			}
		}
		it.Close()
	}

	g, topologyProblem := builder.BuildWithNoder(lines, t.cfg.noder)
	t.graph = g
	t.topologyProblem = topologyProblem
	t.index = locate.NewIndex(g, t.eps)
	return nil
}

// segmentize expands geom's parts into linear polylines via the
// configured Segmentizer, or treats them as already linear if none is
// configured.
func (t *Tracer) segmentize(geom source.Geometry) ([]planar.Polyline, error) {
	if t.cfg.segmentizer != nil {
		return t.cfg.segmentizer.Segmentize(geom.Parts)
	}
	out := make([]planar.Polyline, 0, len(geom.Parts))
	for _, part := range geom.Parts {
		if len(part) < 2 {
			continue
		}
		out = append(out, planar.Polyline(part))
	}
	return out, nil
}
