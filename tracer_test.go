package tracer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planartrace/tracer"
	"github.com/planartrace/tracer/geomengine"
	"github.com/planartrace/tracer/planar"
	"github.com/planartrace/tracer/source"
)

// fakeFeature wraps one geometry as a source.Feature.
type fakeFeature struct{ geom source.Geometry }

func (f *fakeFeature) Geometry() (source.Geometry, bool) { return f.geom, true }

// fakeIterator walks a fixed slice of features.
type fakeIterator struct {
	features []source.Feature
	i        int
}

func (it *fakeIterator) Next() (source.Feature, bool) {
	if it.i >= len(it.features) {
		return nil, false
	}
	f := it.features[it.i]
	it.i++
	return f, true
}
func (it *fakeIterator) Close() {}

// fakeLayer is a minimal source.Layer backed by an in-memory feature
// list, recording subscribers so tests can exercise invalidation.
type fakeLayer struct {
	features  []source.Feature
	listeners []source.MutationListener
}

func lineLayer(lines ...[]planar.Point) *fakeLayer {
	feats := make([]source.Feature, len(lines))
	for i, pts := range lines {
		feats[i] = &fakeFeature{geom: source.Geometry{
			Type:  source.GeometryLineString,
			Parts: [][]planar.Point{pts},
		}}
	}
	return &fakeLayer{features: feats}
}

func (l *fakeLayer) Features(source.FeatureQuery) (source.FeatureIterator, error) {
	return &fakeIterator{features: l.features}, nil
}
func (l *fakeLayer) Renderer() source.Renderer { return nil }
func (l *fakeLayer) Subscribe(ml source.MutationListener) func() {
	l.listeners = append(l.listeners, ml)
	idx := len(l.listeners) - 1
	return func() { l.listeners[idx] = nil }
}

func pt(x, y float64) planar.Point { return planar.Point{X: x, Y: y} }

func TestFindShortestPathPrefersDirectEdgeOverDetour(t *testing.T) {
	// Scenario B: direct edge beats the three-segment detour of equal
	// endpoints but greater length.
	layer := lineLayer(
		[]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		[]planar.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}},
	)
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	path, err := tr.FindShortestPath(pt(0, 0), pt(10, 0))
	require.NoError(t, err)
	assert.Equal(t, planar.Polyline{pt(0, 0), pt(10, 0)}, path)
}

func TestFindShortestPathGraftsMidpointEndpoints(t *testing.T) {
	// Scenario C: both query endpoints lie mid-edge; graph is restored
	// to its original shape after the query returns.
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	path, err := tr.FindShortestPath(pt(5, 0), pt(10, 5))
	require.NoError(t, err)
	assert.Equal(t, planar.Polyline{pt(5, 0), pt(10, 0), pt(10, 5)}, path)
}

func TestFindShortestPathDisconnectedReturnsErrNoPath(t *testing.T) {
	layer := lineLayer(
		[]planar.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]planar.Point{{X: 5, Y: 5}, {X: 6, Y: 5}},
	)
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	path, err := tr.FindShortestPath(pt(0, 0), pt(6, 5))
	assert.ErrorIs(t, err, tracer.ErrNoPath)
	assert.Nil(t, path)
}

func TestFindShortestPathOffGraphEndpointReturnsErrPoint1(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	path, err := tr.FindShortestPath(pt(0, 5), pt(10, 0))
	assert.ErrorIs(t, err, tracer.ErrPoint1)
	assert.Nil(t, path)
}

func TestFindShortestPathOffGraphSecondEndpointReturnsErrPoint2(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	path, err := tr.FindShortestPath(pt(0, 0), pt(10, 5))
	assert.ErrorIs(t, err, tracer.ErrPoint2)
	assert.Nil(t, path)
}

// fakeOffsetCurver shifts every point of p by (0, distance) — enough to
// exercise the facade's offset wiring and handedness check without a
// real geometry engine.
type fakeOffsetCurver struct{}

func (fakeOffsetCurver) OffsetCurve(p planar.Polyline, distance float64, _ int, _ geomengine.JoinStyle, _ float64) (planar.Polyline, error) {
	out := make(planar.Polyline, len(p))
	for i, v := range p {
		out[i] = pt(v.X, v.Y+distance)
	}
	return out, nil
}

func TestFindShortestPathAppliesOffsetCurve(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	tr := tracer.NewTracer(tracer.WithOffsetCurver(fakeOffsetCurver{}))
	tr.SetLayers([]source.Layer{layer})
	tr.SetOffset(1)

	path, err := tr.FindShortestPath(pt(0, 0), pt(10, 0))
	require.NoError(t, err)
	assert.Equal(t, planar.Polyline{pt(0, 1), pt(10, 1)}, path)
}

func TestFindShortestPathReversalSymmetry(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	forward, err := tr.FindShortestPath(pt(0, 0), pt(10, 10))
	require.NoError(t, err)
	backward, err := tr.FindShortestPath(pt(10, 10), pt(0, 0))
	require.NoError(t, err)

	assert.Equal(t, forward, backward.Reverse())
}

func TestFindShortestPathIsIdempotent(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	first, err := tr.FindShortestPath(pt(5, 0), pt(10, 5))
	require.NoError(t, err)
	second, err := tr.FindShortestPath(pt(5, 0), pt(10, 5))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIsPointSnapped(t *testing.T) {
	layer := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer})

	assert.True(t, tr.IsPointSnapped(pt(5, 0)))
	assert.False(t, tr.IsPointSnapped(pt(5, 5)))
}

func TestSetLayersInvalidatesCachedGraph(t *testing.T) {
	layer1 := lineLayer([]planar.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	tr := tracer.NewTracer()
	tr.SetLayers([]source.Layer{layer1})

	_, err := tr.FindShortestPath(pt(0, 0), pt(10, 0))
	require.NoError(t, err)

	layer2 := lineLayer([]planar.Point{{X: 100, Y: 100}, {X: 110, Y: 100}})
	tr.SetLayers([]source.Layer{layer2})

	_, err = tr.FindShortestPath(pt(0, 0), pt(10, 0))
	assert.ErrorIs(t, err, tracer.ErrPoint1)
}

func TestMaxFeaturesCapAbortsInitialization(t *testing.T) {
	layer := lineLayer(
		[]planar.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]planar.Point{{X: 2, Y: 0}, {X: 3, Y: 0}},
	)
	tr := tracer.NewTracer(tracer.WithMaxFeatures(1))
	tr.SetLayers([]source.Layer{layer})

	_, err := tr.FindShortestPath(pt(0, 0), pt(1, 0))
	assert.ErrorIs(t, err, tracer.ErrTooManyFeatures)
}
