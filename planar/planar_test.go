package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planartrace/tracer/planar"
)

func TestEpsilonEqual(t *testing.T) {
	a := planar.Point{X: 1, Y: 1}
	b := planar.Point{X: 1 + 1e-9, Y: 1 - 1e-9}
	assert.True(t, planar.EpsilonEqual(a, b, planar.DefaultEpsilon))

	c := planar.Point{X: 1.1, Y: 1}
	assert.False(t, planar.EpsilonEqual(a, c, planar.DefaultEpsilon))
}

func TestPolylineLengthAndReverse(t *testing.T) {
	p := planar.Polyline{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	assert.Equal(t, 7.0, p.Length())

	r := p.Reverse()
	require.Len(t, r, 3)
	assert.Equal(t, p.Length(), r.Length())
	assert.Equal(t, p[0], r[len(r)-1])
	assert.Equal(t, p[len(p)-1], r[0])
}

func TestClosestPointOnPolylineMidSegment(t *testing.T) {
	p := planar.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	closest, vertexAfter, dist := planar.ClosestPointOnPolyline(p, planar.Point{X: 5, Y: 0})
	assert.Equal(t, planar.Point{X: 5, Y: 0}, closest)
	assert.Equal(t, 1, vertexAfter)
	assert.InDelta(t, 0, dist, planar.DefaultEpsilon)

	closest, vertexAfter, dist = planar.ClosestPointOnPolyline(p, planar.Point{X: 10, Y: 5})
	assert.Equal(t, planar.Point{X: 10, Y: 5}, closest)
	assert.Equal(t, 2, vertexAfter)
	assert.InDelta(t, 0, dist, planar.DefaultEpsilon)
}

func TestClosestPointOnPolylineOffLine(t *testing.T) {
	p := planar.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}
	closest, vertexAfter, dist := planar.ClosestPointOnPolyline(p, planar.Point{X: 5, Y: 3})
	assert.Equal(t, planar.Point{X: 5, Y: 0}, closest)
	assert.Equal(t, 1, vertexAfter)
	assert.InDelta(t, 3, dist, 1e-9)
}

func TestSplitAtPreservesIntermediateVertices(t *testing.T) {
	p := planar.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	pt := planar.Point{X: 10, Y: 5}

	_, vertexAfter, _ := planar.ClosestPointOnPolyline(p, pt)
	before, after := planar.SplitAt(p, pt, vertexAfter)

	assert.Equal(t, planar.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}, before)
	assert.Equal(t, planar.Polyline{{X: 10, Y: 5}, {X: 10, Y: 10}}, after)
	assert.InDelta(t, p.Length(), before.Length()+after.Length(), 1e-9)
}
