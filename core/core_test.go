package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/planar"
)

func straightCross() *core.Graph {
	g := core.NewGraph()
	a := g.AppendVertex(core.Vertex{Pt: planar.Point{X: 0, Y: 0}})
	b := g.AppendVertex(core.Vertex{Pt: planar.Point{X: 10, Y: 0}})
	_, _ = g.AppendEdge(core.Edge{V1: a, V2: b, Coords: planar.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}})
	return g
}

func TestAppendEdgeRegistersAdjacency(t *testing.T) {
	g := straightCross()
	require.NoError(t, g.CheckInvariants(planar.DefaultEpsilon))

	v0, err := g.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v0.Edges)

	v1, err := g.Vertex(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v1.Edges)
}

func TestAppendEdgeRejectsDegenerateCoords(t *testing.T) {
	g := core.NewGraph()
	a := g.AppendVertex(core.Vertex{Pt: planar.Point{X: 0, Y: 0}})
	_, err := g.AppendEdge(core.Edge{V1: a, V2: a, Coords: planar.Polyline{{X: 0, Y: 0}}})
	assert.ErrorIs(t, err, core.ErrDegenerateEdge)
}

func TestAppendEdgeRejectsOutOfRangeVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AppendEdge(core.Edge{V1: 0, V2: 1, Coords: planar.Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	assert.ErrorIs(t, err, core.ErrVertexIndexOutOfRange)
}

func TestActiveEdgesExcludesInactive(t *testing.T) {
	g := straightCross()
	assert.Equal(t, []int{0}, g.ActiveEdges())

	g.Deactivate(0)
	assert.Empty(t, g.ActiveEdges())
	assert.False(t, g.IsActive(0))
}

func TestEdgeWeightIsPolylineLength(t *testing.T) {
	g := straightCross()
	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, e.Weight())
}

func TestOtherEndpoint(t *testing.T) {
	g := straightCross()
	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.OtherEndpoint(0))
	assert.Equal(t, 0, e.OtherEndpoint(1))
	assert.Panics(t, func() { e.OtherEndpoint(42) })
}

func TestCheckInvariantsDetectsBadCoords(t *testing.T) {
	g := core.NewGraph()
	a := g.AppendVertex(core.Vertex{Pt: planar.Point{X: 0, Y: 0}})
	b := g.AppendVertex(core.Vertex{Pt: planar.Point{X: 10, Y: 0}})
	idx, err := g.AppendEdge(core.Edge{V1: a, V2: b, Coords: planar.Polyline{{X: 0, Y: 0}, {X: 5, Y: 5}}})
	require.NoError(t, err)
	_ = idx

	err = g.CheckInvariants(planar.DefaultEpsilon)
	assert.ErrorIs(t, err, core.ErrInvariantViolation)
}

func TestTruncateToOriginalIsNoOpWithoutGrafts(t *testing.T) {
	g := straightCross()
	g.TruncateToOriginal()
	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, 1, g.NumEdges())
}
