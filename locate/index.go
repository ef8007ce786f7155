package locate

import (
	"github.com/dhconnelly/rtreego"

	"github.com/planartrace/tracer/core"
	"github.com/planartrace/tracer/planar"
)

// indexMinChildren/indexMaxChildren mirror the branching factor the
// beetlebugorg/s57 chart index uses for its rtreego.NewTree(2, ...) —
// a reasonable default for a few thousand edges, not tuned further here.
const (
	indexMinChildren = 25
	indexMaxChildren = 50
	rtreeDimensions  = 2
)

// edgeBox adapts one core.Graph edge to rtreego.Spatial so the R-tree
// can index it by bounding box.
type edgeBox struct {
	edgeIdx int
	rect    rtreego.Rect
}

func (b edgeBox) Bounds() rtreego.Rect { return b.rect }

// Index is an optional bounding-box acceleration structure over a
// Graph's active edges, backed by rtreego. It never changes PointToEdge's
// answer — only how many polylines it has to examine to find it.
//
// Its boxes are padded by the eps it was built with; Candidates only
// guarantees a superset of the true PointToEdge match when queried with
// an eps no larger than that — in practice every call site in this
// module builds and queries with the same planar.DefaultEpsilon, so
// this never comes up.
type Index struct {
	tree *rtreego.Rtree
	eps  float64
}

// NewIndex builds an Index over every currently-active edge of g,
// padding each edge's bounding box by eps. The caller rebuilds it (via
// Rebuild) whenever the graph's edge set changes — Locator itself never
// mutates a Graph, so the tracer facade owns deciding when a rebuild is
// due (on Builder construction; a graft's transient edges are
// deliberately left out, since they exist only for the duration of a
// single query and are not worth indexing).
func NewIndex(g *core.Graph, eps float64) *Index {
	idx := &Index{}
	idx.Rebuild(g, eps)
	return idx
}

// Rebuild discards the current tree and re-indexes every active edge of
// g from scratch, padding each bounding box by eps.
func (idx *Index) Rebuild(g *core.Graph, eps float64) {
	tree := rtreego.NewTree(rtreeDimensions, indexMinChildren, indexMaxChildren)
	for _, i := range g.ActiveEdges() {
		e, err := g.Edge(i)
		if err != nil {
			continue
		}
		tree.Insert(edgeBox{edgeIdx: i, rect: boundingRect(e.Coords, eps)})
	}
	idx.tree = tree
	idx.eps = eps
}

// Candidates returns the indices of active edges whose padded bounding
// box could contain a point within eps of pt — a superset of the true
// PointToEdge match, never a subset, provided eps does not exceed the
// eps the Index was built with.
func (idx *Index) Candidates(pt planar.Point, eps float64) []int {
	point := rtreego.Point{pt.X, pt.Y}
	margin := []float64{eps, eps}
	rect, err := rtreego.NewRect(point, margin)
	if err != nil {
		return nil
	}

	hits := idx.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(edgeBox).edgeIdx)
	}
	return out
}

// boundingRect computes the padded axis-aligned bounding box of a
// polyline. rtreego.NewRect requires strictly positive side lengths, so
// perfectly horizontal or vertical segments are padded by eps on every
// side — consistent with the eps tolerance PointToEdge itself applies.
func boundingRect(p planar.Polyline, eps float64) rtreego.Rect {
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, pt := range p[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	point := rtreego.Point{minX - eps, minY - eps}
	lengths := []float64{(maxX - minX) + 2*eps, (maxY - minY) + 2*eps}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		// lengths are always > 0 here (>= 2*eps), so NewRect cannot
		// actually fail; this path exists only to satisfy the error
		// return without a panic.
		return rtreego.Rect{}
	}
	return rect
}
