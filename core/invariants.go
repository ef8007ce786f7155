// File: invariants.go
// Role: Test/debug helper validating spec.md §8 invariants 1-2. Not on
// the query path; the core, builder, and graft test suites call this
// after mutating a Graph, the way the teacher's core tests inspect Stats() after every
// mutation.
package core

import (
	"fmt"

	"github.com/planartrace/tracer/planar"
)

// CheckInvariants walks every active edge and every vertex's edge list
// and returns the first violation found, wrapped in ErrInvariantViolation,
// or nil if the graph is consistent.
func (g *Graph) CheckInvariants(eps float64) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, e := range g.E {
		if !g.isActiveLocked(i) {
			continue
		}
		if e.V1 < 0 || e.V1 >= len(g.V) || e.V2 < 0 || e.V2 >= len(g.V) {
			return fmt.Errorf("%w: edge %d endpoint out of range", ErrInvariantViolation, i)
		}
		first, last := e.Coords[0], e.Coords[len(e.Coords)-1]
		matchesForward := planar.EpsilonEqual(first, g.V[e.V1].Pt, eps) && planar.EpsilonEqual(last, g.V[e.V2].Pt, eps)
		matchesReverse := planar.EpsilonEqual(first, g.V[e.V2].Pt, eps) && planar.EpsilonEqual(last, g.V[e.V1].Pt, eps)
		if !matchesForward && !matchesReverse {
			return fmt.Errorf("%w: edge %d coords do not match its endpoints", ErrInvariantViolation, i)
		}
	}

	for k, v := range g.V {
		for _, i := range v.Edges {
			if !g.isActiveLocked(i) {
				return fmt.Errorf("%w: vertex %d references inactive edge %d", ErrInvariantViolation, k, i)
			}
			e := g.E[i]
			if e.V1 != k && e.V2 != k {
				return fmt.Errorf("%w: vertex %d references edge %d which is not incident to it", ErrInvariantViolation, k, i)
			}
		}
	}

	return nil
}
