// Package locate maps a planar point onto an existing graph vertex or
// onto an active edge, within ε, per spec.md §4.2. Both operations are
// linear scans over the baseline core.Graph; Index is an optional
// rtreego-backed acceleration structure that PointToEdge consults first
// to shortlist candidates — with or without it, the answer (and its
// lowest-active-edge-index tie-break) is identical.
package locate
