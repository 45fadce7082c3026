// SPDX-License-Identifier: MIT
package hull

import "math"

// coplanarEps bounds the scalar triple product used to detect a degenerate
// (near-zero-volume) seed tetrahedron.
const coplanarEps = 1e-10

// visibilityEps is the minimum outward-normal dot product for a point to be
// considered strictly outside (visible from) a facet; points within this
// margin are treated as on the facet plane, not visible.
const visibilityEps = 1e-9

// antipodalEps bounds how close to -1 the dot product of two unit points
// can be before seedTetrahedron treats them as an antipodal pair. A facet
// spanning two exactly-antipodal points has its plane through the origin,
// which leaves orient's dot(normal, p0) < 0 swap check permanently
// inconclusive (exactly zero) for that facet.
const antipodalEps = 1e-9

type facet struct {
	v [3]int // indices into the caller's points slice
}

// Build computes the triangulated convex hull of points (points surround
// the origin; the origin itself is never a vertex). It returns exactly
// expectedFacets facets, each an ordered triple of point indices oriented so
// the facet's outward normal points away from the origin.
//
// Contract:
//   - len(points) >= 4.
//   - Returns ErrDegenerateSeed if no four input points are non-coplanar.
//   - Returns ErrTooFewFacets / ErrTooManyFacets if the finished hull's facet
//     count doesn't match expectedFacets.
func Build(points [][3]float64, expectedFacets int) ([][3]int, error) {
	const op = "Build"
	n := len(points)
	if n < 4 {
		return nil, hullErrorf(op, ErrDegenerateSeed)
	}

	facets, used, err := seedTetrahedron(points)
	if err != nil {
		return nil, hullErrorf(op, err)
	}

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		facets = insertPoint(points, facets, i)
	}

	if len(facets) < expectedFacets {
		return nil, hullErrorf(op, ErrTooFewFacets)
	}
	if len(facets) > expectedFacets {
		return nil, hullErrorf(op, ErrTooManyFacets)
	}

	out := make([][3]int, len(facets))
	for i, f := range facets {
		out[i] = f.v
	}
	return out, nil
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// isAntipodal reports whether a and b point in near-opposite directions,
// independent of their magnitudes.
func isAntipodal(a, b [3]float64) bool {
	na := math.Sqrt(dot(a, a))
	nb := math.Sqrt(dot(b, b))
	if na < 1e-300 || nb < 1e-300 {
		return false
	}
	cos := dot(a, b) / (na * nb)
	return cos < -1+antipodalEps
}

// seedTetrahedron finds four non-coplanar points among points (skipping
// index-order search at the first combination that clears coplanarEps),
// builds its four outward-oriented facets, and returns them plus a used-set
// marking which point indices are already hull vertices. Candidate quads
// containing a near-antipodal pair are skipped outright: several reference
// point tables antipodally pair their ideal neighbours, and a facet drawn
// across such a pair passes exactly through the origin, making orient's
// sign test permanently ambiguous rather than merely numerically delicate.
func seedTetrahedron(points [][3]float64) ([]facet, []bool, error) {
	n := len(points)
	used := make([]bool, n)

	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if isAntipodal(points[a], points[b]) {
				continue
			}
			for c := b + 1; c < n; c++ {
				if isAntipodal(points[a], points[c]) || isAntipodal(points[b], points[c]) {
					continue
				}
				for d := c + 1; d < n; d++ {
					if isAntipodal(points[a], points[d]) || isAntipodal(points[b], points[d]) || isAntipodal(points[c], points[d]) {
						continue
					}

					vol := dot(cross(sub(points[b], points[a]), sub(points[c], points[a])), sub(points[d], points[a]))
					if math.Abs(vol) < coplanarEps {
						continue
					}

					idx := [4]int{a, b, c, d}
					raw := [4][3]int{
						{idx[0], idx[1], idx[2]},
						{idx[0], idx[1], idx[3]},
						{idx[0], idx[2], idx[3]},
						{idx[1], idx[2], idx[3]},
					}
					facets := make([]facet, 0, 4)
					for _, tri := range raw {
						facets = append(facets, orient(points, tri))
					}
					for _, i := range idx {
						used[i] = true
					}
					return facets, used, nil
				}
			}
		}
	}
	return nil, nil, ErrDegenerateSeed
}

// orient returns tri as a facet whose outward normal points away from the
// origin, swapping the last two indices when the as-given winding points
// inward (mirrors the reference "make facets clockwise" post-pass).
func orient(points [][3]float64, tri [3]int) facet {
	p0, p1, p2 := points[tri[0]], points[tri[1]], points[tri[2]]
	n := cross(sub(p1, p0), sub(p2, p0))
	if dot(n, p0) < 0 {
		return facet{v: [3]int{tri[0], tri[2], tri[1]}}
	}
	return facet{v: tri}
}

func facetNormal(points [][3]float64, f facet) [3]float64 {
	p0, p1, p2 := points[f.v[0]], points[f.v[1]], points[f.v[2]]
	return cross(sub(p1, p0), sub(p2, p0))
}

// insertPoint adds points[p] to the hull, removing every facet visible from
// it and stitching the horizon boundary to p as new facets. If no facet is
// visible, p already lies within the current hull and is left out (a
// degenerate/duplicate point that never becomes a vertex).
func insertPoint(points [][3]float64, facets []facet, p int) []facet {
	visible := make([]bool, len(facets))
	anyVisible := false
	for i, f := range facets {
		n := facetNormal(points, f)
		if dot(n, sub(points[p], points[f.v[0]])) > visibilityEps {
			visible[i] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return facets
	}

	type edge struct{ a, b int }
	edgeCount := make(map[edge]int)
	addEdge := func(a, b int) { edgeCount[edge{a, b}]++ }
	for i, f := range facets {
		if !visible[i] {
			continue
		}
		addEdge(f.v[0], f.v[1])
		addEdge(f.v[1], f.v[2])
		addEdge(f.v[2], f.v[0])
	}

	kept := make([]facet, 0, len(facets))
	for i, f := range facets {
		if !visible[i] {
			kept = append(kept, f)
		}
	}

	// Horizon edges are directed edges of visible facets whose reverse does
	// not also belong to a visible facet (the neighbour across that edge was
	// kept, so the edge bounds the hole left by the deleted facets).
	for e := range edgeCount {
		if _, reversed := edgeCount[edge{e.b, e.a}]; reversed {
			continue
		}
		kept = append(kept, orient(points, [3]int{e.a, e.b, p}))
	}

	return kept
}
