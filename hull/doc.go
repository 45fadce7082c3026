// SPDX-License-Identifier: MIT
// Package hull builds the triangulated convex hull of a small point cloud
// known to surround the origin, reporting facets as outward-oriented vertex
// triples.
//
// # What & Why
//
// Build is an incremental (Beneath-Beyond style) hull construction: seed a
// tetrahedron from four non-coplanar points, then insert the remaining
// points one at a time, deleting every facet visible from the new point and
// stitching its horizon to the new apex. The origin (index 0 of the caller's
// point set) is never a candidate vertex — callers pass only the N
// neighbour points, indices 0..N-1 in the returned facets.
//
// # Determinism & Stability
//
//   - Point insertion order is the caller's slice order; ties in visibility
//     (near-coplanar facets) are resolved by a fixed epsilon, not by map
//     iteration, so results are bit-for-bit reproducible for identical input.
//   - Facet orientation is normalized against the origin on every facet the
//     algorithm creates, matching the reference "make facets clockwise"
//     post-pass: a facet's normal must point away from the origin, which the
//     caller's neighbour cloud is assumed to surround.
package hull
