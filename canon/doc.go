// SPDX-License-Identifier: MIT
// Package canon computes a canonical graph invariant — a 64-bit hash and a
// canonical vertex labelling — from a convex-hull facet list, along with the
// full automorphism group of the facet-adjacency graph.
//
// # What & Why
//
// Two isomorphic facet graphs (same adjacency structure up to relabelling)
// must hash identically and yield structurally equivalent canonical forms;
// non-isomorphic graphs must (with negligible collision probability, at the
// small vertex counts this package is used for) hash differently. Form
// achieves this with a textbook individualization-refinement search:
//
//  1. Colour every vertex by degree (coarse invariant).
//  2. Repeatedly refine colours by the multiset of neighbour colours until
//     the partition stabilizes.
//  3. While any colour class has more than one vertex, pick the first such
//     class, branch over each of its members as a singleton, refine again,
//     and recurse.
//  4. Each branch that bottoms out at a fully-discrete partition yields one
//     complete labelling; the lexicographically smallest adjacency encoding
//     among all of them is canonical, and every labelling achieving it is an
//     automorphism of the input graph.
//
// # Determinism & Stability
//
//   - Refinement and branch order are fixed (ascending vertex index within a
//     class), so identical input always yields identical output, including
//     the ordering of the returned automorphism list.
//   - Vertex 0 (the hull centre) is never passed to this package; callers
//     operate on hull vertices 1..N and are responsible for shifting indices
//     to 0..N-1 before calling Form and back afterwards (spec policy: the
//     caller-facing permutation always fixes index 0).
package canon
