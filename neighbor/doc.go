// SPDX-License-Identifier: MIT
// Package neighbor implements the topological neighbour-ordering
// preprocessor that package ptm treats as an external collaborator
// (spec.md §1/§6): given an unordered neighbour cloud, produce an ordering
// of indices that brings structurally-equivalent neighbours into the same
// relative positions a reference template expects, improving hull/hash
// match odds before any geometry is tried.
//
// # What & Why
//
// Real topological orderings (e.g. a weighted Voronoi construction) need a
// nontrivial scratch workspace; Workspace models that lifecycle (acquired
// once per calling goroutine, reused across calls, never shared) without
// committing ptm's public API to a specific Voronoi implementation.
//
// # Determinism & Stability
//
//   - Order never consults map iteration order or wall-clock time; ties are
//     broken by ascending input index.
package neighbor
