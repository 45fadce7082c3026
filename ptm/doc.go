// SPDX-License-Identifier: MIT

// Package ptm classifies the local neighbourhood of a point against a set
// of reference lattice templates (simple cubic, face-centred cubic,
// hexagonal close-packed, icosahedral, body-centred cubic), returning the
// best-matching type together with the rigid-body alignment (quaternion,
// scale, RMSD) and, optionally, the local deformation gradient and a
// coarse chemical-ordering classification.
//
// # What & Why
//
// A Matcher wraps the process-wide reference tables built once by package
// reftables and wires together every collaborator the orchestration needs:
// package neighbor to canonicalise input ordering, package hull and canon
// to derive a facet-adjacency graph and test it against each candidate
// template's precomputed graph, package align to solve the closed-form
// rigid alignment for every graph automorphism, package quat to report the
// match quaternion in the cubic fundamental zone, and packages deform and
// alloy for the two optional refinement steps. None of this wiring is
// configurable per call beyond the functional options Matcher accepts;
// Index takes the point cloud, the templates to try, and per-call
// RequestOptions (topological ordering, workspace, deformation gradient,
// alloy classification).
//
// # Determinism & Stability
//
// Given the same cloud, flags and collaborator set, Index always returns
// the same Result: every tie (equal RMSD across automorphisms or across
// template types) is broken by a fixed iteration order, never by map
// iteration or floating-point associativity that could vary across runs.
package ptm
