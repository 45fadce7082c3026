// SPDX-License-Identifier: MIT
// Package alloy implements the chemical-ordering classification that
// package ptm treats as an external collaborator once a geometric match
// has already fixed a neighbour-to-template mapping: given the species
// labels attached to a matched cubic-family cloud, decide which of the
// well-known binary ordering patterns (if any) the species arrangement
// realizes.
//
// # What & Why
//
// Geometry alone cannot distinguish a pure element from an ordered alloy;
// that distinction lives entirely in the species vector once mapping has
// already resolved which observed neighbour sits at which template
// position. This package is deliberately narrow: it only classifies FCC
// and BCC templates (the templates with documented, unambiguous binary
// ordering motifs), and returns Type None for everything else,
// including SC, HCP and ICO, where no canonical ordering taxonomy
// applies.
//
// # Determinism & Stability
//
//   - Classify never allocates beyond its local working slice and never
//     consults map iteration order; ties between candidate orderings
//     never arise because the position sets being compared are disjoint
//     by construction.
package alloy
