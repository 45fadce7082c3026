// SPDX-License-Identifier: MIT
// Package deform implements the deformation-gradient least-squares fit and
// its left polar decomposition, both treated as external collaborators by
// package ptm once a geometric match has fixed a neighbour-to-template
// mapping and an isotropic scale.
//
// # What & Why
//
// A rigid rotation and isotropic scale absorb only part of the difference
// between an ideal template and an observed, possibly strained,
// neighbourhood. The deformation gradient F captures the remaining local
// strain as a 3x3 linear map from ideal to scaled-observed coordinates;
// its left polar decomposition F = P*U splits that map into a pure
// stretch U and a residual rotation P, letting a caller separate
// "shape change" from "further reorientation".
//
// Fit is a constrained least-squares problem (minimise
// sum_i |F*ideal_i - observed_i|^2) whose normal-equations solution
// factors into a per-template Moore-Penrose helper (precomputed once by
// package reftables, since it depends only on the immutable ideal
// points) and a per-query cross-correlation accumulated from the fitted
// pair. Decompose reuses matrix.Eigen's Jacobi kernel — grounded on
// package matrix's impl_linear_algebra.go — to diagonalise the
// symmetric FtF and reconstruct U and its inverse from the eigenbasis.
//
// # Determinism & Stability
//
//   - Fit never allocates beyond its local accumulator and processes
//     points in mapping order, never map iteration order.
//   - Decompose clamps near-zero eigenvalues before inverting U to avoid
//     dividing by a numerically singular stretch.
package deform
