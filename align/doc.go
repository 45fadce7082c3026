// SPDX-License-Identifier: MIT
// Package align implements the closed-form optimal-rotation, scale and RMSD
// solve used to score a candidate correspondence between an ideal template
// and an observed, centroid-subtracted neighbour cloud.
//
// # What & Why
//
// Given a correspondence (mapping) between M ideal points and M observed
// points, Solve finds the scalar scale s and unit quaternion q minimising
//
//	Σ‖s·R(q)·Aᵢ − B_mapping(i)‖²
//
// in closed form via the Horn/Coutsias "key matrix" construction: build the
// 3×3 cross-correlation matrix, assemble the symmetric 4×4 key matrix K,
// find its largest eigenvalue by a Newton iteration on the characteristic
// quartic (seeded at (G1+G2)/2, per the reference QCP derivation), and read
// the quaternion off as the corresponding eigenvector.
//
// # Determinism & Stability
//
//   - The Newton iteration stops as soon as its step falls below a fixed
//     tolerance and never runs more than a fixed cap of steps, so runtime is
//     O(1) per call.
//   - If the dominant eigenvalue sits within the configured epsilon of the
//     Newton seed, Solve returns the identity quaternion rather than risk
//     an ill-conditioned eigenvector extraction.
package align
