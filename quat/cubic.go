// SPDX-License-Identifier: MIT
package quat

import "math"

var halfSqrt2 = math.Sqrt2 / 2

// CubicGenerators is the 24-element proper rotation group of the cube,
// expressed as unit quaternions, in the fixed enumeration order used by
// RotateIntoCubicZone (index order is part of the public contract: the cubic
// mapping-permutation tables in package reftables are indexed by the
// generator index this function returns).
var CubicGenerators = [24]Quat{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
	{0.5, 0.5, 0.5, 0.5},
	{0.5, 0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5, 0.5},
	{0.5, -0.5, -0.5, 0.5},
	{-0.5, 0.5, 0.5, 0.5},
	{-0.5, 0.5, -0.5, 0.5},
	{-0.5, -0.5, 0.5, 0.5},
	{-0.5, -0.5, -0.5, 0.5},
	{halfSqrt2, halfSqrt2, 0, 0},
	{halfSqrt2, 0, halfSqrt2, 0},
	{halfSqrt2, 0, 0, halfSqrt2},
	{-halfSqrt2, halfSqrt2, 0, 0},
	{-halfSqrt2, 0, halfSqrt2, 0},
	{-halfSqrt2, 0, 0, halfSqrt2},
	{0, halfSqrt2, halfSqrt2, 0},
	{0, halfSqrt2, 0, halfSqrt2},
	{0, 0, halfSqrt2, halfSqrt2},
	{0, -halfSqrt2, halfSqrt2, 0},
	{0, -halfSqrt2, 0, halfSqrt2},
	{0, 0, -halfSqrt2, halfSqrt2},
}

// RotateIntoCubicZone multiplies q by whichever of the 24 CubicGenerators
// maximises the magnitude of the scalar part of q·g, then forces the w >= 0
// hemisphere.
//
// Contract:
//   - q need not already be unit-norm; the generators are, and the result
//     preserves q's norm up to floating-point error (callers that need a
//     strict unit quaternion should normalize q first).
//   - Ties are broken by the fixed iteration order of CubicGenerators (the
//     first maximiser wins), so the result is bit-for-bit deterministic.
//
// Returns the rotated quaternion and the index (0..23) of the chosen
// generator; callers index type-specific mapping-permutation tables by
// this value to keep the returned neighbour mapping consistent with the
// canonicalised rotation.
func RotateIntoCubicZone(q Quat) (Quat, int) {
	best := -1
	max := 0.0
	for i, g := range CubicGenerators {
		t := math.Abs(q.W*g.W - q.X*g.X - q.Y*g.Y - q.Z*g.Z)
		if t > max {
			max = t
			best = i
		}
	}

	rotated := q.Mul(CubicGenerators[best])
	return rotated.CanonicalHemisphere(), best
}

// CubicMisorientation returns the smallest rotation angle between q and r
// under the symmetry of the 24-element proper cubic point group: it scans
// every generator's image of q and keeps the closest match to r.
func CubicMisorientation(q, r Quat) float64 {
	dmax := -math.MaxFloat64
	for _, g := range CubicGenerators {
		dmax = math.Max(dmax, quickMisorientation(q.Mul(g), r))
	}
	if dmax > 1 {
		dmax = 1
	} else if dmax < -1 {
		dmax = -1
	}
	return math.Acos(dmax)
}
