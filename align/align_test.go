// SPDX-License-Identifier: MIT
package align

import (
	"math"
	"testing"

	"github.com/katalvlaran/ptm/quat"
	"github.com/stretchr/testify/assert"
)

func octahedron() [][3]float64 {
	return [][3]float64{
		{0, 0, 0},
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
}

func gramSum(pts [][3]float64) float64 {
	sum := 0.0
	for _, p := range pts {
		sum += p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
	}
	return sum
}

func identityMapping(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

func TestSolveIdentical(t *testing.T) {
	ideal := octahedron()
	g1 := gramSum(ideal)
	res := Solve(ideal, ideal, identityMapping(len(ideal)), g1, g1)
	assert.InDelta(t, 0.0, res.RMSD, 1e-9)
	assert.InDelta(t, 1.0, res.Scale, 1e-9)
}

func TestSolveScaled(t *testing.T) {
	ideal := octahedron()
	scaled := make([][3]float64, len(ideal))
	const alpha = 2.5
	for i, p := range ideal {
		scaled[i] = [3]float64{p[0] * alpha, p[1] * alpha, p[2] * alpha}
	}
	g1 := gramSum(ideal)
	g2 := gramSum(scaled)
	res := Solve(ideal, scaled, identityMapping(len(ideal)), g1, g2)
	assert.InDelta(t, alpha, res.Scale, 1e-6)
	assert.InDelta(t, 0.0, res.RMSD, 1e-6)
}

func TestSolveRotated(t *testing.T) {
	ideal := octahedron()
	// Rotate by 90 degrees about +z: (x,y,z) -> (-y,x,z).
	rotated := make([][3]float64, len(ideal))
	for i, p := range ideal {
		rotated[i] = [3]float64{-p[1], p[0], p[2]}
	}
	g1 := gramSum(ideal)
	g2 := gramSum(rotated)
	res := Solve(ideal, rotated, identityMapping(len(ideal)), g1, g2)
	assert.InDelta(t, 0.0, res.RMSD, 1e-6)

	expect := quat.Quat{W: math.Sqrt2 / 2, X: 0, Y: 0, Z: math.Sqrt2 / 2}
	got := res.Quat.CanonicalHemisphere()
	expect = expect.CanonicalHemisphere()
	assert.InDelta(t, 1.0, math.Abs(got.Dot(expect)), 1e-6)
}

func TestSolvePerturbed(t *testing.T) {
	ideal := octahedron()
	perturbed := make([][3]float64, len(ideal))
	copy(perturbed, ideal)
	perturbed[1] = [3]float64{1.05, 0, 0}
	g1 := gramSum(ideal)
	g2 := gramSum(perturbed)
	res := Solve(ideal, perturbed, identityMapping(len(ideal)), g1, g2)
	assert.Greater(t, res.RMSD, 0.0)
	assert.Less(t, res.RMSD, 0.1)
}
