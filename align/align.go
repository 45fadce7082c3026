// SPDX-License-Identifier: MIT
package align

import (
	"math"

	"github.com/katalvlaran/ptm/quat"
)

// newtonMaxSteps bounds the Newton-Raphson refinement of the key matrix's
// largest eigenvalue. The quartic is well-conditioned for the point counts
// this package is used with (M <= 15), so convergence is always reached in
// a handful of steps; the cap only guards against a pathological input.
const newtonMaxSteps = 50

// newtonTol is the convergence tolerance on the Newton step size.
const newtonTol = 1e-11

// degenerateEps: if the refined eigenvalue never moves more than this away
// from the (G1+G2)/2 seed, the key matrix is treated as having no
// well-separated dominant eigenvector and Solve returns the identity
// rotation (spec's numerical guard against ill-conditioned extraction).
const degenerateEps = 1e-12

// Result is the outcome of a single candidate-correspondence alignment.
type Result struct {
	Quat  quat.Quat
	Scale float64
	RMSD  float64
}

// Solve computes the optimal rotation, isotropic scale and RMSD aligning
// ideal template points A onto observed points B under the correspondence
// mapping (mapping[i] is the B-index assigned to A-index i), given the
// precomputed sums of squared norms g1 = Σ‖Aᵢ‖² and g2 = Σ‖B_mapping(i)‖².
//
// Method: build the 3x3 cross-correlation matrix, assemble the symmetric
// 4x4 Horn/Coutsias key matrix, refine its largest eigenvalue by Newton
// iteration seeded at (g1+g2)/2, recover the eigenvector as the alignment
// quaternion, then derive scale and RMSD from the closed-form relations in
// package ptm's orchestration contract.
//
// Contract:
//   - len(ideal) == len(observed) == len(mapping) == M.
//   - mapping values must be valid indices into observed; Solve does not
//     itself validate that mapping is a permutation (callers that need that
//     guarantee validate it once per candidate, not per Solve call).
func Solve(ideal, observed [][3]float64, mapping []int, g1, g2 float64) Result {
	m := buildCorrelation(ideal, observed, mapping)
	k := buildKeyMatrix(m)

	seed := (g1 + g2) / 2
	lambda := refineEigenvalue(k, seed)

	var q quat.Quat
	if math.Abs(lambda-seed) < degenerateEps {
		q = quat.Identity
	} else {
		q = eigenvector(k, lambda)
	}

	rot := q.ToRotationMatrix()
	k0 := 0.0
	for i := range ideal {
		rx := rot[0]*ideal[i][0] + rot[1]*ideal[i][1] + rot[2]*ideal[i][2]
		ry := rot[3]*ideal[i][0] + rot[4]*ideal[i][1] + rot[5]*ideal[i][2]
		rz := rot[6]*ideal[i][0] + rot[7]*ideal[i][1] + rot[8]*ideal[i][2]
		b := observed[mapping[i]]
		k0 += rx*b[0] + ry*b[1] + rz*b[2]
	}

	scale := 0.0
	if g2 > 0 {
		scale = k0 / g2
	}
	rmsd := math.Sqrt(math.Abs(g1-scale*k0) / float64(len(ideal)))

	return Result{Quat: q, Scale: scale, RMSD: rmsd}
}

// buildCorrelation returns the 3x3 cross-correlation matrix
// Σ Aᵢ ⊗ B_mapping(i), row-major m[3*a+b] = Σ Aᵢ[a] * B_mapping(i)[b].
func buildCorrelation(ideal, observed [][3]float64, mapping []int) [9]float64 {
	var m [9]float64
	for i := range ideal {
		a := ideal[i]
		b := observed[mapping[i]]
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				m[3*r+c] += a[r] * b[c]
			}
		}
	}
	return m
}

// buildKeyMatrix assembles the symmetric 4x4 Horn/Coutsias key matrix from
// the 3x3 cross-correlation matrix s (row-major, s[3*r+c] = S[r][c]).
func buildKeyMatrix(s [9]float64) [4][4]float64 {
	sxx, sxy, sxz := s[0], s[1], s[2]
	syx, syy, syz := s[3], s[4], s[5]
	szx, szy, szz := s[6], s[7], s[8]

	return [4][4]float64{
		{sxx + syy + szz, syz - szy, szx - sxz, sxy - syx},
		{syz - szy, sxx - syy - szz, sxy + syx, szx + sxz},
		{szx - sxz, sxy + syx, -sxx + syy - szz, syz + szy},
		{sxy - syx, szx + sxz, syz + szy, -sxx - syy + szz},
	}
}

// charPoly returns the coefficients of det(K - λI) = λ⁴ - c3λ³ + c2λ² - c1λ + c0
// for a general symmetric 4x4 matrix, via the elementary-symmetric-function
// (principal minor) identities. K is always traceless for the key matrices
// this package builds, so c3 == 0 in practice, but the computation is kept
// generic rather than hard-coded to that fact.
func charPoly(k [4][4]float64) (c3, c2, c1, c0 float64) {
	for i := 0; i < 4; i++ {
		c3 += k[i][i]
	}

	minor2 := func(i, j int) float64 {
		return k[i][i]*k[j][j] - k[i][j]*k[j][i]
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			c2 += minor2(i, j)
		}
	}

	minor3 := func(i, j, l int) float64 {
		return k[i][i]*(k[j][j]*k[l][l]-k[j][l]*k[l][j]) -
			k[i][j]*(k[j][i]*k[l][l]-k[j][l]*k[l][i]) +
			k[i][l]*(k[j][i]*k[l][j]-k[j][j]*k[l][i])
	}
	triples := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for _, t := range triples {
		c1 += minor3(t[0], t[1], t[2])
	}

	c0 = det4(k)
	return
}

func det4(k [4][4]float64) float64 {
	// Laplace expansion along the first row.
	sub := func(skipCol int) [3][3]float64 {
		var m [3][3]float64
		for r := 1; r < 4; r++ {
			col := 0
			for c := 0; c < 4; c++ {
				if c == skipCol {
					continue
				}
				m[r-1][col] = k[r][c]
				col++
			}
		}
		return m
	}
	det3 := func(m [3][3]float64) float64 {
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	}

	det := 0.0
	sign := 1.0
	for c := 0; c < 4; c++ {
		det += sign * k[0][c] * det3(sub(c))
		sign = -sign
	}
	return det
}

// refineEigenvalue runs bounded Newton-Raphson on the characteristic
// quartic of k, seeded at seed (the spec-mandated (G1+G2)/2 starting
// point), returning the refined root — the largest eigenvalue of k.
func refineEigenvalue(k [4][4]float64, seed float64) float64 {
	c3, c2, c1, c0 := charPoly(k)

	lambda := seed
	for i := 0; i < newtonMaxSteps; i++ {
		f := lambda*lambda*lambda*lambda - c3*lambda*lambda*lambda + c2*lambda*lambda - c1*lambda + c0
		fp := 4*lambda*lambda*lambda - 3*c3*lambda*lambda + 2*c2*lambda - c1
		if fp == 0 {
			break
		}
		step := f / fp
		lambda -= step
		if math.Abs(step) < newtonTol {
			break
		}
	}
	return lambda
}

// eigenvector recovers a unit eigenvector of k for eigenvalue lambda via
// Gaussian elimination with partial pivoting on (k - lambda*I), solving
// for the one-dimensional null space. Ties in pivot selection are broken
// by lowest row index, keeping the result deterministic.
func eigenvector(k [4][4]float64, lambda float64) quat.Quat {
	var m [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = k[i][j]
		}
		m[i][i] -= lambda
	}

	// Forward elimination with partial pivoting; track which column never
	// gets a usable pivot (the free variable of the null space).
	rowUsed := [4]bool{}
	pivotCol := [4]int{-1, -1, -1, -1}
	for col := 0; col < 4; col++ {
		best, bestVal := -1, 0.0
		for row := 0; row < 4; row++ {
			if rowUsed[row] {
				continue
			}
			v := math.Abs(m[row][col])
			if v > bestVal {
				bestVal, best = v, row
			}
		}
		if best == -1 || bestVal < 1e-9 {
			continue
		}
		rowUsed[best] = true
		pivotCol[best] = col
		pivot := m[best][col]
		for row := 0; row < 4; row++ {
			if row == best {
				continue
			}
			factor := m[row][col] / pivot
			if factor == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				m[row][c] -= factor * m[best][c]
			}
		}
	}

	freeCol := 0
	for c := 0; c < 4; c++ {
		isPivot := false
		for _, pc := range pivotCol {
			if pc == c {
				isPivot = true
				break
			}
		}
		if !isPivot {
			freeCol = c
			break
		}
	}

	var v [4]float64
	v[freeCol] = 1
	for row := 0; row < 4; row++ {
		pc := pivotCol[row]
		if pc == -1 || pc == freeCol {
			continue
		}
		// m[row][pc]*v[pc] + m[row][freeCol]*v[freeCol] == 0 (other cols are 0 post-elimination)
		if m[row][pc] != 0 {
			v[pc] = -m[row][freeCol] * v[freeCol] / m[row][pc]
		}
	}

	out := quat.Quat{W: v[0], X: v[1], Y: v[2], Z: v[3]}
	normalized, err := out.Normalize()
	if err != nil {
		return quat.Identity
	}
	return normalized.CanonicalHemisphere()
}
