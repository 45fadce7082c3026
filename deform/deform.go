// SPDX-License-Identifier: MIT
package deform

import (
	"errors"
	"math"

	"github.com/katalvlaran/ptm/matrix"
)

// ErrLengthMismatch indicates ideal, mapping, scaled and penrose disagree
// on the number of fitted points.
var ErrLengthMismatch = errors.New("deform: mismatched input lengths")

// Solver fits a 3x3 deformation gradient mapping ideal template
// coordinates onto scaled, centroid-subtracted observed coordinates.
//
// Contract:
//   - ideal, penrose and mapping share the template's neighbour ordering
//     (length N, excluding the centre point); scaled is indexed by
//     observed-cloud position, with mapping[i] the observed index
//     matched to ideal[i].
//   - F is returned in row-major order; fres is the per-axis RMS
//     residual of the fit (zero for an exact match).
type Solver interface {
	Fit(ideal [][3]float64, mapping []int, scaled [][3]float64, penrose [][3]float64) (f [9]float64, fres [3]float64, err error)
}

// LeastSquares is the default Solver: normal-equations fit via a
// precomputed Moore-Penrose helper (see reftables.ComputePenrose).
var LeastSquares Solver = leastSquaresSolver{}

type leastSquaresSolver struct{}

func (leastSquaresSolver) Fit(ideal [][3]float64, mapping []int, scaled [][3]float64, penrose [][3]float64) ([9]float64, [3]float64, error) {
	n := len(ideal)
	if n != len(mapping) || n != len(penrose) {
		return [9]float64{}, [3]float64{}, ErrLengthMismatch
	}

	var f [9]float64
	for i := 0; i < n; i++ {
		obsIdx := mapping[i]
		if obsIdx < 0 || obsIdx >= len(scaled) {
			return [9]float64{}, [3]float64{}, ErrLengthMismatch
		}
		obs := scaled[obsIdx]
		p := penrose[i]
		// Accumulate F += obs ⊗ p (outer product), row-major.
		f[0] += obs[0] * p[0]
		f[1] += obs[0] * p[1]
		f[2] += obs[0] * p[2]
		f[3] += obs[1] * p[0]
		f[4] += obs[1] * p[1]
		f[5] += obs[1] * p[2]
		f[6] += obs[2] * p[0]
		f[7] += obs[2] * p[1]
		f[8] += obs[2] * p[2]
	}

	var sumSq [3]float64
	for i := 0; i < n; i++ {
		obs := scaled[mapping[i]]
		pred := applyMat(f, ideal[i])
		for k := 0; k < 3; k++ {
			d := pred[k] - obs[k]
			sumSq[k] += d * d
		}
	}
	var fres [3]float64
	if n > 0 {
		for k := 0; k < 3; k++ {
			fres[k] = math.Sqrt(sumSq[k] / float64(n))
		}
	}
	return f, fres, nil
}

func applyMat(f [9]float64, v [3]float64) [3]float64 {
	return [3]float64{
		f[0]*v[0] + f[1]*v[1] + f[2]*v[2],
		f[3]*v[0] + f[4]*v[1] + f[5]*v[2],
		f[6]*v[0] + f[7]*v[1] + f[8]*v[2],
	}
}

// Polar computes the left polar decomposition F = P*U of a 3x3 matrix.
type Polar interface {
	Decompose(f [9]float64) (p [9]float64, u [9]float64, err error)
}

// JacobiPolar is the default Polar: diagonalises FtF via matrix.Eigen
// (Jacobi rotations) to build U = sqrt(FtF) and its inverse, then sets
// P = F*U^-1.
var JacobiPolar Polar = jacobiPolar{}

type jacobiPolar struct{}

const (
	polarTol     = 1e-12
	polarMaxIter = 100
	polarEps     = 1e-14
)

func (jacobiPolar) Decompose(f [9]float64) ([9]float64, [9]float64, error) {
	ftf, err := matrix.NewDense(3, 3)
	if err != nil {
		return [9]float64{}, [9]float64{}, err
	}
	// FtF[i,j] = sum_k F[k,i] * F[k,j]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var v float64
			for k := 0; k < 3; k++ {
				v += f[k*3+i] * f[k*3+j]
			}
			if err := ftf.Set(i, j, v); err != nil {
				return [9]float64{}, [9]float64{}, err
			}
		}
	}

	eigs, q, err := matrix.Eigen(ftf, polarTol, polarMaxIter)
	if err != nil {
		return [9]float64{}, [9]float64{}, err
	}

	var u, uInv [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum, sumInv float64
			for k := 0; k < 3; k++ {
				qik, _ := q.At(i, k)
				qjk, _ := q.At(j, k)
				lambda := eigs[k]
				if lambda < 0 {
					lambda = 0
				}
				root := math.Sqrt(lambda)
				sum += qik * root * qjk
				if root > polarEps {
					sumInv += qik * (1.0 / root) * qjk
				}
			}
			u[i*3+j] = sum
			uInv[i*3+j] = sumInv
		}
	}

	p := matMul(f, uInv)
	return p, u, nil
}

func matMul(a, b [9]float64) [9]float64 {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i*3+k] * b[k*3+j]
			}
			out[i*3+j] = sum
		}
	}
	return out
}
