// SPDX-License-Identifier: MIT
package quat

import (
	"errors"
	"math"
)

// ErrZeroNorm indicates Normalize was asked to normalize a (near-)zero
// quaternion, which has no well-defined unit direction.
// Usage: if errors.Is(err, ErrZeroNorm) { /* fall back to identity */ }.
var ErrZeroNorm = errors.New("quat: zero-norm quaternion")

// Quat is a unit quaternion W + Xi + Yj + Zk (Hamilton convention).
// W is the scalar part; X, Y, Z are the vector part.
type Quat struct {
	W, X, Y, Z float64
}

// Identity is the no-rotation quaternion.
var Identity = Quat{W: 1}

// Dot returns the Euclidean inner product of q and r, treating both as
// 4-vectors.
func (q Quat) Dot(r Quat) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// Norm returns the Euclidean length of q.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length.
//
// Contract:
//   - Returns ErrZeroNorm if q's norm is smaller than 1e-300 (division
//     would otherwise produce Inf/NaN silently).
func (q Quat) Normalize() (Quat, error) {
	n := q.Norm()
	if n < 1e-300 {
		return Quat{}, ErrZeroNorm
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}, nil
}

// Mul returns the Hamilton product q*r, applying r's rotation first and
// then q's (i.e. composing as rotation matrices R(q)·R(r) would).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// CanonicalHemisphere negates all four components when W < 0, so that
// q and -q (the same rotation) always compare equal component-wise.
func (q Quat) CanonicalHemisphere() Quat {
	if q.W < 0 {
		return Quat{-q.W, -q.X, -q.Y, -q.Z}
	}
	return q
}

// ToRotationMatrix converts a (assumed unit) quaternion to a row-major 3x3
// rotation matrix u[0..8], u[3*i+j] = R[i][j].
func (q Quat) ToRotationMatrix() [9]float64 {
	a, b, c, d := q.W, q.X, q.Y, q.Z
	return [9]float64{
		a*a + b*b - c*c - d*d, 2*b*c - 2*a*d, 2*b*d + 2*a*c,
		2*b*c + 2*a*d, a*a - b*b + c*c - d*d, 2*c*d - 2*a*b,
		2*b*d - 2*a*c, 2*c*d + 2*a*b, a*a - b*b - c*c + d*d,
	}
}

// sign returns 1.0 for x >= 0 and -1.0 for x < 0 (the C SIGN() macro used
// by the reference quaternion-from-matrix derivation).
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// FromRotationMatrix recovers the unit quaternion representing the rotation
// matrix u (row-major 3x3, u[3*i+j] = R[i][j]).
//
// Method: compute all four |component|^2 candidates from the trace
// identities, pick the largest-magnitude component as the numerically
// stable pivot, then recover the signs of the remaining three from the
// off-diagonal sums/differences, matching the standard branch-on-largest-
// term construction (Shepperd's method).
func FromRotationMatrix(u [9]float64) Quat {
	r11, r12, r13 := u[0], u[1], u[2]
	r21, r22, r23 := u[3], u[4], u[5]
	r31, r32, r33 := u[6], u[7], u[8]

	q := [4]float64{
		(1.0 + r11 + r22 + r33) / 4.0,
		(1.0 + r11 - r22 - r33) / 4.0,
		(1.0 - r11 + r22 - r33) / 4.0,
		(1.0 - r11 - r22 + r33) / 4.0,
	}
	for i := range q {
		q[i] = math.Sqrt(math.Max(0, q[i]))
	}

	best := 0
	for i := 1; i < 4; i++ {
		if q[i] > q[best] {
			best = i
		}
	}

	switch best {
	case 0:
		q[1] *= sign(r32 - r23)
		q[2] *= sign(r13 - r31)
		q[3] *= sign(r21 - r12)
	case 1:
		q[0] *= sign(r32 - r23)
		q[2] *= sign(r21 + r12)
		q[3] *= sign(r13 + r31)
	case 2:
		q[0] *= sign(r13 - r31)
		q[1] *= sign(r21 + r12)
		q[3] *= sign(r32 + r23)
	case 3:
		q[0] *= sign(r21 - r12)
		q[1] *= sign(r31 + r13)
		q[2] *= sign(r32 + r23)
	}

	out := Quat{q[0], q[1], q[2], q[3]}
	normalized, err := out.Normalize()
	if err != nil {
		// Degenerate rotation matrix input; identity is the only safe fallback.
		return Identity
	}
	return normalized
}

// quickMisorientation returns 2*dot(q,r)^2 - 1, the cosine of the smallest
// rotation angle between q and r when q and -q (and r and -r) are treated
// as identical (they are: both represent the same rotation).
func quickMisorientation(q, r Quat) float64 {
	t := q.Dot(r)
	if t > 1 {
		t = 1
	} else if t < -1 {
		t = -1
	}
	return 2*t*t - 1
}

// Misorientation returns the smallest rotation angle (radians) carrying q
// onto r, ignoring the double-cover ambiguity of unit quaternions.
func Misorientation(q, r Quat) float64 {
	return math.Acos(quickMisorientation(q, r))
}
