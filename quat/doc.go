// SPDX-License-Identifier: MIT
// Package quat provides unit-quaternion algebra for rigid-body rotations in
// ℝ³, plus the cubic-symmetry helpers the polyhedral template matcher needs
// to canonicalise a rotation against the 24-element proper cubic point
// group.
//
// # What & Why
//
// A Quat{W,X,Y,Z} represents a rotation via the Hamilton convention
// (W is the scalar/real part). Every constructor and the rotation-matrix
// round trip follow the same sign and component-order conventions as
// Horn's closed-form quaternion least-squares fit (see package align),
// so values can cross the package boundary without re-deriving signs.
//
// # Determinism & Stability
//
//   - RotateIntoCubicZone always scans all 24 generators in a fixed order
//     and keeps the first maximiser on ties (stable, reproducible).
//   - Conversions never allocate; all operations are value receivers.
package quat
