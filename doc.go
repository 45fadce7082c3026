// Package ptm (polyhedral template matching) classifies the local
// neighbourhood of a point against reference lattice structures —
// simple cubic, face-centred cubic, hexagonal close-packed, icosahedral,
// body-centred cubic — and reports the best match's rigid-body alignment,
// deformation gradient, and chemical ordering.
//
// 🔬 What does this module do?
//
//	Given a centre point and its neighbours, it finds which (if any)
//	reference structure the neighbourhood resembles, and how:
//
//	  • Geometry: convex hull + canonical graph form identify candidate
//	    structures from connectivity alone, independent of orientation
//	  • Alignment: closed-form quaternion least-squares recovers the
//	    exact rotation, scale and RMSD of the best match
//	  • Refinement: optional deformation-gradient fit and chemical
//	    ordering classification (pure element vs. ordered alloy)
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	hull/      — 3-D incremental convex hull construction
//	canon/     — canonical graph form and automorphism enumeration
//	align/     — Horn/Coutsias quaternion Procrustes alignment
//	quat/      — quaternion algebra and cubic fundamental-zone rotation
//	neighbor/  — deterministic neighbour ordering
//	deform/    — deformation-gradient fit and polar decomposition
//	alloy/     — chemical-ordering classification
//	reftables/ — the process-wide reference template singleton
//	ptm/       — the Matcher orchestrator tying all of the above together
//	matrix/    — the dense linear-algebra core deform and reftables build on
//	core/, builder/ — matrix's underlying graph-to-matrix construction layer
//
// See DESIGN.md for the grounding behind each package's algorithm choice.
package ptm
