// SPDX-License-Identifier: MIT
package ptm

import (
	"github.com/katalvlaran/ptm/alloy"
	"github.com/katalvlaran/ptm/quat"
	"github.com/katalvlaran/ptm/reftables"
)

// TemplateSet is a bitset of the reference templates a call to Index should
// try. The zero value selects nothing.
type TemplateSet uint8

const (
	FlagSC TemplateSet = 1 << iota
	FlagFCC
	FlagHCP
	FlagICO
	FlagBCC

	// FlagAll tries every recognised template.
	FlagAll = FlagSC | FlagFCC | FlagHCP | FlagICO | FlagBCC
)

// Has reports whether s requests f.
func (s TemplateSet) Has(f TemplateSet) bool { return s&f != 0 }

// Cloud is one local neighbourhood to classify: Points[0] is the central
// point's absolute position, Points[1:] are its neighbours, ordered
// however the caller obtained them (Index reorders them internally when
// topological ordering is requested). Species, if non-nil, must have the
// same length as Points and is consulted only by alloy classification.
type Cloud struct {
	Points  [][3]float64
	Species []int32
}

// Result is the outcome of classifying one Cloud.
type Result struct {
	// Type is the winning template, or reftables.None if nothing matched
	// within the requested flags.
	Type reftables.TemplateType

	// AlloyType is package alloy's coarse chemical-ordering classification,
	// populated only when requested and Type is FCC or BCC.
	AlloyType alloy.Type

	// Scale, Quat and RMSD describe the best rigid-body alignment of the
	// template's ideal shell onto the observed neighbours.
	Scale float64
	Quat  quat.Quat
	RMSD  float64

	// CubicGenerator is the index (0..23) of the proper cubic rotation
	// applied to bring Quat into the fundamental zone, set only when Type
	// is SC, FCC or BCC.
	CubicGenerator int

	// Mapping holds len(Template.Points) entries: Mapping[0] is always the
	// index of the central point in the caller's original Cloud.Points,
	// and Mapping[k] for k>=1 is the original index of the cloud point
	// matched to the template's k-th ideal neighbour.
	Mapping []int

	// F, FRes, U, P are the deformation gradient, its per-axis residual,
	// and its polar decomposition (U: right stretch, P: rotation),
	// populated only when deformation was requested and a match was found.
	F    [9]float64
	FRes [3]float64
	U    [9]float64
	P    [9]float64
}

// Option configures a Matcher's collaborators. Unset options default to
// the package-level Topological orderer, Table alloy lookup, LeastSquares
// solver and JacobiPolar decomposer.
type Option func(*collaborators)

// RequestOption configures one call to Index.
type RequestOption func(*requestSettings)
