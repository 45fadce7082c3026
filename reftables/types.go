// SPDX-License-Identifier: MIT
package reftables

// TemplateType names a reference lattice structure (or the absence of one).
type TemplateType int

const (
	// None indicates no reference lattice match.
	None TemplateType = iota
	// SC is simple cubic (6 neighbours).
	SC
	// FCC is face-centred cubic (12 neighbours).
	FCC
	// HCP is hexagonal close-packed (12 neighbours).
	HCP
	// ICO is icosahedral (12 neighbours).
	ICO
	// BCC is body-centred cubic (14 neighbours).
	BCC
)

// String renders a TemplateType for diagnostics and log lines.
func (t TemplateType) String() string {
	switch t {
	case None:
		return "none"
	case SC:
		return "SC"
	case FCC:
		return "FCC"
	case HCP:
		return "HCP"
	case ICO:
		return "ICO"
	case BCC:
		return "BCC"
	default:
		return "unknown"
	}
}

// ReferenceGraph is the canonical facet-adjacency graph of one template,
// derived once from its ideal point coordinates.
type ReferenceGraph struct {
	TemplateType  TemplateType
	Facets        [][3]int // 0-based over neighbour indices 0..N-1 (centre excluded)
	Canonical     []int    // Canonical[v] = canonical position of neighbour v
	Hash          uint64
	Automorphisms [][]int // Automorphisms[k][v] = image of neighbour v under automorphism k
}

// Template is the immutable, process-wide reference record for one
// structure type.
type Template struct {
	Type      TemplateType
	NumNbrs   int // N
	NumFacets int // F
	MaxDegree int // D

	// Points holds N+1 ideal coordinates: Points[0] is the origin (the
	// centre atom), Points[1..N] lie on the unit shell, except BCC's six
	// second-shell neighbours, which lie at distance 2/√3.
	Points [][3]float64

	// Penrose is the precomputed Moore-Penrose helper used by package
	// deform's least-squares fit: Penrose[i] corresponds to Points[i+1].
	Penrose [][3]float64

	// Graphs lists every canonical reference graph recognised for this
	// template. Real PTM structures admit more than one valid
	// triangulation of a near-degenerate hull (e.g. FCC/HCP share
	// closely related but distinct facet graphs); this implementation
	// derives exactly one graph per template from its ideal points,
	// which is the common case, and leaves the slice open for callers
	// who register additional graphs for degenerate variants.
	Graphs []ReferenceGraph
}

// CubicMapping is the fundamental-zone mapping-permutation table for one
// cubic-family template (SC, FCC, BCC): CubicMapping[bi] is the neighbour
// position permutation to apply once RotateIntoCubicZone has chosen
// generator index bi.
type CubicMapping [][]int
