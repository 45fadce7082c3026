// SPDX-License-Identifier: MIT
package alloy

import "github.com/katalvlaran/ptm/reftables"

// Type classifies the chemical ordering of a matched cubic-family cloud.
type Type int

const (
	// None is returned whenever no supported ordering motif applies,
	// including every non-cubic template type.
	None Type = iota
	// Pure indicates every matched position carries the same species.
	Pure
	// L12A indicates an FCC cloud where the centre species differs from
	// a uniform species shared by all twelve neighbours (Cu3Au motif,
	// centre-as-minority-species variant).
	L12A
	// L12B indicates the complementary L12 motif: the centre shares its
	// species with a majority of neighbours, with a uniform minority.
	L12B
	// L10 indicates an FCC cloud where the twelve neighbours split into
	// two antipodal groups of six, each internally uniform but distinct
	// from the other (CuAu motif).
	L10
	// B2 indicates a BCC cloud where the eight nearest neighbours are
	// uniformly one species and the six next-nearest neighbours are
	// uniformly the centre's species (CsCl motif).
	B2
)

// String renders a Type for diagnostics.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Pure:
		return "pure"
	case L12A:
		return "L12A"
	case L12B:
		return "L12B"
	case L10:
		return "L10"
	case B2:
		return "B2"
	default:
		return "unknown"
	}
}

// Lookup classifies the species arrangement of an already-matched cloud.
//
// Contract:
//   - mapping has length N+1, mapping[0] the centre, per the module-wide
//     convention that the caller-facing permutation always fixes index 0.
//   - species is indexed by observed-cloud position (mapping[k] is an
//     index into species), and may be shorter than required, in which
//     case implementations return None rather than indexing out of range.
type Lookup interface {
	Classify(mapping []int, species []int32, t reftables.TemplateType) Type
}

// Table is the default Lookup: a direct table-driven check of the FCC
// L10/L12 and BCC B2 motifs, returning None for every other template.
var Table Lookup = tableLookup{}

type tableLookup struct{}

func (tableLookup) Classify(mapping []int, species []int32, t reftables.TemplateType) Type {
	switch t {
	case reftables.FCC:
		return classifyFCC(mapping, species)
	case reftables.BCC:
		return classifyBCC(mapping, species)
	default:
		return None
	}
}

func speciesAt(mapping []int, species []int32, pos int) (int32, bool) {
	if pos < 0 || pos >= len(mapping) {
		return 0, false
	}
	idx := mapping[pos]
	if idx < 0 || idx >= len(species) {
		return 0, false
	}
	return species[idx], true
}

func uniform(mapping []int, species []int32, positions []int) (int32, bool) {
	var ref int32
	for i, pos := range positions {
		s, ok := speciesAt(mapping, species, pos)
		if !ok {
			return 0, false
		}
		if i == 0 {
			ref = s
			continue
		}
		if s != ref {
			return 0, false
		}
	}
	return ref, true
}

func classifyFCC(mapping []int, species []int32) Type {
	if len(mapping) < 13 {
		return None
	}
	centre, ok := speciesAt(mapping, species, 0)
	if !ok {
		return None
	}
	neighbours := make([]int, 12)
	for i := range neighbours {
		neighbours[i] = i + 1
	}

	if all, ok := uniform(mapping, species, append([]int{0}, neighbours...)); ok && all == centre {
		return Pure
	}
	if ns, ok := uniform(mapping, species, neighbours); ok {
		if ns != centre {
			return L12A
		}
	}

	groupA := []int{1, 2, 3, 4, 5, 6}
	groupB := []int{7, 8, 9, 10, 11, 12}
	sa, okA := uniform(mapping, species, groupA)
	sb, okB := uniform(mapping, species, groupB)
	if okA && okB && sa != sb {
		return L10
	}

	// L12B: the centre's species on a majority of neighbours, one other
	// species on all the remaining ones.
	var other int32
	same, rest := 0, 0
	for _, pos := range neighbours {
		s, ok := speciesAt(mapping, species, pos)
		if !ok || (rest > 0 && s != centre && s != other) {
			return None
		}
		if s == centre {
			same++
			continue
		}
		other = s
		rest++
	}
	if rest > 0 && same > rest {
		return L12B
	}
	return None
}

func classifyBCC(mapping []int, species []int32) Type {
	if len(mapping) < 15 {
		return None
	}
	centre, ok := speciesAt(mapping, species, 0)
	if !ok {
		return None
	}
	nearShell := make([]int, 8)
	for i := range nearShell {
		nearShell[i] = i + 1
	}
	farShell := make([]int, 6)
	for i := range farShell {
		farShell[i] = i + 9
	}

	allPositions := append(append([]int{0}, nearShell...), farShell...)
	if all, ok := uniform(mapping, species, allPositions); ok && all == centre {
		return Pure
	}

	near, okNear := uniform(mapping, species, nearShell)
	far, okFar := uniform(mapping, species, farShell)
	if okNear && okFar && near != centre && far == centre {
		return B2
	}
	return None
}
