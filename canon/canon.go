// SPDX-License-Identifier: MIT
package canon

import "sort"

// Result is the canonical form of a facet-adjacency graph.
type Result struct {
	Hash          uint64
	Labelling     []int   // Labelling[v] = canonical position of original vertex v
	Automorphisms [][]int // Automorphisms[k][v] = image of v under the k-th automorphism
}

// Form computes the canonical hash, labelling and automorphism list of the
// graph whose edges are the three sides of every facet in facets, over
// numVerts vertices (0..numVerts-1).
//
// Contract:
//   - facets entries must reference vertices in [0, numVerts).
//   - The returned Labelling is deterministic and always has
//     Labelling == Automorphisms[0] composed appropriately such that
//     Automorphisms[0] is the identity permutation.
func Form(facets [][3]int, numVerts int) Result {
	adj := buildAdjacency(facets, numVerts)

	initial := initialPartition(adj, numVerts)
	refined := refine(adj, initial)

	search := &searcher{adj: adj, numVerts: numVerts}
	search.recurse(refined)

	canonical := search.bestLabellings[0]
	invCanonical := invert(canonical)

	automorphisms := make([][]int, len(search.bestLabellings))
	for k, lab := range search.bestLabellings {
		auto := make([]int, numVerts)
		for v := 0; v < numVerts; v++ {
			auto[v] = invCanonical[lab[v]]
		}
		automorphisms[k] = auto
	}

	return Result{
		Hash:          search.bestHash,
		Labelling:     canonical,
		Automorphisms: automorphisms,
	}
}

func buildAdjacency(facets [][3]int, numVerts int) [][]bool {
	adj := make([][]bool, numVerts)
	for i := range adj {
		adj[i] = make([]bool, numVerts)
	}
	link := func(a, b int) {
		adj[a][b] = true
		adj[b][a] = true
	}
	for _, f := range facets {
		link(f[0], f[1])
		link(f[1], f[2])
		link(f[2], f[0])
	}
	return adj
}

// initialPartition colours vertices by degree, grouping equal-degree
// vertices into one class; classes are ordered by ascending degree, and
// vertices within a class are ordered by ascending index.
func initialPartition(adj [][]bool, numVerts int) [][]int {
	degree := make([]int, numVerts)
	for i := range adj {
		for j := range adj[i] {
			if adj[i][j] {
				degree[i]++
			}
		}
	}

	byDegree := make(map[int][]int)
	var degrees []int
	for v := 0; v < numVerts; v++ {
		d := degree[v]
		if _, ok := byDegree[d]; !ok {
			degrees = append(degrees, d)
		}
		byDegree[d] = append(byDegree[d], v)
	}
	sort.Ints(degrees)

	partition := make([][]int, 0, len(degrees))
	for _, d := range degrees {
		partition = append(partition, byDegree[d])
	}
	return partition
}

// classOf maps vertex -> index of its class in partition.
func classOf(partition [][]int, numVerts int) []int {
	c := make([]int, numVerts)
	for ci, class := range partition {
		for _, v := range class {
			c[v] = ci
		}
	}
	return c
}

// refine repeatedly splits classes of partition by the sorted multiset of
// neighbour-class signatures until no further split occurs.
func refine(adj [][]bool, partition [][]int) [][]int {
	for {
		classes := classOf(partition, len(adj))
		numClasses := len(partition)

		var newPartition [][]int
		split := false

		for _, class := range partition {
			if len(class) == 1 {
				newPartition = append(newPartition, class)
				continue
			}

			sigs := make(map[string][]int)
			var order []string
			for _, v := range class {
				counts := make([]int, numClasses)
				for u := 0; u < len(adj); u++ {
					if adj[v][u] {
						counts[classes[u]]++
					}
				}
				key := signature(counts)
				if _, ok := sigs[key]; !ok {
					order = append(order, key)
				}
				sigs[key] = append(sigs[key], v)
			}

			if len(order) > 1 {
				split = true
			}
			sort.Strings(order)
			for _, key := range order {
				newPartition = append(newPartition, sigs[key])
			}
		}

		partition = newPartition
		if !split {
			return partition
		}
	}
}

func signature(counts []int) string {
	b := make([]byte, 0, len(counts)*3)
	for _, c := range counts {
		b = append(b, byte(c>>8), byte(c), ',')
	}
	return string(b)
}

func invert(p []int) []int {
	inv := make([]int, len(p))
	for v, pos := range p {
		inv[pos] = v
	}
	return inv
}

// searcher implements the individualization-refinement branch-and-bound
// over discrete (all-singleton) labellings.
type searcher struct {
	adj      [][]bool
	numVerts int

	bestCode       []byte
	bestHash       uint64
	bestLabellings [][]int
}

func (s *searcher) recurse(partition [][]int) {
	partition = refine(s.adj, partition)

	target := -1
	for i, class := range partition {
		if len(class) > 1 {
			target = i
			break
		}
	}

	if target == -1 {
		s.considerLeaf(partition)
		return
	}

	class := append([]int(nil), partition[target]...)
	sort.Ints(class)
	for _, v := range class {
		var next [][]int
		next = append(next, partition[:target]...)
		rest := make([]int, 0, len(class)-1)
		for _, u := range class {
			if u != v {
				rest = append(rest, u)
			}
		}
		next = append(next, []int{v})
		if len(rest) > 0 {
			next = append(next, rest)
		}
		next = append(next, partition[target+1:]...)
		s.recurse(next)
	}
}

func (s *searcher) considerLeaf(partition [][]int) {
	labelling := make([]int, s.numVerts)
	for pos, class := range partition {
		labelling[class[0]] = pos
	}

	code := make([]byte, s.numVerts*s.numVerts)
	for u := 0; u < s.numVerts; u++ {
		for v := 0; v < s.numVerts; v++ {
			if s.adj[invertPos(labelling, u)][invertPos(labelling, v)] {
				code[u*s.numVerts+v] = 1
			}
		}
	}

	switch {
	case s.bestCode == nil || lessCode(code, s.bestCode):
		s.bestCode = code
		s.bestHash = hashCode(code)
		s.bestLabellings = [][]int{append([]int(nil), labelling...)}
	case equalCode(code, s.bestCode):
		s.bestLabellings = append(s.bestLabellings, append([]int(nil), labelling...))
	}
}

func invertPos(labelling []int, pos int) int {
	for v, p := range labelling {
		if p == pos {
			return v
		}
	}
	return -1
}

func lessCode(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equalCode(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hashCode folds a 0/1 adjacency code into a 64-bit FNV-1a hash.
func hashCode(code []byte) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, b := range code {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}
