// SPDX-License-Identifier: MIT
package ptm

import (
	"math"

	"github.com/katalvlaran/ptm/align"
	"github.com/katalvlaran/ptm/alloy"
	"github.com/katalvlaran/ptm/canon"
	"github.com/katalvlaran/ptm/deform"
	"github.com/katalvlaran/ptm/hull"
	"github.com/katalvlaran/ptm/neighbor"
	"github.com/katalvlaran/ptm/quat"
	"github.com/katalvlaran/ptm/reftables"
)

type collaborators struct {
	orderer neighbor.Orderer
	lookup  alloy.Lookup
	solver  deform.Solver
	polar   deform.Polar
	trace   func(format string, args ...any)
}

func defaultCollaborators() collaborators {
	return collaborators{
		orderer: neighbor.Topological,
		lookup:  alloy.Table,
		solver:  deform.LeastSquares,
		polar:   deform.JacobiPolar,
		trace:   func(string, ...any) {},
	}
}

// WithOrderer overrides the neighbour-ordering collaborator.
func WithOrderer(o neighbor.Orderer) Option {
	return func(c *collaborators) { c.orderer = o }
}

// WithAlloyLookup overrides the chemical-ordering collaborator.
func WithAlloyLookup(l alloy.Lookup) Option {
	return func(c *collaborators) { c.lookup = l }
}

// WithSolver overrides the deformation-gradient least-squares collaborator.
func WithSolver(s deform.Solver) Option {
	return func(c *collaborators) { c.solver = s }
}

// WithPolar overrides the polar-decomposition collaborator.
func WithPolar(p deform.Polar) Option {
	return func(c *collaborators) { c.polar = p }
}

// WithTrace installs a diagnostic callback invoked at key decision points
// (ordering fallback, neighbour group skipped, template table or hull
// failure, template rejected by its degree bound). The default is a
// no-op; fn must be safe to call from the goroutine that calls Index.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(c *collaborators) { c.trace = fn }
}

type requestSettings struct {
	order    bool
	workspace *neighbor.Workspace
	deform   bool
	alloyCls bool
}

// WithTopologicalOrdering requests that Index reorder the cloud's
// neighbours via the Matcher's Orderer before matching. Without this
// option the cloud is matched in the order it was supplied.
func WithTopologicalOrdering() RequestOption {
	return func(r *requestSettings) { r.order = true }
}

// WithWorkspace supplies a reusable neighbor.Workspace for the ordering
// step, avoiding a fresh allocation per call. Safe to omit; Index
// allocates one internally when ordering is requested and none is given.
func WithWorkspace(ws *neighbor.Workspace) RequestOption {
	return func(r *requestSettings) { r.workspace = ws }
}

// WithDeformationGradient requests that Index compute the deformation
// gradient (and its polar decomposition) of a winning match.
func WithDeformationGradient() RequestOption {
	return func(r *requestSettings) { r.deform = true }
}

// WithAlloyClassification requests that Index classify chemical ordering
// on a winning FCC or BCC match. Cloud.Species must be populated.
func WithAlloyClassification() RequestOption {
	return func(r *requestSettings) { r.alloyCls = true }
}

// Matcher holds the collaborator set used across repeated Index calls. The
// zero value is not usable; construct with NewMatcher.
type Matcher struct {
	c collaborators
}

// NewMatcher builds a Matcher, triggering reftables initialisation.
//
// Contract:
//   - Returns the error from reftables.Init if the fixed reference tables
//     failed to build; this is a fatal configuration error, never retried.
func NewMatcher(opts ...Option) (*Matcher, error) {
	if err := reftables.Init(); err != nil {
		return nil, err
	}
	c := defaultCollaborators()
	for _, opt := range opts {
		opt(&c)
	}
	return &Matcher{c: c}, nil
}

// templateGroup is a set of templates that share a neighbour count and so
// can be tested against a single hull/canonicalisation pass.
type templateGroup struct {
	n     int
	types []reftables.TemplateType
}

func candidateGroups(flags TemplateSet) []templateGroup {
	var groups []templateGroup
	if flags.Has(FlagSC) {
		groups = append(groups, templateGroup{n: 6, types: []reftables.TemplateType{reftables.SC}})
	}
	var cluster []reftables.TemplateType
	if flags.Has(FlagFCC) {
		cluster = append(cluster, reftables.FCC)
	}
	if flags.Has(FlagHCP) {
		cluster = append(cluster, reftables.HCP)
	}
	if flags.Has(FlagICO) {
		cluster = append(cluster, reftables.ICO)
	}
	if len(cluster) > 0 {
		groups = append(groups, templateGroup{n: 12, types: cluster})
	}
	if flags.Has(FlagBCC) {
		groups = append(groups, templateGroup{n: 14, types: []reftables.TemplateType{reftables.BCC}})
	}
	return groups
}

// maxGroupN returns the largest neighbour count among groups, or 0 if groups
// is empty.
func maxGroupN(groups []templateGroup) int {
	max := 0
	for _, g := range groups {
		if g.n > max {
			max = g.n
		}
	}
	return max
}

// Index classifies cloud against the templates named by flags, returning
// the lowest-RMSD match (Type == reftables.None if none of the requested
// templates had enough points or matched structurally).
func (m *Matcher) Index(cloud Cloud, flags TemplateSet, opts ...RequestOption) Result {
	settings := requestSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	rel := relativeNeighbours(cloud.Points)

	order := identityOrder(len(rel))
	if settings.order && len(rel) > 0 {
		ws := settings.workspace
		if ws == nil {
			ws = neighbor.NewWorkspace()
		}
		if got, err := m.c.orderer.Order(ws, rel); err == nil {
			order = got
		} else {
			m.c.trace("ptm: ordering failed (%v), falling back to identity", err)
		}
	}

	// Truncate only after ordering has run over the full neighbour set, to
	// the largest neighbour count among the requested templates: ordering
	// a candidate shell before trimming it can select a different subset
	// (and angular sweep) than trimming first would have.
	groups := candidateGroups(flags)
	if maxN := maxGroupN(groups); maxN < len(order) {
		order = order[:maxN]
	}

	best := Result{Type: reftables.None, RMSD: math.Inf(1)}
	for _, group := range groups {
		if group.n > len(order) {
			m.c.trace("ptm: skipping group n=%d, only %d neighbours available", group.n, len(order))
			continue
		}
		cand, ok := m.matchGroup(rel, order, group)
		if ok && cand.RMSD < best.RMSD {
			best = cand
		}
	}

	if best.Type == reftables.None {
		return best
	}

	if best.Type == reftables.SC || best.Type == reftables.FCC || best.Type == reftables.BCC {
		m.canonicaliseCubic(&best)
	}

	fullMapping := make([]int, len(best.Mapping)+1)
	fullMapping[0] = 0
	for i, origIdx := range best.Mapping {
		fullMapping[i+1] = origIdx
	}
	best.Mapping = fullMapping

	if settings.deform {
		m.computeDeformation(&best, rel)
	}
	if settings.alloyCls && cloud.Species != nil {
		best.AlloyType = m.c.lookup.Classify(best.Mapping, cloud.Species, best.Type)
	}

	return best
}

func relativeNeighbours(points [][3]float64) [][3]float64 {
	if len(points) < 2 {
		return nil
	}
	centre := points[0]
	rel := make([][3]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		rel[i-1] = sub3(points[i], centre)
	}
	return rel
}

func identityOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// matchGroup tries every template in group against one shared hull over
// rel[order][:group.n], returning the best match found (in cloud-relative
// vertex index space: Mapping entries are indices into rel, not original
// cloud indices, and Mapping itself corresponds to a single template's
// neighbour ordering).
func (m *Matcher) matchGroup(rel [][3]float64, order []int, group templateGroup) (Result, bool) {
	n := group.n
	observed := make([][3]float64, n)
	origIdx := make([]int, n)
	unit := make([][3]float64, n)
	for i := 0; i < n; i++ {
		v := rel[order[i]]
		observed[i] = v
		origIdx[i] = order[i] + 1
		unit[i] = normalize3(v)
	}

	var facets [][3]int
	var degrees []int
	built := false

	best := Result{Type: reftables.None, RMSD: math.Inf(1)}
	found := false

	for _, typ := range group.types {
		tpl, err := reftables.Get(typ)
		if err != nil {
			m.c.trace("ptm: reftables.Get(%s) failed: %v", typ, err)
			continue
		}

		if !built {
			facets, err = hull.Build(unit, tpl.NumFacets)
			if err != nil {
				m.c.trace("ptm: hull build failed for group n=%d: %v", n, err)
				return best, false
			}
			degrees = vertexDegrees(facets, n)
			built = true
		}

		if !degreeAcceptable(degrees, typ, tpl.MaxDegree) {
			m.c.trace("ptm: %s rejected, vertex degree violates bound %d", typ, tpl.MaxDegree)
			continue
		}

		result := canon.Form(facets, n)

		for _, graph := range tpl.Graphs {
			if graph.Hash != result.Hash {
				continue
			}
			base := baseCorrespondence(result, graph)
			cand, ok := bestOverAutomorphisms(tpl, graph, base, observed)
			if !ok {
				continue
			}
			cand.Mapping = toOriginalIndices(cand.Mapping, origIdx)
			cand.Type = typ
			if cand.RMSD < best.RMSD {
				best = cand
				found = true
			}
		}
	}

	return best, found
}

// vertexDegrees counts, for each of the n observed vertices, the number of
// distinct neighbours it has in the hull's facet-adjacency graph (an edge
// between two vertices exists if some facet joins them).
func vertexDegrees(facets [][3]int, n int) []int {
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	link := func(a, b int) {
		adj[a][b] = struct{}{}
		adj[b][a] = struct{}{}
	}
	for _, f := range facets {
		link(f[0], f[1])
		link(f[1], f[2])
		link(f[2], f[0])
	}
	degrees := make([]int, n)
	for i, nbrs := range adj {
		degrees[i] = len(nbrs)
	}
	return degrees
}

// degreeAcceptable reports whether degrees satisfies typ's bound, mirroring
// the reference matcher's graph_degree checks: general templates reject a
// candidate whose adjacency graph has any vertex exceeding maxDegree, while
// simple cubic additionally requires every vertex degree to be exactly 4
// (a valid SC neighbourhood shell is 4-regular, not merely degree-bounded).
func degreeAcceptable(degrees []int, typ reftables.TemplateType, maxDegree int) bool {
	for _, d := range degrees {
		if typ == reftables.SC {
			if d != 4 {
				return false
			}
			continue
		}
		if d > maxDegree {
			return false
		}
	}
	return true
}

// baseCorrespondence derives, for each observed vertex v, the ideal
// template vertex u occupying the same canonical position: two isomorphic
// canonical forms assign equal canonical positions to corresponding
// vertices, so inverting both labellings and composing gives the
// correspondence directly.
func baseCorrespondence(observed canon.Result, graph reftables.ReferenceGraph) []int {
	n := len(observed.Labelling)
	invTemplate := invertPermutation(graph.Canonical)
	base := make([]int, n)
	for v := 0; v < n; v++ {
		pos := observed.Labelling[v]
		base[v] = invTemplate[pos]
	}
	return base
}

func invertPermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

// bestOverAutomorphisms tries every graph automorphism composed with base,
// solving the rigid alignment each time and keeping the lowest-RMSD
// result. Mapping in the returned Result is expressed over observed vertex
// indices 0..n-1 (not yet translated to original cloud indices).
func bestOverAutomorphisms(tpl *reftables.Template, graph reftables.ReferenceGraph, base []int, observed [][3]float64) (Result, bool) {
	n := len(base)
	ideal := tpl.Points[1:]
	g1 := sumSq(ideal)
	g2 := sumSq(observed)

	best := Result{RMSD: math.Inf(1)}
	found := false

	for _, auto := range graph.Automorphisms {
		candidate := make([]int, n) // candidate[v] = template position
		for v := 0; v < n; v++ {
			candidate[v] = auto[base[v]]
		}
		mapping := invertPermutation(candidate) // mapping[u] = observed vertex v

		res := align.Solve(ideal, observed, mapping, g1, g2)
		if res.RMSD < best.RMSD {
			best = Result{
				Quat:    res.Quat,
				Scale:   res.Scale,
				RMSD:    res.RMSD,
				Mapping: mapping,
			}
			found = true
		}
	}
	return best, found
}

func toOriginalIndices(mapping []int, origIdx []int) []int {
	out := make([]int, len(mapping))
	for i, v := range mapping {
		out[i] = origIdx[v]
	}
	return out
}

func sumSq(points [][3]float64) float64 {
	var s float64
	for _, p := range points {
		s += p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
	}
	return s
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func normalize3(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n < 1e-300 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// canonicaliseCubic rotates best.Quat into the cubic fundamental zone and
// re-permutes best.Mapping (still in original-cloud-index space) to match,
// following the same convention the reference orchestrator uses: the
// fundamental-zone mapping tables are applied once, before any downstream
// deformation-gradient or alloy computation, so every later step operates
// on the canonicalised correspondence.
func (m *Matcher) canonicaliseCubic(match *Result) {
	rotated, gen := quat.RotateIntoCubicZone(match.Quat)
	var table reftables.CubicMapping
	switch match.Type {
	case reftables.SC:
		table = reftables.SCCubicMapping
	case reftables.FCC:
		table = reftables.FCCCubicMapping
	case reftables.BCC:
		table = reftables.BCCCubicMapping
	default:
		return
	}
	match.Quat = rotated
	match.CubicGenerator = gen
	match.Mapping = applyCubicMapping(match.Mapping, table[gen])
}

// applyCubicMapping permutes a 0-based (template-neighbour-index ->
// observed value) mapping according to row, a 1-based (position 0 is the
// fixed centre) fundamental-zone table row: row[j] names the position the
// value currently at position j belongs at.
func applyCubicMapping(mapping []int, row []int) []int {
	n := len(mapping)
	orig := make([]int, n+1)
	for pos := 1; pos <= n; pos++ {
		orig[pos] = mapping[pos-1]
	}
	permuted := make([]int, n+1)
	for pos := 0; pos <= n; pos++ {
		permuted[row[pos]] = orig[pos]
	}
	out := make([]int, n)
	for pos := 1; pos <= n; pos++ {
		out[pos-1] = permuted[pos]
	}
	return out
}

// computeDeformation fits the deformation gradient of a winning match
// using the template's precomputed Penrose helper, then polar-decomposes
// it. rel is indexed by the same order-relative vertex space best.Mapping
// (pre-fullMapping-expansion) was computed over; since Mapping has already
// been expanded to a 1-based (centre-first) original-cloud-index array by
// the time this runs, observed vectors are recovered via rel[mapping-1].
func (m *Matcher) computeDeformation(match *Result, rel [][3]float64) {
	tpl, err := reftables.Get(match.Type)
	if err != nil {
		return
	}
	n := tpl.NumNbrs
	ideal := tpl.Points[1:]
	scaled := make([][3]float64, len(rel))
	for i, v := range rel {
		scaled[i] = [3]float64{match.Scale * v[0], match.Scale * v[1], match.Scale * v[2]}
	}
	fitMapping := make([]int, n)
	for i := 0; i < n; i++ {
		fitMapping[i] = match.Mapping[i+1] - 1
	}

	f, fres, err := m.c.solver.Fit(ideal, fitMapping, scaled, tpl.Penrose)
	if err != nil {
		m.c.trace("ptm: deformation fit failed: %v", err)
		return
	}
	match.F = f
	match.FRes = fres

	p, u, err := m.c.polar.Decompose(f)
	if err != nil {
		m.c.trace("ptm: polar decomposition failed: %v", err)
		return
	}
	match.P = p
	match.U = u
}
