// SPDX-License-Identifier: MIT
package reftables

import (
	"errors"
	"sync"

	"github.com/katalvlaran/ptm/canon"
	"github.com/katalvlaran/ptm/hull"
	"github.com/katalvlaran/ptm/matrix"
)

// ErrNotInitialized indicates Get was called and initialisation failed;
// callers should treat this as a fatal configuration error, never a
// retriable one, since the ideal point tables are fixed data.
var ErrNotInitialized = errors.New("reftables: initialisation failed")

var (
	once      sync.Once
	templates map[TemplateType]*Template
	initErr   error
)

// Init builds every reference template exactly once. Safe to call from
// multiple goroutines and multiple times; only the first call does work.
func Init() error {
	once.Do(func() {
		templates, initErr = buildAll()
	})
	return initErr
}

// Get returns the reference template for t, triggering Init lazily on
// first use. Returns ErrNotInitialized wrapping the underlying cause if
// construction failed.
func Get(t TemplateType) (*Template, error) {
	if err := Init(); err != nil {
		return nil, errors.Join(ErrNotInitialized, err)
	}
	tpl, ok := templates[t]
	if !ok {
		return nil, ErrNotInitialized
	}
	return tpl, nil
}

type spec struct {
	typ       TemplateType
	numFacets int
	maxDegree int
	points    func() [][3]float64
}

func specs() []spec {
	return []spec{
		{SC, 8, 4, scPoints},
		{FCC, 20, 6, fccPoints},
		{HCP, 20, 6, hcpPoints},
		{ICO, 20, 6, icoPoints},
		{BCC, 24, 8, bccPoints},
	}
}

func buildAll() (map[TemplateType]*Template, error) {
	out := make(map[TemplateType]*Template, len(specs()))
	for _, s := range specs() {
		tpl, err := build(s)
		if err != nil {
			return nil, err
		}
		out[s.typ] = tpl
	}
	return out, nil
}

func build(s spec) (*Template, error) {
	points := s.points()
	n := len(points) - 1

	// The centre (origin) is strictly interior to the shell and never
	// part of its own convex hull, so the hull is built directly over
	// the shell points; canon.Form then operates on the same 0-based
	// neighbour indices hull.Build already uses.
	nbrs := points[1:]
	facets, err := hull.Build(nbrs, s.numFacets)
	if err != nil {
		return nil, err
	}

	result := canon.Form(facets, n)
	graph := ReferenceGraph{
		TemplateType:  s.typ,
		Facets:        facets,
		Canonical:     result.Labelling,
		Hash:          result.Hash,
		Automorphisms: result.Automorphisms,
	}

	penrose, err := ComputePenrose(nbrs)
	if err != nil {
		return nil, err
	}

	return &Template{
		Type:      s.typ,
		NumNbrs:   n,
		NumFacets: s.numFacets,
		MaxDegree: s.maxDegree,
		Points:    points,
		Penrose:   penrose,
		Graphs:    []ReferenceGraph{graph},
	}, nil
}

// ComputePenrose builds the Moore-Penrose helper for a set of ideal
// neighbour points: penrose[i] = G^-1 * ideal[i], where G is the 3x3
// Gram matrix sum_i outer(ideal_i, ideal_i). This is exactly the
// per-point row of the pseudoinverse of the 3xN ideal-point matrix,
// precomputed once so package deform's Fit only needs a per-query
// cross-correlation accumulation.
func ComputePenrose(ideal [][3]float64) ([][3]float64, error) {
	gram, err := matrix.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	for _, p := range ideal {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cur, _ := gram.At(i, j)
				if err := gram.Set(i, j, cur+p[i]*p[j]); err != nil {
					return nil, err
				}
			}
		}
	}

	inv, err := matrix.Inverse(gram)
	if err != nil {
		return nil, err
	}

	penrose := make([][3]float64, len(ideal))
	for idx, p := range ideal {
		for i := 0; i < 3; i++ {
			var sum float64
			for j := 0; j < 3; j++ {
				invIj, _ := inv.At(i, j)
				sum += invIj * p[j]
			}
			penrose[idx][i] = sum
		}
	}
	return penrose, nil
}
