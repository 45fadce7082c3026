// SPDX-License-Identifier: MIT
package neighbor

import (
	"errors"
	"math"
	"sort"
)

// MaxPoints bounds Workspace's fixed-size scratch arrays, matching the
// module-wide 19-point cloud cap (spec.md §4.4).
const MaxPoints = 19

// ErrEmptyCloud indicates Order was called with zero points.
// Usage: if errors.Is(err, ErrEmptyCloud) { /* caller bug, nothing to order */ }.
var ErrEmptyCloud = errors.New("neighbor: empty point cloud")

// ErrDegenerateAxis indicates the pivot point (index 0) has near-zero norm,
// so no azimuthal axis can be established.
// Usage: if errors.Is(err, ErrDegenerateAxis) { /* orchestrator falls back to identity ordering */ }.
var ErrDegenerateAxis = errors.New("neighbor: degenerate pivot axis")

// Workspace is the per-goroutine scratch handle described in spec.md §5's
// local_handle: acquired once per calling goroutine, reused across calls,
// and never shared across goroutines. It exists so Orderer implementations
// needing working memory (e.g. a Voronoi tessellation buffer) never
// allocate on the hot path.
type Workspace struct {
	angles [MaxPoints]float64
	order  [MaxPoints]int
}

// NewWorkspace allocates a scratch handle. Call once per goroutine that will
// invoke topological ordering and reuse it for every subsequent call.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Orderer reorders a neighbour cloud so structurally-equivalent neighbours
// land in consistent relative positions before hull/hash matching.
//
// Contract:
//   - points[i] for i>0 are neighbour vectors relative to the cloud centre;
//     points[0], if present, is conventionally the pivot used to establish
//     an ordering axis — implementations document their own convention.
//   - On error, the caller (package ptm) falls back to the identity
//     ordering per spec.md §7; Orderer implementations never panic.
type Orderer interface {
	Order(ws *Workspace, points [][3]float64) ([]int, error)
}

// Topological is the default Orderer: a deterministic azimuthal sweep
// around the axis defined by points[0], breaking ties by ascending index.
// It approximates the shape of a real topological/Voronoi-based ordering
// (bringing neighbours with similar angular position adjacent in the
// output) without requiring a full tessellation library.
var Topological Orderer = topologicalOrderer{}

type topologicalOrderer struct{}

func (topologicalOrderer) Order(ws *Workspace, points [][3]float64) ([]int, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyCloud
	}
	if n > MaxPoints {
		n = MaxPoints
	}

	axis := points[0]
	axisNorm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if axisNorm < 1e-12 {
		return nil, ErrDegenerateAxis
	}
	axis = [3]float64{axis[0] / axisNorm, axis[1] / axisNorm, axis[2] / axisNorm}

	up := [3]float64{0, 0, 1}
	if math.Abs(axis[2]) > 0.9 {
		up = [3]float64{1, 0, 0}
	}
	u := normalize(crossVec(axis, up))
	v := crossVec(axis, u)

	for i := 0; i < n; i++ {
		p := points[i]
		dotAxis := p[0]*axis[0] + p[1]*axis[1] + p[2]*axis[2]
		perp := [3]float64{p[0] - dotAxis*axis[0], p[1] - dotAxis*axis[1], p[2] - dotAxis*axis[2]}
		ws.angles[i] = math.Atan2(dotv(perp, v), dotv(perp, u))
		if ws.angles[i] < 0 {
			ws.angles[i] += 2 * math.Pi // sweep over [0, 2π) so on-axis points (angle 0) sort first
		}
		ws.order[i] = i
	}

	order := ws.order[:n]
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if ws.angles[a] != ws.angles[b] {
			return ws.angles[a] < ws.angles[b]
		}
		return a < b
	})

	out := make([]int, n)
	copy(out, order)
	return out, nil
}

func crossVec(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dotv(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(dotv(v, v))
	if n < 1e-300 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
