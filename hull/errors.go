// SPDX-License-Identifier: MIT
package hull

import (
	"errors"
	"fmt"
)

// ErrDegenerateSeed indicates no four points among the input are non-coplanar,
// so no initial tetrahedron can be formed.
// Usage: if errors.Is(err, ErrDegenerateSeed) { /* abandon this template */ }.
var ErrDegenerateSeed = errors.New("hull: degenerate seed (no non-coplanar tetrahedron)")

// ErrTooFewFacets indicates the finished hull has fewer facets than the
// caller's expected count — some points never became hull vertices.
// Usage: if errors.Is(err, ErrTooFewFacets) { /* abandon this template */ }.
var ErrTooFewFacets = errors.New("hull: fewer facets than expected")

// ErrTooManyFacets indicates the finished hull has more facets than the
// caller's expected count — numerical drift produced spurious vertices on a
// near-coplanar region.
// Usage: if errors.Is(err, ErrTooManyFacets) { /* abandon this template */ }.
var ErrTooManyFacets = errors.New("hull: more facets than expected")

// hullErrorf wraps an inner error with an operation tag, mirroring
// matrixErrorf/builderErrorf's "<op>: <err>" convention.
func hullErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
