package binning

import "github.com/banshee-data/trackgeom/geom"

// Scheme is an ordered stack of 1 to 3 axes. Axis 0 is the
// fastest-varying grid dimension; the grid built from a scheme must use
// the same dimension order. An optional transform moves positions into
// the scheme's local frame before coordinates are derived (the inverse
// is applied, so the transform is "local frame -> global frame").
type Scheme struct {
	axes []Axis
	inv  *geom.Transform
}

// NewScheme builds a scheme from axes in fastest-varying-first order.
// trf may be nil when binning happens directly in the global frame.
func NewScheme(trf *geom.Transform, axes ...Axis) *Scheme {
	s := &Scheme{axes: axes}
	if trf != nil {
		inv := trf.Inverse()
		s.inv = &inv
	}
	return s
}

// Join appends the axes of o to s and returns s, keeping s's transform.
// This is how a phi scheme and a z scheme concatenate into one 2D scheme.
func (s *Scheme) Join(o *Scheme) *Scheme {
	s.axes = append(s.axes, o.axes...)
	return s
}

// NAxes returns the number of axes in the scheme.
func (s *Scheme) NAxes() int { return len(s.axes) }

// Axis returns the i-th axis.
func (s *Scheme) Axis(i int) Axis { return s.axes[i] }

// Shape returns the grid dimensions implied by the scheme, padded with
// size-1 dimensions up to three.
func (s *Scheme) Shape() [3]int {
	shape := [3]int{1, 1, 1}
	for i, a := range s.axes {
		shape[i] = a.Bins
	}
	return shape
}

// BinTriple classifies a 3D position into a bin triple. The optional
// inverse transform is applied first, then each axis derives its local
// coordinate and maps it to an index, wrapping or clamping per its
// boundary policy. Unused dimensions stay 0. The result is always a
// valid grid index.
func (s *Scheme) BinTriple(p geom.Vec) [3]int {
	if s.inv != nil {
		p = s.inv.Apply(p)
	}
	var triple [3]int
	for i, a := range s.axes {
		triple[i] = a.Index(a.Coordinate(p))
	}
	return triple
}
