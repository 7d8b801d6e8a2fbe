package screw

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// sampler maps a (facet, slice) index pair onto the helical sweep of the
// thread profile. Facet i selects the angular position around the axis,
// slice z the position along the profile-by-loop sequence.
type sampler struct {
	profile Profile
	taper   taper
	pitch   float64
	facets  int
	np      int // control points per profile cycle
}

// axialRef is the reference position used for taper decisions. It ignores
// the profile's internal phase so that all points of one loop taper
// consistently instead of tracking the helical rise.
func (s sampler) axialRef(i, z int) float64 {
	loop := z / s.np
	return s.pitch * (float64(loop) + float64(i)/float64(s.facets) - 1)
}

// vertex returns the 3D position of facet i, slice z. z may equal the
// total slice count to sample the seam-closing duplicate of facet 0.
func (s sampler) vertex(i, z int) r3.Vec {
	pt := s.profile.At(z)
	loop := float64(z / s.np)
	h := s.pitch * (loop + pt.Frac + float64(i)/float64(s.facets) - 1)
	r := s.taper.radius(pt.Radius, s.axialRef(i, z))
	sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(s.facets))
	return r3.Vec{X: r * cos, Y: r * sin, Z: h}
}
