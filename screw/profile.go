package screw

import (
	"fmt"
	"math"
)

// ControlPoint is one point of the cyclic 2D thread cross-section.
// Frac is the axial phase within one pitch period and Radius the distance
// from the rod axis at that phase.
type ControlPoint struct {
	// Frac is the axial fraction of the pitch, in [0,1).
	Frac float64
	// Radius is the profile radius at Frac. Must be finite and >= 0.
	Radius float64
}

// Profile is the cyclic thread cross-section: an ordered sequence of
// control points covering one pitch period. Control point k and k+len(p)
// describe the same point shifted by one full pitch.
type Profile []ControlPoint

// At returns control point k with index arithmetic wrapping modulo the
// profile length. k must be non-negative.
func (p Profile) At(k int) ControlPoint {
	return p[k%len(p)]
}

// Unwrap returns the absolute axial phase of control point k, counting
// whole pitch periods: At(k).Frac + floor(k/len(p)).
func (p Profile) Unwrap(k int) float64 {
	return p[k%len(p)].Frac + float64(k/len(p))
}

// Trapezoid returns the default four point trapezoidal thread profile
// spanning minor to major radius, half a period at each.
func Trapezoid(minor, major float64) Profile {
	return Profile{
		{Frac: 0, Radius: minor},
		{Frac: 0.25, Radius: minor},
		{Frac: 0.5, Radius: major},
		{Frac: 0.75, Radius: major},
	}
}

// VShape returns a two point triangular thread profile. The flanks run the
// full half period between minor and major radius.
func VShape(minor, major float64) Profile {
	return Profile{
		{Frac: 0, Radius: minor},
		{Frac: 0.5, Radius: major},
	}
}

// Reversed returns the profile flipped along the axial direction, keeping
// point 0 at phase 0. Used to build the mirror image of a thread.
func (p Profile) Reversed() Profile {
	rev := make(Profile, len(p))
	rev[0] = p[0]
	for k := 1; k < len(p); k++ {
		q := p[len(p)-k]
		rev[k] = ControlPoint{Frac: 1 - q.Frac, Radius: q.Radius}
	}
	return rev
}

func (p Profile) validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: profile needs at least 2 control points, got %d", ErrInvalidGeometry, len(p))
	}
	prev := math.Inf(-1)
	for k, pt := range p {
		if math.IsNaN(pt.Radius) || math.IsInf(pt.Radius, 0) || pt.Radius < 0 {
			return fmt.Errorf("%w: profile radius %g at point %d", ErrInvalidGeometry, pt.Radius, k)
		}
		if pt.Frac < 0 || pt.Frac >= 1 {
			return fmt.Errorf("%w: fraction %g at point %d outside [0,1)", ErrInconsistentProfile, pt.Frac, k)
		}
		if pt.Frac < prev {
			return fmt.Errorf("%w: fraction %g at point %d decreases", ErrInconsistentProfile, pt.Frac, k)
		}
		prev = pt.Frac
	}
	return nil
}
