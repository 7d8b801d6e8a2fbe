// Package screw procedurally generates closed triangulated meshes of
// helically threaded rods.
//
// A screw is described by a small set of geometric parameters: axial
// length, thread pitch, minor and major radii, a cyclic 2D cross-section
// profile for the thread and optional lead-in/lead-out zones where the
// thread tapers smoothly down to the minor radius. The profile is swept
// along a helix, sampled at a fixed number of facets around the axis, and
// the open ends of the sweep are closed with cap fans so that the result
// is a watertight 2-manifold suitable for boolean operations downstream.
//
// The construction is a pure function of the parameters: no state
// survives between calls and no I/O happens.
package screw

import (
	"errors"
	"fmt"
	"math"

	"github.com/mrvn/screwmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Validation error categories. Errors returned by New wrap one of these
// and name the offending parameter.
var (
	// ErrInvalidGeometry reports a parameter set that cannot describe a
	// screw: non-positive pitch or length, fewer than 3 facets, fewer
	// than 2 profile points, or a negative radius.
	ErrInvalidGeometry = errors.New("screw: invalid geometry")
	// ErrInconsistentProfile reports profile fractions that are not
	// monotonically non-decreasing within one cycle. The helix closure
	// index arithmetic assumes monotonic phase within a loop.
	ErrInconsistentProfile = errors.New("screw: inconsistent profile")
)

// Params describes a threaded rod. The zero value is not usable; start
// from Default and override fields.
type Params struct {
	// Length is the axial length of the rod.
	Length float64
	// Pitch is the thread to thread distance.
	Pitch float64
	// MinorRadius is the root radius of the thread, the radius the
	// lead-in and lead-out zones taper to.
	MinorRadius float64
	// MajorRadius is the crest radius. Only used to derive the default
	// profile; a custom Profile may exceed it.
	MajorRadius float64
	// Profile is the cyclic thread cross-section. When nil the
	// trapezoidal default derived from MinorRadius and MajorRadius is
	// used; this dependent default is resolved by New after the scalar
	// parameters are known.
	Profile Profile
	// LeadInStart and LeadInEnd delimit the lead-in blending zone in
	// degrees of revolution from the bottom margin of the sweep.
	LeadInStart, LeadInEnd float64
	// LeadOutStart and LeadOutEnd delimit the lead-out blending zone in
	// degrees of revolution measured backwards from the rod's top end.
	LeadOutStart, LeadOutEnd float64
	// Facets is the resolved tessellation resolution: angular
	// subdivisions around the axis. Must be at least 3.
	Facets int
	// RotationPhase is an externally supplied animation angle in
	// degrees, applied to the finished mesh as a rigid rotation about
	// the rod axis.
	RotationPhase float64
}

// Default returns the reference parameter set: a 50 unit rod with pitch
// 10, thread between radius 5 and 10 and the standard lead-in/lead-out
// zones.
func Default() Params {
	return Params{
		Length:       50,
		Pitch:        10,
		MinorRadius:  5,
		MajorRadius:  10,
		LeadInStart:  270,
		LeadInEnd:    630,
		LeadOutStart: 720,
		LeadOutEnd:   360,
		Facets:       32,
	}
}

func (p Params) validate() error {
	switch {
	case p.Pitch <= 0 || math.IsNaN(p.Pitch):
		return fmt.Errorf("%w: pitch %g must be positive", ErrInvalidGeometry, p.Pitch)
	case p.Length <= 0 || math.IsNaN(p.Length):
		return fmt.Errorf("%w: length %g must be positive", ErrInvalidGeometry, p.Length)
	case p.Facets < 3:
		return fmt.Errorf("%w: need at least 3 facets, got %d", ErrInvalidGeometry, p.Facets)
	case p.MinorRadius < 0:
		return fmt.Errorf("%w: minor radius %g", ErrInvalidGeometry, p.MinorRadius)
	case p.MajorRadius < 0:
		return fmt.Errorf("%w: major radius %g", ErrInvalidGeometry, p.MajorRadius)
	}
	return p.Profile.validate()
}

// loops is the number of full profile cycles along the rod: enough to
// cover the length plus one extra pitch of margin at each end for the
// taper zones.
func (p Params) loops() int {
	return int(math.Floor(p.Length/p.Pitch)) + 2
}

// New builds the screw mesh for p. Construction either fully succeeds or
// fails validation before any vertex is generated; no partial mesh is
// ever returned.
func New(p Params) (*Mesh, error) {
	if p.Profile == nil {
		p.Profile = Trapezoid(p.MinorRadius, p.MajorRadius)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	np := len(p.Profile)
	slices := p.loops() * np
	smp := sampler{
		profile: p.Profile,
		taper:   newTaper(p),
		pitch:   p.Pitch,
		facets:  p.Facets,
		np:      np,
	}
	asm := assembler{facets: p.Facets, slices: slices, np: np}

	verts := make([]r3.Vec, p.Facets*slices+3)
	for i := 0; i < p.Facets; i++ {
		for z := 0; z < slices; z++ {
			verts[asm.pointIndex(i, z)] = smp.vertex(i, z)
		}
	}
	verts[asm.closing()] = smp.vertex(0, slices)
	verts[asm.bottomApex()] = r3.Vec{Z: -p.Pitch}
	verts[asm.topApex()] = r3.Vec{Z: p.Length + p.Pitch}

	m := &Mesh{
		Vertices:      verts,
		Faces:         asm.faces(),
		ConvexityHint: int(math.Floor(p.Length/p.Pitch)) + 3,
	}
	if p.RotationPhase != 0 {
		m.Transform(d3.RotateZ(p.RotationPhase * math.Pi / 180))
	}
	return m, nil
}
