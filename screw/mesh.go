package screw

import (
	"math"

	"github.com/mrvn/screwmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a closed triangulated surface: a vertex list and a triangle
// list indexing into it. Triangles are wound counterclockwise seen from
// outside.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
	// ConvexityHint advises consumers that decompose concave polyhedra
	// into convex pieces how many pieces to expect. Not required for
	// correctness.
	ConvexityHint int
}

// Triangles flattens the indexed faces into standalone triangles.
func (m *Mesh) Triangles() []r3.Triangle {
	tris := make([]r3.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = r3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return tris
}

// Transform applies t to every vertex in place.
func (m *Mesh) Transform(t d3.Transform) {
	for i, v := range m.Vertices {
		m.Vertices[i] = t.Transform(v)
	}
}

// Bounds returns the axis-aligned bounding box of the vertices referenced
// by faces. Vertices the face list never touches do not grow the box.
func (m *Mesh) Bounds() d3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for _, f := range m.Faces {
		for _, vi := range f {
			bb = bb.Include(m.Vertices[vi])
		}
	}
	return bb
}

// SignedVolume returns the volume enclosed by the mesh via the divergence
// theorem. Positive for a closed mesh with outward winding.
func (m *Mesh) SignedVolume() float64 {
	var vol float64
	for _, f := range m.Faces {
		a := m.Vertices[f[0]]
		b := m.Vertices[f[1]]
		c := m.Vertices[f[2]]
		vol += a.X*(b.Y*c.Z-c.Y*b.Z) - a.Y*(b.X*c.Z-c.X*b.Z) + a.Z*(b.X*c.Y-c.X*b.Y)
	}
	return vol / 6
}
