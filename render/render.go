// Package render streams screw meshes as triangles and encodes them in
// binary STL.
package render

import (
	"io"

	"github.com/mrvn/screwmesh/screw"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a triangle source read in the style of io.Reader.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}

// meshRenderer streams the faces of an indexed mesh.
type meshRenderer struct {
	mesh *screw.Mesh
	next int
}

// NewMeshRenderer returns a Renderer reading the triangles of m in face
// order. It returns io.EOF once all faces have been read.
func NewMeshRenderer(m *screw.Mesh) Renderer {
	return &meshRenderer{mesh: m}
}

func (r *meshRenderer) ReadTriangles(dst []r3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if r.next >= len(r.mesh.Faces) {
		return 0, io.EOF
	}
	for n < len(dst) && r.next < len(r.mesh.Faces) {
		f := r.mesh.Faces[r.next]
		dst[n] = r3.Triangle{
			r.mesh.Vertices[f[0]],
			r.mesh.Vertices[f[1]],
			r.mesh.Vertices[f[2]],
		}
		n++
		r.next++
	}
	return n, nil
}
