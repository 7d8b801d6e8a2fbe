package screw

// assembler emits the triangle list of the swept surface. The sweep is a
// ribbon over (facet, slice) space whose last facet rejoins facet 0 one
// profile cycle up; the seam where this wrap-around happens needs a few
// special-cased faces that the regular formulas cannot express without
// indexing past valid bounds. Each of those is kept as its own branch.
//
// All faces are wound counterclockwise seen from outside the rod.
type assembler struct {
	facets, slices, np int
}

// pointIndex maps facet i, slice z to a vertex index. Facet `facets` wraps
// to facet 0 one profile cycle up, which closes the helix into a tube:
// pointIndex(facets, z) == pointIndex(0, z+np).
func (a assembler) pointIndex(i, z int) int {
	return (i%a.facets)*a.slices + z + (i/a.facets)*a.np
}

// closing is the duplicate of facet 0 at slice `slices`, one past the last
// stored row. pointIndex cannot reach it without leaving the vertex grid.
func (a assembler) closing() int { return a.facets * a.slices }

func (a assembler) bottomApex() int { return a.facets*a.slices + 1 }
func (a assembler) topApex() int    { return a.facets*a.slices + 2 }

// faceCount is the exact number of triangles emitted by faces.
func (a assembler) faceCount() int {
	return 2*a.facets*(a.slices-a.np) + 2*a.facets + 2*a.np
}

func (a assembler) faces() [][3]int {
	faces := make([][3]int, 0, a.faceCount())
	faces = a.lateral(faces)
	faces = a.bottomCap(faces)
	faces = a.topCap(faces)
	return faces
}

// lateral emits two triangles per quad between adjacent facets and slices.
func (a assembler) lateral(faces [][3]int) [][3]int {
	top := a.slices - a.np
	for i := 0; i < a.facets; i++ {
		for z := 0; z < top; z++ {
			v00 := a.pointIndex(i, z)
			v01 := a.pointIndex(i, z+1)
			v10 := a.pointIndex(i+1, z)
			var v11 int
			if i == a.facets-1 && z == top-1 {
				// Seam: the upper right corner of the very last quad
				// sits one past the final loop. Route through the
				// closing duplicate instead.
				v11 = a.closing()
			} else {
				v11 = a.pointIndex(i+1, z+1)
			}
			faces = append(faces, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
		}
	}
	return faces
}

// bottomCap fans from the bottom apex around slice row 0, then closes the
// flat ramp the helix leaves exposed at the facet 0 seam.
func (a assembler) bottomCap(faces [][3]int) [][3]int {
	apex := a.bottomApex()
	for i := 0; i < a.facets; i++ {
		// pointIndex(facets, 0) wraps to facet 0 at slice np,
		// where the rim spiral hands over to the seam ramp.
		faces = append(faces, [3]int{apex, a.pointIndex(i+1, 0), a.pointIndex(i, 0)})
	}
	// Seam ramp: facet 0 slices 0..np and the apex are coplanar; fan the
	// polygon from the apex.
	for z := 0; z < a.np; z++ {
		faces = append(faces, [3]int{apex, a.pointIndex(0, z), a.pointIndex(0, z+1)})
	}
	return faces
}

// topCap mirrors bottomCap at the last full slice row.
func (a assembler) topCap(faces [][3]int) [][3]int {
	apex := a.topApex()
	row := a.slices - a.np
	for i := 0; i < a.facets-1; i++ {
		faces = append(faces, [3]int{apex, a.pointIndex(i, row), a.pointIndex(i+1, row)})
	}
	// Seam: the fan formula would reference pointIndex(facets, row), one
	// past the stored rows. Close the last facet against the duplicate
	// with an explicit triangle.
	faces = append(faces, [3]int{apex, a.pointIndex(a.facets-1, row), a.closing()})
	// Seam ramp at the top end, walked downward from the duplicate.
	prev := a.closing()
	for z := a.slices - 1; z >= row; z-- {
		faces = append(faces, [3]int{apex, prev, a.pointIndex(0, z)})
		prev = a.pointIndex(0, z)
	}
	return faces
}
