package render_test

import (
	"os"
	"testing"

	"github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/mrvn/screwmesh/render"
	"github.com/mrvn/screwmesh/screw"
)

const (
	benchQuality = 300
)

// BenchmarkSDFXBolt times the SDF-based thread generator this package's
// direct mesh construction is an alternative to.
func BenchmarkSDFXBolt(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_bolt.stl"
	object, _ := obj.Bolt(&obj.BoltParms{
		Thread:      "npt_1/2",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 20,
		ShankLength: 10,
	})
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkScrew(b *testing.B) {
	const output = "screw_bench.stl"
	p := screw.Default()
	p.Facets = benchQuality
	for i := 0; i < b.N; i++ {
		m, err := screw.New(p)
		if err != nil {
			b.Fatal(err)
		}
		render.CreateSTL(output, render.NewMeshRenderer(m))
	}
}
