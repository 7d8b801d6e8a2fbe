package render_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/mrvn/screwmesh/render"
	"github.com/mrvn/screwmesh/screw"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const stlName = "screw.stl"
	p := screw.Default()
	p.Facets = 8
	m, err := screw.New(p)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(stlName, render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(stlName)
	fp, err := os.Open(stlName)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}
