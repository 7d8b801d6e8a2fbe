package render_test

import (
	"io"
	"os"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/mrvn/screwmesh/internal/d3"
	"github.com/mrvn/screwmesh/render"
	"github.com/mrvn/screwmesh/screw"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"
)

const (
	// imgDelta a normalized imgDelta parameter to describe how close the matching
	// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
	imgDelta = 0
)

type viewConfig struct {
	// what position (point) to look at
	lookat r3.Vec
	// which way is up (direction)
	up r3.Vec
	// where the camera/eye located at (point)
	eyepos r3.Vec
	far    float64
	near   float64
}

// TestRenderedImageStable renders the reference screw twice and requires
// pixel-identical output. The whole pipeline from mesh construction to
// rasterized image is deterministic.
func TestRenderedImageStable(t *testing.T) {
	view := viewConfig{
		up:     r3.Vec{Z: 1},
		eyepos: d3.Elem(3),
		near:   1,
		far:    10,
	}
	const stlName = "test_screw.stl"
	png1 := "test_screw_1.png"
	png2 := "test_screw_2.png"
	screwToSTL(t, stlName)
	stlToPNG(t, stlName, png1, view)
	stlToPNG(t, stlName, png2, view)
	if !equalImages(t, png1, png2) {
		t.Error("repeated renders of the same screw produced different images")
	}
	if !t.Failed() {
		// If test has not failed we remove the generated STL and PNG files.
		os.Remove(stlName)
		os.Remove(png1)
		os.Remove(png2)
	}
}

func screwToSTL(t testing.TB, filename string) {
	p := screw.Default()
	p.Facets = 64
	m, err := screw.New(p)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(filename, render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
}

func stlToPNG(t testing.TB, stlName, outputname string, view viewConfig) {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)

	var (
		far    = view.far
		near   = view.near
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z) // camera position
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z) // view center position
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	err = fauxgl.SavePNG(outputname, image)
	if err != nil {
		t.Fatal(err)
	}
}

func equalImages(t *testing.T, png1, png2 string) bool {
	fp1, err := os.Open(png1)
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := os.Open(png2)
	if err != nil {
		t.Fatal(err)
	}
	b1, err := io.ReadAll(fp1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := io.ReadAll(fp2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}
