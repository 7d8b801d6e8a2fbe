package main

import (
	"fmt"
	"os"

	"github.com/mrvn/screwmesh/internal/d3"
	"github.com/mrvn/screwmesh/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display statistics about a generated STL file",
	Long:  "Show triangle count, bounding box, enclosed volume and surface area of a binary STL file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	fp, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening STL file: %v\n", err)
		os.Exit(1)
	}
	defer fp.Close()
	model, err := render.ReadSTL(fp)
	if model == nil && err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	bb := d3.Box{Min: model[0][0], Max: model[0][0]}
	var volume, area float64
	for _, tri := range model {
		for _, v := range tri {
			bb = bb.Include(v)
		}
		a, b, c := tri[0], tri[1], tri[2]
		volume += a.X*(b.Y*c.Z-c.Y*b.Z) - a.Y*(b.X*c.Z-c.X*b.Z) + a.Z*(b.X*c.Y-c.X*b.Y)
		area += 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
	}
	volume /= 6

	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Triangles: %d\n", len(model))
	fmt.Printf("Bounds min: (%.4g, %.4g, %.4g)\n", bb.Min.X, bb.Min.Y, bb.Min.Z)
	fmt.Printf("Bounds max: (%.4g, %.4g, %.4g)\n", bb.Max.X, bb.Max.Y, bb.Max.Z)
	fmt.Printf("Surface area: %.6g\n", area)
	fmt.Printf("Enclosed volume: %.6g\n", volume)
	fmt.Printf("Watertight: %t\n", watertight(model))
}

// watertight welds vertices by exact position and checks that every
// directed edge has exactly one opposite-facing partner. STL stores
// float32 coordinates, so shared vertices weld exactly.
func watertight(model []r3.Triangle) bool {
	weld := make(map[r3.Vec]int)
	id := func(v r3.Vec) int {
		i, ok := weld[v]
		if !ok {
			i = len(weld)
			weld[v] = i
		}
		return i
	}
	type edge struct{ a, b int }
	directed := make(map[edge]int)
	for _, tri := range model {
		v := [3]int{id(tri[0]), id(tri[1]), id(tri[2])}
		for k := 0; k < 3; k++ {
			directed[edge{v[k], v[(k+1)%3]}]++
		}
	}
	for e, n := range directed {
		if n != 1 || directed[edge{e.b, e.a}] != 1 {
			return false
		}
	}
	return true
}
