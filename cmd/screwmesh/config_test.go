package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrvn/screwmesh/screw"
)

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	err := os.WriteFile(path, []byte(`
length: 80
pitch: 8
facets: 48
profile:
  - [0, 4]
  - [0.5, 9]
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	p := screw.Default()
	if err := loadParams(path, &p); err != nil {
		t.Fatal(err)
	}
	if p.Length != 80 || p.Pitch != 8 || p.Facets != 48 {
		t.Errorf("file values not applied: %+v", p)
	}
	// Fields absent from the file keep their defaults.
	def := screw.Default()
	if p.MinorRadius != def.MinorRadius || p.LeadInStart != def.LeadInStart {
		t.Errorf("defaults not preserved: %+v", p)
	}
	want := screw.Profile{{Frac: 0, Radius: 4}, {Frac: 0.5, Radius: 9}}
	if len(p.Profile) != len(want) {
		t.Fatalf("profile has %d points, want %d", len(p.Profile), len(want))
	}
	for i := range want {
		if p.Profile[i] != want[i] {
			t.Errorf("profile point %d = %+v, want %+v", i, p.Profile[i], want[i])
		}
	}
	if _, err := screw.New(p); err != nil {
		t.Fatalf("merged parameters rejected: %v", err)
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	p := screw.Default()
	if err := loadParams(filepath.Join(t.TempDir(), "nope.yaml"), &p); err == nil {
		t.Fatal("expected error for missing file")
	}
}
