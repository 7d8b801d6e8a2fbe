package main

import (
	"fmt"
	"os"

	"github.com/mrvn/screwmesh/screw"
	"gopkg.in/yaml.v3"
)

// paramsFile mirrors screw.Params for YAML parameter files. The profile
// is a list of [fraction, radius] pairs; when omitted the trapezoidal
// default derived from the radii is used.
type paramsFile struct {
	Length        float64      `yaml:"length"`
	Pitch         float64      `yaml:"pitch"`
	MinorRadius   float64      `yaml:"minor_radius"`
	MajorRadius   float64      `yaml:"major_radius"`
	Profile       [][2]float64 `yaml:"profile"`
	LeadInStart   float64      `yaml:"lead_in_start"`
	LeadInEnd     float64      `yaml:"lead_in_end"`
	LeadOutStart  float64      `yaml:"lead_out_start"`
	LeadOutEnd    float64      `yaml:"lead_out_end"`
	Facets        int          `yaml:"facets"`
	RotationPhase float64      `yaml:"rotation_phase"`
}

// loadParams merges the YAML file at path over p. Fields absent from the
// file keep their current value.
func loadParams(path string, p *screw.Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f := paramsFile{
		Length:        p.Length,
		Pitch:         p.Pitch,
		MinorRadius:   p.MinorRadius,
		MajorRadius:   p.MajorRadius,
		LeadInStart:   p.LeadInStart,
		LeadInEnd:     p.LeadInEnd,
		LeadOutStart:  p.LeadOutStart,
		LeadOutEnd:    p.LeadOutEnd,
		Facets:        p.Facets,
		RotationPhase: p.RotationPhase,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	p.Length = f.Length
	p.Pitch = f.Pitch
	p.MinorRadius = f.MinorRadius
	p.MajorRadius = f.MajorRadius
	p.LeadInStart = f.LeadInStart
	p.LeadInEnd = f.LeadInEnd
	p.LeadOutStart = f.LeadOutStart
	p.LeadOutEnd = f.LeadOutEnd
	p.Facets = f.Facets
	p.RotationPhase = f.RotationPhase
	if len(f.Profile) > 0 {
		profile := make(screw.Profile, len(f.Profile))
		for i, pt := range f.Profile {
			profile[i] = screw.ControlPoint{Frac: pt[0], Radius: pt[1]}
		}
		p.Profile = profile
	}
	return nil
}
