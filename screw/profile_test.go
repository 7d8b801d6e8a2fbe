package screw

import (
	"errors"
	"math"
	"testing"
)

func TestProfileWrap(t *testing.T) {
	p := Trapezoid(5, 10)
	for k := 0; k < 3*len(p); k++ {
		if got, want := p.At(k), p[k%len(p)]; got != want {
			t.Errorf("At(%d) = %+v, want %+v", k, got, want)
		}
		want := p[k%len(p)].Frac + float64(k/len(p))
		if got := p.Unwrap(k); got != want {
			t.Errorf("Unwrap(%d) = %g, want %g", k, got, want)
		}
	}
}

func TestProfileReversed(t *testing.T) {
	p := Profile{
		{Frac: 0, Radius: 5},
		{Frac: 0.2, Radius: 6},
		{Frac: 0.5, Radius: 10},
		{Frac: 0.9, Radius: 7},
	}
	rev := p.Reversed()
	if err := rev.validate(); err != nil {
		t.Fatalf("reversed profile invalid: %v", err)
	}
	want := Profile{
		{Frac: 0, Radius: 5},
		{Frac: 0.1, Radius: 7},
		{Frac: 0.5, Radius: 10},
		{Frac: 0.8, Radius: 6},
	}
	for k := range rev {
		if math.Abs(rev[k].Frac-want[k].Frac) > 1e-12 || rev[k].Radius != want[k].Radius {
			t.Errorf("Reversed()[%d] = %+v, want %+v", k, rev[k], want[k])
		}
	}
	twice := rev.Reversed()
	for k := range twice {
		if math.Abs(twice[k].Frac-p[k].Frac) > 1e-12 || twice[k].Radius != p[k].Radius {
			t.Errorf("double reversal changed point %d: got %+v, want %+v", k, twice[k], p[k])
		}
	}
}

func TestProfileValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		profile Profile
		want    error
	}{
		{
			name:    "trapezoid ok",
			profile: Trapezoid(5, 10),
		},
		{
			name:    "vshape ok",
			profile: VShape(5, 10),
		},
		{
			name:    "single point",
			profile: Profile{{Frac: 0, Radius: 5}},
			want:    ErrInvalidGeometry,
		},
		{
			name:    "negative radius",
			profile: Profile{{Frac: 0, Radius: 5}, {Frac: 0.5, Radius: -1}},
			want:    ErrInvalidGeometry,
		},
		{
			name:    "nan radius",
			profile: Profile{{Frac: 0, Radius: math.NaN()}, {Frac: 0.5, Radius: 10}},
			want:    ErrInvalidGeometry,
		},
		{
			name:    "fraction at 1",
			profile: Profile{{Frac: 0, Radius: 5}, {Frac: 1, Radius: 10}},
			want:    ErrInconsistentProfile,
		},
		{
			name:    "negative fraction",
			profile: Profile{{Frac: -0.1, Radius: 5}, {Frac: 0.5, Radius: 10}},
			want:    ErrInconsistentProfile,
		},
		{
			name:    "decreasing fraction",
			profile: Profile{{Frac: 0, Radius: 5}, {Frac: 0.6, Radius: 10}, {Frac: 0.3, Radius: 7}},
			want:    ErrInconsistentProfile,
		},
	} {
		err := test.profile.validate()
		if test.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.want)
		}
	}
}
