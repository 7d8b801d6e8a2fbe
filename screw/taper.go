package screw

// taper blends the thread radius toward the minor radius inside the
// lead-in and lead-out windows near the rod ends. Windows are stored as
// axial position intervals; lo <= hi always holds for valid parameters.
type taper struct {
	minor float64
	// lead-in window: minor radius at inLo, nominal at inHi.
	inLo, inHi float64
	// lead-out window: nominal radius at outLo, minor at outHi.
	outLo, outHi float64
}

// newTaper converts the angular lead offsets of p into axial windows.
// Lead-in angles are measured as revolutions from the bottom margin at
// -pitch, lead-out angles as revolutions backwards from the rod's top end.
func newTaper(p Params) taper {
	return taper{
		minor: p.MinorRadius,
		inLo:  -p.Pitch + p.Pitch*p.LeadInStart/360,
		inHi:  -p.Pitch + p.Pitch*p.LeadInEnd/360,
		outLo: p.Length - p.Pitch*p.LeadOutStart/360,
		outHi: p.Length - p.Pitch*p.LeadOutEnd/360,
	}
}

// radius returns the effective thread radius for a nominal profile radius
// at axial reference position x. Outside a window toward its end of the
// rod the thread is fully tapered to the minor radius; inside a window
// the radius is linearly interpolated. A zero width window cannot blend
// anything, so it disables the taper on its side entirely and every
// sample there keeps the nominal radius.
func (t taper) radius(nominal, x float64) float64 {
	switch {
	case x <= t.inHi:
		if t.inHi == t.inLo {
			return nominal
		}
		if x < t.inLo {
			return t.minor
		}
		return t.minor + (nominal-t.minor)*(x-t.inLo)/(t.inHi-t.inLo)
	case x >= t.outLo:
		if t.outHi == t.outLo {
			return nominal
		}
		if x > t.outHi {
			return t.minor
		}
		return nominal + (t.minor-nominal)*(x-t.outLo)/(t.outHi-t.outLo)
	}
	return nominal
}
