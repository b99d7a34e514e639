package ephemeris

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestEccentricAnomaly(t *testing.T) {
	tests := []struct {
		e float64
		m float64
	}{
		{0, 1.2},
		{0.0167, 3.0},
		{0.2056, 0.5},
		{0.5, 5.5},
		{0.97, 0.1},
	}

	for _, tt := range tests {
		ea, err := eccentricAnomaly(tt.e, unit.Angle(tt.m))
		if err != nil {
			t.Fatalf("e=%v M=%v: %v", tt.e, tt.m, err)
		}

		got := ea.Rad() - tt.e*math.Sin(ea.Rad())
		want := math.Remainder(tt.m, 2*math.Pi)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("e=%v: E - e sin E = %v, want %v", tt.e, got, want)
		}
	}
}

func TestApsidesDistances(t *testing.T) {
	for _, k := range []keplerian{mercury, mars, jupiter, pluto} {
		el := k.at(j2000)

		if got, want := el.periapsis().norm(), el.Axis*(1-el.Ecc); math.Abs(got-want) > 1e-12 {
			t.Errorf("periapsis distance = %v, want %v", got, want)
		}
		if got, want := el.apoapsis().norm(), el.Axis*(1+el.Ecc); math.Abs(got-want) > 1e-12 {
			t.Errorf("apoapsis distance = %v, want %v", got, want)
		}
	}
}

func TestSecondFocusEllipseProperty(t *testing.T) {
	el := mars.at(2460371.5)

	p, err := el.bodyPosition()
	if err != nil {
		t.Fatal(err)
	}

	sum := p.norm() + p.sub(el.secondFocus()).norm()
	if math.Abs(sum-2*el.Axis) > 1e-9 {
		t.Errorf("sum of focal distances = %v, want %v", sum, 2*el.Axis)
	}

	if got, want := el.secondFocus().norm(), 2*el.Axis*el.Ecc; math.Abs(got-want) > 1e-12 {
		t.Errorf("focus separation = %v, want %v", got, want)
	}
}

func TestNodesOnReferencePlane(t *testing.T) {
	el := mars.at(j2000)

	asc, dsc := el.ascNode(), el.dscNode()
	if math.Abs(asc.Z) > 1e-12 || math.Abs(dsc.Z) > 1e-12 {
		t.Fatalf("nodes off the ecliptic: asc.Z=%v dsc.Z=%v", asc.Z, dsc.Z)
	}

	lon := unit.Angle(math.Atan2(asc.Y, asc.X)).Mod1()
	if math.Abs(lon.Rad()-el.Node.Rad()) > 1e-9 {
		t.Errorf("ascending node longitude = %v, want %v", lon.Deg(), el.Node.Deg())
	}

	// descending node lies opposite the ascending one
	dot := asc.X*dsc.X + asc.Y*dsc.Y
	if dot >= 0 {
		t.Errorf("nodes are not opposite: dot=%v", dot)
	}
}
