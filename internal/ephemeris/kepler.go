package ephemeris

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

const keplerMaxIter = 50

// ErrNoConvergence is returned when Kepler's equation cannot be solved.
var ErrNoConvergence = errors.New("kepler equation did not converge")

// eccentricAnomaly solves M = E - e sin E with Newton's method.
func eccentricAnomaly(e float64, m unit.Angle) (unit.Angle, error) {
	mr := math.Remainder(m.Rad(), 2*math.Pi)

	ea := mr
	if e > 0.8 {
		ea = math.Pi * math.Copysign(1, mr)
	}

	for i := 0; i < keplerMaxIter; i++ {
		s, c := math.Sincos(ea)
		d := (ea - e*s - mr) / (1 - e*c)
		ea -= d
		if math.Abs(d) < 1e-12 {
			return unit.Angle(ea), nil
		}
	}

	return 0, ErrNoConvergence
}

// trueAnomaly converts an eccentric anomaly into the true anomaly ν.
func trueAnomaly(e float64, ea unit.Angle) unit.Angle {
	s, c := math.Sincos(ea.Rad() / 2)
	return unit.Angle(2 * math.Atan2(math.Sqrt(1+e)*s, math.Sqrt(1-e)*c))
}

// radius returns the orbital distance at true anomaly ν.
func (el elements) radius(nu unit.Angle) float64 {
	return el.Axis * (1 - el.Ecc*el.Ecc) / (1 + el.Ecc*nu.Cos())
}

// at returns the ecliptic position, relative to the central body, of the
// point at true anomaly ν and signed distance r along that direction.
func (el elements) at(nu unit.Angle, r float64) vec3 {
	sn, cn := el.Node.Sincos()
	si, ci := el.Inc.Sincos()
	su, cu := (el.argPeri() + nu).Sincos()

	return vec3{
		X: r * (cn*cu - sn*su*ci),
		Y: r * (sn*cu + cn*su*ci),
		Z: r * (su * si),
	}
}

// bodyPosition places the body itself on its orbit.
func (el elements) bodyPosition() (vec3, error) {
	ea, err := eccentricAnomaly(el.Ecc, el.meanAnomaly())
	if err != nil {
		return vec3{}, err
	}

	nu := trueAnomaly(el.Ecc, ea)
	r := el.Axis * (1 - el.Ecc*math.Cos(ea.Rad()))

	return el.at(nu, r), nil
}

func (el elements) periapsis() vec3 {
	return el.at(0, el.Axis*(1-el.Ecc))
}

func (el elements) apoapsis() vec3 {
	return el.at(unit.Angle(math.Pi), el.Axis*(1+el.Ecc))
}

// secondFocus is the empty focus, 2ae from the central body away from periapsis.
func (el elements) secondFocus() vec3 {
	return el.at(0, -2*el.Axis*el.Ecc)
}

// ascNode is where the orbit crosses the reference plane northward (u = 0).
func (el elements) ascNode() vec3 {
	nu := -el.argPeri()
	return el.at(nu, el.radius(nu))
}

// dscNode is where the orbit crosses the reference plane southward (u = π).
func (el elements) dscNode() vec3 {
	nu := unit.Angle(math.Pi) - el.argPeri()
	return el.at(nu, el.radius(nu))
}
