package ephemeris

import (
	"math"
	"sort"
	"strings"

	"github.com/soniakeys/unit"
)

const (
	j2000 = 2451545.0 // JD of the J2000.0 epoch

	auKm          = 149597870.7
	earthRadiusKm = 6378.14
)

// elements is a Keplerian orbit at one instant. Angles are ecliptic longitudes
// measured from the equinox, as in the JPL approximate element tables.
type elements struct {
	Axis float64    // semi-major axis a, AU
	Ecc  float64    // eccentricity e
	Inc  unit.Angle // inclination i
	Node unit.Angle // longitude of the ascending node Ω
	Peri unit.Angle // longitude of periapsis ϖ
	Lon  unit.Angle // mean longitude L
}

// argPeri returns the argument of periapsis ω = ϖ - Ω.
func (el elements) argPeri() unit.Angle {
	return (el.Peri - el.Node).Mod1()
}

// meanAnomaly returns M = L - ϖ.
func (el elements) meanAnomaly() unit.Angle {
	return (el.Lon - el.Peri).Mod1()
}

// keplerian holds J2000 element values (degrees, AU) and their rates per Julian century.
type keplerian struct {
	a, e, i, l, peri, node       float64
	da, de, di, dl, dperi, dnode float64
}

func (k keplerian) at(jd float64) elements {
	t := (jd - j2000) / 36525

	return elements{
		Axis: k.a + k.da*t,
		Ecc:  k.e + k.de*t,
		Inc:  unit.AngleFromDeg(k.i + k.di*t),
		Node: unit.AngleFromDeg(k.node + k.dnode*t).Mod1(),
		Peri: unit.AngleFromDeg(k.peri + k.dperi*t).Mod1(),
		Lon:  unit.AngleFromDeg(k.l + k.dl*t).Mod1(),
	}
}

// JPL "Keplerian Elements for Approximate Positions of the Major Planets",
// table 1 (valid 1800 AD - 2050 AD), mean ecliptic and equinox of J2000.
var (
	mercury = keplerian{
		0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
	}
	venus = keplerian{
		0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
	}
	earthMoonBary = keplerian{
		1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0,
	}
	mars = keplerian{
		1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
	}
	jupiter = keplerian{
		5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
	}
	saturn = keplerian{
		9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
	}
	uranus = keplerian{
		19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589,
	}
	neptune = keplerian{
		30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664,
	}
	pluto = keplerian{
		39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
		-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482,
	}
)

// sunElements is the apparent geocentric orbit of the Sun: the Earth's orbit
// seen from the other focus, i.e. rotated half a turn.
func sunElements(jd float64) elements {
	el := earthMoonBary.at(jd)
	el.Peri = (el.Peri + unit.Angle(math.Pi)).Mod1()
	el.Lon = (el.Lon + unit.Angle(math.Pi)).Mod1()
	return el
}

// moonElements returns mean geocentric lunar elements (ecliptic of date).
// Node and perigee regress and advance with their mean rates.
func moonElements(jd float64) elements {
	d := jd - 2451543.5

	node := 125.1228 - 0.0529538083*d
	argPeri := 318.0634 + 0.1643573223*d
	m := 115.3654 + 13.0649929509*d

	return elements{
		Axis: 60.2666 * earthRadiusKm / auKm,
		Ecc:  0.054900,
		Inc:  unit.AngleFromDeg(5.1454),
		Node: unit.AngleFromDeg(node).Mod1(),
		Peri: unit.AngleFromDeg(node + argPeri).Mod1(),
		Lon:  unit.AngleFromDeg(node + argPeri + m).Mod1(),
	}
}

// center identifies the body an orbit is described around.
type center int

const (
	centerSun center = iota
	centerEarth
)

type body struct {
	name    string
	central center
	orbit   func(jd float64) elements
	// j2000 marks elements referred to the J2000 ecliptic rather than of date.
	j2000 bool
}

var bodies = map[string]*body{
	"sun":     {name: "Sun", central: centerEarth, orbit: sunElements, j2000: true},
	"moon":    {name: "Moon", central: centerEarth, orbit: moonElements},
	"mercury": {name: "Mercury", central: centerSun, orbit: mercury.at, j2000: true},
	"venus":   {name: "Venus", central: centerSun, orbit: venus.at, j2000: true},
	"mars":    {name: "Mars", central: centerSun, orbit: mars.at, j2000: true},
	"jupiter": {name: "Jupiter", central: centerSun, orbit: jupiter.at, j2000: true},
	"saturn":  {name: "Saturn", central: centerSun, orbit: saturn.at, j2000: true},
	"uranus":  {name: "Uranus", central: centerSun, orbit: uranus.at, j2000: true},
	"neptune": {name: "Neptune", central: centerSun, orbit: neptune.at, j2000: true},
	"pluto":   {name: "Pluto", central: centerSun, orbit: pluto.at, j2000: true},
}

func lookupBody(name string) (*body, bool) {
	b, ok := bodies[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// Bodies returns the names of the supported bodies in sorted order.
func Bodies() []string {
	names := make([]string, 0, len(bodies))
	for _, b := range bodies {
		names = append(names, b.name)
	}
	sort.Strings(names)
	return names
}
