package ephemeris

import (
	"errors"
	"math"
	"time"

	"github.com/woozymasta/astrotopo/internal/geo"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// ErrDegenerate is returned when a point coincides with the observer.
var ErrDegenerate = errors.New("position is undefined for this observer")

// view is one topocentric observation.
type view struct {
	ra   unit.RA
	dec  unit.Angle
	dist float64 // AU
	az   float64 // radians
	el   float64 // radians
}

// julianDay converts a time into a Julian day number (UT).
func julianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// precess rotates a J2000 ecliptic vector to the equinox of date, using the
// general precession in longitude and ignoring the motion of the ecliptic.
func precess(v vec3, jd float64) vec3 {
	t := (jd - j2000) / 36525
	s, c := unit.AngleFromDeg(1.3969713*t + 0.0003086*t*t).Sincos()

	return vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// toEquatorial rotates an ecliptic vector into the equatorial frame using the
// mean obliquity of date.
func toEquatorial(v vec3, jd float64) vec3 {
	s, c := nutation.MeanObliquity(jd).Sincos()

	return vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// observe reduces a geocentric equatorial vector (AU) to the observer's
// position on the surface. go-satellite works in kilometres, radians and an
// ECI frame aligned with the equator of date.
func observe(geocentric vec3, loc geo.Location, jd float64) (view, error) {
	ll := satellite.LatLong{Latitude: loc.Lat.Rad(), Longitude: loc.Lon.Rad()}
	altKm := loc.Alt / 1000

	target := satellite.Vector3{
		X: geocentric.X * auKm,
		Y: geocentric.Y * auKm,
		Z: geocentric.Z * auKm,
	}
	obs := satellite.LLAToECI(ll, altKm, jd)

	rel := vec3{X: target.X - obs.X, Y: target.Y - obs.Y, Z: target.Z - obs.Z}
	rng := rel.norm()
	if rng == 0 || !rel.finite() {
		return view{}, ErrDegenerate
	}

	look := satellite.ECIToLookAngles(target, ll, altKm, jd)

	return view{
		ra:   unit.RAFromRad(math.Atan2(rel.Y, rel.X)),
		dec:  unit.Angle(math.Asin(rel.Z / rng)),
		dist: rng / auKm,
		az:   look.Az,
		el:   look.El,
	}, nil
}
