// Package ephemeris computes topocentric equatorial positions of solar
// system bodies and of points derived from their orbits.
//
// Orbits are mean Keplerian elements, so results are good to a fraction of a
// degree for the planets within 1800-2050 and somewhat worse for the Moon.
package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/woozymasta/astrotopo/internal/geo"
)

// speedStep is the half-width of the central difference used for speeds, in days.
const speedStep = 1.0 / 24

// ErrUnknownBody is returned for names that do not identify a supported body.
var ErrUnknownBody = errors.New("unknown celestial body")

// Kind is the sort of point an Object tracks.
type Kind int

// Supported kinds.
const (
	KindPlanet Kind = iota
	KindSecondFocus
	KindApoApsis
	KindPeriApsis
	KindAscNode
	KindDscNode
)

func (k Kind) String() string {
	switch k {
	case KindPlanet:
		return "planet"
	case KindSecondFocus:
		return "second-focus"
	case KindApoApsis:
		return "apoapsis"
	case KindPeriApsis:
		return "periapsis"
	case KindAscNode:
		return "asc-node"
	case KindDscNode:
		return "dsc-node"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Object is a body or an orbital point that can be observed from the ground.
// Implementations are stateless and safe for concurrent use.
type Object interface {
	Name() string
	Kind() Kind
	EquatorSpeed(t time.Time, loc geo.Location) (Coordinates, error)
}

type object struct {
	body *body
	kind Kind
}

func newObject(name string, kind Kind) (Object, error) {
	b, ok := lookupBody(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}

	return &object{body: b, kind: kind}, nil
}

// NewPlanet tracks the body itself.
func NewPlanet(name string) (Object, error) { return newObject(name, KindPlanet) }

// NewSecondFocus tracks the empty focus of the body's orbit.
func NewSecondFocus(name string) (Object, error) { return newObject(name, KindSecondFocus) }

// NewApoApsis tracks the farthest point of the body's orbit.
func NewApoApsis(name string) (Object, error) { return newObject(name, KindApoApsis) }

// NewPeriApsis tracks the nearest point of the body's orbit.
func NewPeriApsis(name string) (Object, error) { return newObject(name, KindPeriApsis) }

// NewAscNode tracks the ascending node of the body's orbit.
func NewAscNode(name string) (Object, error) { return newObject(name, KindAscNode) }

// NewDscNode tracks the descending node of the body's orbit.
func NewDscNode(name string) (Object, error) { return newObject(name, KindDscNode) }

func (o *object) Name() string { return o.body.name }

func (o *object) Kind() Kind { return o.kind }

// ecliptic returns the geocentric ecliptic position of the tracked point.
func (o *object) ecliptic(jd float64) (vec3, error) {
	el := o.body.orbit(jd)

	var p vec3
	switch o.kind {
	case KindPlanet:
		var err error
		if p, err = el.bodyPosition(); err != nil {
			return vec3{}, err
		}
	case KindSecondFocus:
		p = el.secondFocus()
	case KindApoApsis:
		p = el.apoapsis()
	case KindPeriApsis:
		p = el.periapsis()
	case KindAscNode:
		p = el.ascNode()
	case KindDscNode:
		p = el.dscNode()
	default:
		return vec3{}, fmt.Errorf("unsupported kind %s", o.kind)
	}

	if o.body.central == centerEarth {
		return p, nil
	}

	earth, err := earthMoonBary.at(jd).bodyPosition()
	if err != nil {
		return vec3{}, err
	}

	return p.sub(earth), nil
}

func (o *object) view(jd float64, loc geo.Location) (view, error) {
	ecl, err := o.ecliptic(jd)
	if err != nil {
		return view{}, err
	}

	if o.body.j2000 {
		ecl = precess(ecl, jd)
	}

	return observe(toEquatorial(ecl, jd), loc, jd)
}

// EquatorSpeed returns the topocentric equatorial coordinates at t together
// with their rates, estimated by a central difference over two hours.
func (o *object) EquatorSpeed(t time.Time, loc geo.Location) (Coordinates, error) {
	jd := julianDay(t)

	now, err := o.view(jd, loc)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s %s: %w", o.body.name, o.kind, err)
	}
	before, err := o.view(jd-speedStep, loc)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s %s: %w", o.body.name, o.kind, err)
	}
	after, err := o.view(jd+speedStep, loc)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s %s: %w", o.body.name, o.kind, err)
	}

	span := 2 * speedStep
	dra := math.Remainder(after.ra.Rad()-before.ra.Rad(), 2*math.Pi)

	return Coordinates{
		RA:        now.ra.Deg(),
		Dec:       now.dec.Deg(),
		Dist:      now.dist,
		RASpeed:   dra * 180 / math.Pi / span,
		DecSpeed:  (after.dec.Deg() - before.dec.Deg()) / span,
		DistSpeed: (after.dist - before.dist) / span,
		Azimuth:   now.az * 180 / math.Pi,
		Elevation: now.el * 180 / math.Pi,
	}, nil
}
