package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/soniakeys/unit"
)

// ErrUnknownLocation matches any *UnknownLocationError.
var ErrUnknownLocation = errors.New("unknown location")

// UnknownLocationError reports a place name missing from the registry.
type UnknownLocationError struct {
	Name string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownLocation) work.
func (e *UnknownLocationError) Is(target error) bool {
	return target == ErrUnknownLocation
}

// Place is a named observation point as written in the configuration file.
type Place struct {
	Name string  `yaml:"name" json:"name"`
	Lat  string  `yaml:"lat" json:"lat"`                     // e.g. 47n50
	Lon  string  `yaml:"lon" json:"lon"`                     // e.g. 35e10
	Alt  float64 `yaml:"alt,omitempty" json:"alt,omitempty"` // meters above the ellipsoid
}

// Location is a parsed geographic position.
type Location struct {
	Name string
	Lat  unit.Angle
	Lon  unit.Angle
	Alt  float64 // meters
}

// String renders the location in the notation it was configured with.
func (l Location) String() string {
	return FormatCoordinate(l.Lat, Latitude) + " " + FormatCoordinate(l.Lon, Longitude)
}

// NewLocation parses a Place into a Location.
func NewLocation(p Place) (Location, error) {
	lat, err := ParseCoordinate(p.Lat, Latitude)
	if err != nil {
		return Location{}, fmt.Errorf("place %q latitude: %w", p.Name, err)
	}
	lon, err := ParseCoordinate(p.Lon, Longitude)
	if err != nil {
		return Location{}, fmt.Errorf("place %q longitude: %w", p.Name, err)
	}

	return Location{Name: p.Name, Lat: lat, Lon: lon, Alt: p.Alt}, nil
}

// Registry is the fixed table of named observation points.
// It is built once at startup and only read afterwards.
type Registry struct {
	places map[string]Location
	names  []string
}

// NewRegistry parses and indexes the places. Duplicate names are rejected.
func NewRegistry(places []Place) (*Registry, error) {
	r := &Registry{
		places: make(map[string]Location, len(places)),
		names:  make([]string, 0, len(places)),
	}

	for _, p := range places {
		if p.Name == "" {
			return nil, errors.New("place without a name")
		}

		key := Capitalize(p.Name)
		if _, ok := r.places[key]; ok {
			return nil, fmt.Errorf("duplicate place %q", p.Name)
		}

		loc, err := NewLocation(p)
		if err != nil {
			return nil, err
		}
		loc.Name = key

		r.places[key] = loc
		r.names = append(r.names, key)
	}

	sort.Strings(r.names)

	return r, nil
}

// Resolve looks a place up by name. Names are compared after Capitalize, so
// "odessa", "Odessa" and "ODESSA" all resolve to the same entry.
func (r *Registry) Resolve(name string) (Location, error) {
	loc, ok := r.places[Capitalize(name)]
	if !ok {
		return Location{}, &UnknownLocationError{Name: name}
	}

	return loc, nil
}

// Names returns the registered place names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered places.
func (r *Registry) Len() int {
	return len(r.names)
}

// FeatureCollection renders the registry as GeoJSON points, sorted by name.
func (r *Registry) FeatureCollection() GeoJSONFeatureCollection {
	fc := newFeatureCollection(len(r.names))
	for _, name := range r.names {
		fc.Features = append(fc.Features, locationFeature(r.places[name]))
	}

	return fc
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
