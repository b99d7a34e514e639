package astro

import (
	"strings"

	"github.com/woozymasta/astrotopo/internal/ephemeris"
)

// Method selects which point of a body's orbit is computed.
type Method string

// Supported methods.
const (
	MethodPlanet      Method = "PLANET"
	MethodSecondFocus Method = "SECOND_FOCUS"
	MethodApoApsis    Method = "APO_APSIS"
	MethodPeriApsis   Method = "PERI_APSIS"
	MethodAscNode     Method = "ASC_NODE"
	MethodDscNode     Method = "DSC_NODE"
)

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{
		MethodPlanet,
		MethodSecondFocus,
		MethodApoApsis,
		MethodPeriApsis,
		MethodAscNode,
		MethodDscNode,
	}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodPlanet, MethodSecondFocus, MethodApoApsis, MethodPeriApsis, MethodAscNode, MethodDscNode:
		return true
	}
	return false
}

// ParseMethod accepts a method tag in any case, with '-' or '_' separators.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !m.Valid() {
		return "", &UnknownMethodError{Method: Method(s)}
	}
	return m, nil
}

// CelestialHandle builds the engine object that method m computes for body.
// Each method maps to its own constructor.
func CelestialHandle(m Method, body string) (ephemeris.Object, error) {
	switch m {
	case MethodPlanet:
		return ephemeris.NewPlanet(body)
	case MethodSecondFocus:
		return ephemeris.NewSecondFocus(body)
	case MethodApoApsis:
		return ephemeris.NewApoApsis(body)
	case MethodPeriApsis:
		return ephemeris.NewPeriApsis(body)
	case MethodAscNode:
		return ephemeris.NewAscNode(body)
	case MethodDscNode:
		return ephemeris.NewDscNode(body)
	default:
		return nil, &UnknownMethodError{Method: m}
	}
}
