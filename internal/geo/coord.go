package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Axis selects which hemisphere letters a coordinate may carry.
type Axis int

const (
	// Latitude accepts n/s and a magnitude up to 90 degrees.
	Latitude Axis = iota
	// Longitude accepts e/w and a magnitude up to 180 degrees.
	Longitude
)

// ErrInvalidCoordinate is returned for notation that cannot be parsed.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Pattern captures: 1=degrees, 2=hemisphere, 3=minutes
var coordRegex = regexp.MustCompile(`^(\d{1,3})([nsewNSEW])(\d{1,2})?$`)

// ParseCoordinate parses degrees-hemisphere-minutes notation such as "47n50"
// (47°50′ North) or "8e31" (8°31′ East). South and West are negative.
func ParseCoordinate(s string, axis Axis) (unit.Angle, error) {
	match := coordRegex.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	deg, _ := strconv.Atoi(match[1])
	min := 0
	if match[3] != "" {
		min, _ = strconv.Atoi(match[3])
	}
	hemi := strings.ToLower(match[2])[0]

	var limit int
	switch axis {
	case Latitude:
		if hemi != 'n' && hemi != 's' {
			return 0, fmt.Errorf("%w: %q is not a latitude", ErrInvalidCoordinate, s)
		}
		limit = 90
	case Longitude:
		if hemi != 'e' && hemi != 'w' {
			return 0, fmt.Errorf("%w: %q is not a longitude", ErrInvalidCoordinate, s)
		}
		limit = 180
	}

	if min >= 60 || deg > limit || (deg == limit && min > 0) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidCoordinate, s)
	}

	var neg byte
	if hemi == 's' || hemi == 'w' {
		neg = '-'
	}

	return unit.NewAngle(neg, deg, min, 0), nil
}

// FormatCoordinate renders an angle back into degrees-hemisphere-minutes
// notation, rounding to the nearest arc minute.
func FormatCoordinate(a unit.Angle, axis Axis) string {
	total := int(math.Round(math.Abs(a.Min())))
	deg, min := total/60, total%60

	var hemi byte
	switch axis {
	case Latitude:
		hemi = 'n'
		if a < 0 {
			hemi = 's'
		}
	default:
		hemi = 'e'
		if a < 0 {
			hemi = 'w'
		}
	}

	return fmt.Sprintf("%d%c%02d", deg, hemi, min)
}
