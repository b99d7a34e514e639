package astro

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// StepUnit is the calendar unit of a path stride.
type StepUnit string

// Supported step units.
const (
	StepHours StepUnit = "hours"
	StepDays  StepUnit = "days"
	StepWeeks StepUnit = "weeks"
	StepYears StepUnit = "years"
)

const day = 24 * time.Hour

// ParseStepUnit accepts hours, days, weeks or years, case-insensitively.
func ParseStepUnit(s string) (StepUnit, error) {
	u := StepUnit(strings.ToLower(strings.TrimSpace(s)))
	if _, err := u.base(); err != nil {
		return "", &UnrecognizedUnitError{Unit: s}
	}
	return u, nil
}

func (u StepUnit) base() (time.Duration, error) {
	switch u {
	case StepHours:
		return time.Hour, nil
	case StepDays:
		return day, nil
	case StepWeeks:
		return 7 * day, nil
	case StepYears:
		// fixed 365 days, leap years are not accounted for
		return 365 * day, nil
	default:
		return 0, &UnrecognizedUnitError{Unit: string(u)}
	}
}

// Duration converts n units into elapsed time.
func (u StepUnit) Duration(n int) (time.Duration, error) {
	base, err := u.base()
	if err != nil {
		return 0, err
	}

	limit := int64(math.MaxInt64 / base)
	if int64(n) > limit || int64(n) < -limit {
		return 0, fmt.Errorf("%d %s: %w", n, u, ErrStepOverflow)
	}

	return time.Duration(n) * base, nil
}
