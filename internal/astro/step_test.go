package astro

import (
	"errors"
	"testing"
	"time"
)

func TestStepUnitDuration(t *testing.T) {
	tests := []struct {
		unit StepUnit
		n    int
		want time.Duration
	}{
		{StepHours, 24, 24 * time.Hour},
		{StepDays, 1, 24 * time.Hour},
		{StepDays, 3, 72 * time.Hour},
		{StepWeeks, 2, 14 * 24 * time.Hour},
		{StepYears, 1, 365 * 24 * time.Hour},
		{StepYears, 4, 4 * 365 * 24 * time.Hour},
		{StepHours, 0, 0},
		{StepDays, -1, -24 * time.Hour},
	}

	for _, tt := range tests {
		got, err := tt.unit.Duration(tt.n)
		if err != nil {
			t.Fatalf("%s(%d): %v", tt.unit, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("%s(%d) = %v, want %v", tt.unit, tt.n, got, tt.want)
		}
	}
}

func TestHoursMatchDays(t *testing.T) {
	h, _ := StepHours.Duration(24)
	d, _ := StepDays.Duration(1)
	if h != d {
		t.Errorf("24 hours = %v, 1 day = %v", h, d)
	}
}

func TestStepUnitOverflow(t *testing.T) {
	if _, err := StepYears.Duration(1000); !errors.Is(err, ErrStepOverflow) {
		t.Errorf("err = %v, want ErrStepOverflow", err)
	}
	if _, err := StepYears.Duration(292); err != nil {
		t.Errorf("292 years: %v", err)
	}
}

func TestParseStepUnit(t *testing.T) {
	for _, s := range []string{"hours", "DAYS", "Weeks", "years"} {
		if _, err := ParseStepUnit(s); err != nil {
			t.Errorf("ParseStepUnit(%q): %v", s, err)
		}
	}

	_, err := ParseStepUnit("months")
	if !errors.Is(err, ErrUnrecognizedUnit) {
		t.Fatalf("err = %v, want ErrUnrecognizedUnit", err)
	}

	var ue *UnrecognizedUnitError
	if !errors.As(err, &ue) || ue.Unit != "months" {
		t.Errorf("error does not carry the unit: %v", err)
	}

	if _, err := StepUnit("fortnights").Duration(1); !errors.Is(err, ErrUnrecognizedUnit) {
		t.Errorf("Duration on unknown unit: %v", err)
	}
}
