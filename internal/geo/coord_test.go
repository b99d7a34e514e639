package geo

import (
	"errors"
	"math"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   string
		axis Axis
		want float64 // degrees
	}{
		{"47n50", Latitude, 47 + 50.0/60},
		{"43n00", Latitude, 43},
		{"33s52", Latitude, -(33 + 52.0/60)},
		{"90N", Latitude, 90},
		{"8e31", Longitude, 8 + 31.0/60},
		{"122W25", Longitude, -(122 + 25.0/60)},
		{"180w", Longitude, -180},
	}

	for _, tt := range tests {
		got, err := ParseCoordinate(tt.in, tt.axis)
		if err != nil {
			t.Errorf("ParseCoordinate(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got.Deg()-tt.want) > 1e-9 {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.in, got.Deg(), tt.want)
		}
	}
}

func TestParseCoordinateInvalid(t *testing.T) {
	tests := []struct {
		in   string
		axis Axis
	}{
		{"", Latitude},
		{"47.5", Latitude},
		{"47x50", Latitude},
		{"47e50", Latitude},
		{"30n44", Longitude},
		{"91n00", Latitude},
		{"90n01", Latitude},
		{"181e00", Longitude},
		{"47n60", Latitude},
	}

	for _, tt := range tests {
		if _, err := ParseCoordinate(tt.in, tt.axis); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ParseCoordinate(%q) err = %v, want ErrInvalidCoordinate", tt.in, err)
		}
	}
}

func TestFormatCoordinateRoundTrip(t *testing.T) {
	for _, s := range []string{"47n50", "47n08", "43n00", "33s52"} {
		a, err := ParseCoordinate(s, Latitude)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatCoordinate(a, Latitude); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}

	for _, s := range []string{"8e31", "35e10", "122w25"} {
		a, err := ParseCoordinate(s, Longitude)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatCoordinate(a, Longitude); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}
