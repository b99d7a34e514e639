package ephemeris

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/woozymasta/astrotopo/internal/geo"
)

func kyiv(t *testing.T) geo.Location {
	t.Helper()
	loc, err := geo.NewLocation(geo.Place{Name: "Kyiv", Lat: "50n27", Lon: "30e30"})
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestConstructorsKinds(t *testing.T) {
	tests := []struct {
		ctor func(string) (Object, error)
		want Kind
	}{
		{NewPlanet, KindPlanet},
		{NewSecondFocus, KindSecondFocus},
		{NewApoApsis, KindApoApsis},
		{NewPeriApsis, KindPeriApsis},
		{NewAscNode, KindAscNode},
		{NewDscNode, KindDscNode},
	}

	for _, tt := range tests {
		obj, err := tt.ctor("mars")
		if err != nil {
			t.Fatalf("%s: %v", tt.want, err)
		}
		if obj.Kind() != tt.want {
			t.Errorf("Kind() = %s, want %s", obj.Kind(), tt.want)
		}
		if obj.Name() != "Mars" {
			t.Errorf("Name() = %q, want Mars", obj.Name())
		}
	}
}

func TestUnknownBody(t *testing.T) {
	_, err := NewPlanet("Vulcan")
	if !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("err = %v, want ErrUnknownBody", err)
	}
}

func TestSunAtSolsticeAndEquinox(t *testing.T) {
	sun, err := NewPlanet("Sun")
	if err != nil {
		t.Fatal(err)
	}
	loc := kyiv(t)

	solstice, err := sun.EquatorSpeed(time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), loc)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(solstice.Dec-23.44) > 0.1 {
		t.Errorf("solstice dec = %.3f, want ~23.44", solstice.Dec)
	}
	if math.Abs(solstice.RA-90) > 0.2 {
		t.Errorf("solstice ra = %.3f, want ~90", solstice.RA)
	}

	equinox, err := sun.EquatorSpeed(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), loc)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(equinox.Dec) > 0.1 {
		t.Errorf("equinox dec = %.3f, want ~0", equinox.Dec)
	}
	if ra := math.Remainder(equinox.RA, 360); math.Abs(ra) > 0.2 {
		t.Errorf("equinox ra = %.3f, want ~0", equinox.RA)
	}

	// about one degree a day eastward
	if equinox.RASpeed < 0.8 || equinox.RASpeed > 1.2 {
		t.Errorf("equinox ra speed = %.3f deg/day", equinox.RASpeed)
	}
	if math.Abs(equinox.Dist-1) > 0.02 {
		t.Errorf("sun distance = %.4f AU", equinox.Dist)
	}
}

func TestMoonMovesFast(t *testing.T) {
	moon, err := NewPlanet("moon")
	if err != nil {
		t.Fatal(err)
	}

	c, err := moon.EquatorSpeed(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), kyiv(t))
	if err != nil {
		t.Fatal(err)
	}

	if c.RASpeed < 5 || c.RASpeed > 22 {
		t.Errorf("moon ra speed = %.2f deg/day", c.RASpeed)
	}
	if c.Dist < 0.0023 || c.Dist > 0.0028 {
		t.Errorf("moon distance = %.5f AU", c.Dist)
	}
}

func TestEquatorSpeedDeterministic(t *testing.T) {
	obj, err := NewAscNode("Jupiter")
	if err != nil {
		t.Fatal(err)
	}
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	a, err := obj.EquatorSpeed(ts, kyiv(t))
	if err != nil {
		t.Fatal(err)
	}
	b, err := obj.EquatorSpeed(ts, kyiv(t))
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Errorf("repeated call differs: %+v vs %+v", a, b)
	}
	if a.RA < 0 || a.RA >= 360 || a.Dec < -90 || a.Dec > 90 {
		t.Errorf("out of range: %+v", a)
	}
}

func TestBodies(t *testing.T) {
	names := Bodies()
	if len(names) != 10 {
		t.Fatalf("got %d bodies: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("not sorted: %v", names)
		}
	}
}
