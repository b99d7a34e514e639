package ephemeris

// Coordinates is a topocentric equatorial position with its rate of change.
type Coordinates struct {
	RA        float64 `json:"ra" yaml:"ra"`                 // right ascension, degrees [0, 360)
	Dec       float64 `json:"dec" yaml:"dec"`               // declination, degrees
	Dist      float64 `json:"dist" yaml:"dist"`             // distance from the observer, AU
	RASpeed   float64 `json:"ra_speed" yaml:"ra_speed"`     // degrees per day
	DecSpeed  float64 `json:"dec_speed" yaml:"dec_speed"`   // degrees per day
	DistSpeed float64 `json:"dist_speed" yaml:"dist_speed"` // AU per day
	Azimuth   float64 `json:"azimuth" yaml:"azimuth"`       // degrees from North, clockwise
	Elevation float64 `json:"elevation" yaml:"elevation"`   // degrees above the horizon
}

// Fields returns the coordinates as a generic record keyed by the JSON names.
func (c Coordinates) Fields() map[string]any {
	return map[string]any{
		"ra":         c.RA,
		"dec":        c.Dec,
		"dist":       c.Dist,
		"ra_speed":   c.RASpeed,
		"dec_speed":  c.DecSpeed,
		"dist_speed": c.DistSpeed,
		"azimuth":    c.Azimuth,
		"elevation":  c.Elevation,
	}
}
