package astro

import "time"

// Payload is a position as produced by the engine, in generic form.
// Path samples carry an extra "ts" key with the sample time.
type Payload map[string]any

// PositionRecord is the result of one computation.
type PositionRecord struct {
	Celestial string    `json:"celestial" yaml:"celestial"`
	Type      Method    `json:"type" yaml:"type"`
	Place     string    `json:"place" yaml:"place"`
	Date      time.Time `json:"date" yaml:"date"`
	Position  Payload   `json:"position" yaml:"position"`
}

// PathRecord is a PositionRecord with positions sampled over a time range.
type PathRecord struct {
	PositionRecord `yaml:",inline"`
	Path           []Payload `json:"path" yaml:"path"`
}
