// Package geo holds observation points: their sexagesimal coordinates, the
// registry that resolves them by name, and their GeoJSON rendering.
package geo

const (
	typeFeatureCollection = "FeatureCollection"
	typeFeature           = "Feature"
	typePoint             = "Point"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature is a single point with its properties.
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry is always a Point here.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat] or [Lon, Lat, Alt]
}

func newFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     typeFeatureCollection,
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// locationFeature renders a location as a GeoJSON point. Altitude is
// appended only when it is set.
func locationFeature(loc Location) GeoJSONFeature {
	coords := []float64{loc.Lon.Deg(), loc.Lat.Deg()}
	if loc.Alt != 0 {
		coords = append(coords, loc.Alt)
	}

	props := map[string]any{
		"name": loc.Name,
		"lat":  FormatCoordinate(loc.Lat, Latitude),
		"lon":  FormatCoordinate(loc.Lon, Longitude),
	}
	if loc.Alt != 0 {
		props["alt"] = loc.Alt
	}

	return GeoJSONFeature{
		Type:       typeFeature,
		Properties: props,
		Geometry: GeoJSONGeometry{
			Type:        typePoint,
			Coordinates: coords,
		},
	}
}
