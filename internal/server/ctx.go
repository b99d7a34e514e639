package server

import (
	"github.com/woozymasta/astrotopo/internal/astro"
	"github.com/woozymasta/astrotopo/internal/config"
	"github.com/woozymasta/astrotopo/internal/ephemeris"
	"github.com/woozymasta/astrotopo/internal/geo"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
// Everything in it is built once at startup and only read by handlers.
type ServerContext struct {
	Config   *config.Config
	Places   *geo.Registry
	Service  *astro.Service
	Bodies   []string
	Features geo.GeoJSONFeatureCollection
}

// NewServerContext builds the location registry and the computation service
// from the loaded configuration.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	log.Info().Int("config_places_count", len(cfg.Places)).Msg("Initializing server context")

	places, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	for _, name := range places.Names() {
		loc, _ := places.Resolve(name)
		log.Debug().
			Str("place", name).
			Str("coords", loc.String()).
			Msg("Place registered")
	}

	log.Info().
		Int("places_count", places.Len()).
		Int("max_samples", cfg.MaxSamples).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:   cfg,
		Places:   places,
		Service:  astro.NewService(places, cfg.MaxSamples),
		Bodies:   ephemeris.Bodies(),
		Features: places.FeatureCollection(),
	}, nil
}
