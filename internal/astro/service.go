// Package astro resolves positions and sampled paths of celestial objects
// for the registered observation points.
package astro

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/woozymasta/astrotopo/internal/ephemeris"
	"github.com/woozymasta/astrotopo/internal/geo"
)

const maxPathPrealloc = 4096

// ObjectFactory builds the engine object for a method and body name.
type ObjectFactory func(m Method, body string) (ephemeris.Object, error)

// Service computes positions and paths. It holds no mutable state and is
// safe for concurrent use once built.
type Service struct {
	Places     *geo.Registry
	Objects    ObjectFactory
	MaxSamples int // 0 disables the limit; configs always set a positive value
}

// NewService returns a Service backed by the ephemeris engine.
func NewService(places *geo.Registry, maxSamples int) *Service {
	return &Service{
		Places:     places,
		Objects:    CelestialHandle,
		MaxSamples: maxSamples,
	}
}

// PathQuery describes a sampled path request.
type PathQuery struct {
	Start  time.Time // first sample, inclusive
	Till   time.Time // end of range, exclusive
	Date   time.Time // instant of the head position
	Method Method
	Body   string
	Place  string
	Unit   StepUnit
	Count  int
}

// ComputePosition resolves place and object and computes the position at date.
func (s *Service) ComputePosition(ctx context.Context, m Method, body, place string, date time.Time) (PositionRecord, error) {
	if err := ctx.Err(); err != nil {
		return PositionRecord{}, err
	}

	loc, err := s.Places.Resolve(place)
	if err != nil {
		return PositionRecord{}, err
	}

	obj, err := s.Objects(m, body)
	if err != nil {
		return PositionRecord{}, err
	}

	coords, err := obj.EquatorSpeed(date, loc)
	if err != nil {
		return PositionRecord{}, err
	}

	return PositionRecord{
		Celestial: body,
		Type:      m,
		Place:     place,
		Date:      date,
		Position:  coords.Fields(),
	}, nil
}

// ComputePath computes the head position at q.Date and samples the object
// from q.Start up to, not including, q.Till at a fixed stride. The result is
// all or nothing: any failure discards the samples gathered so far.
func (s *Service) ComputePath(ctx context.Context, q PathQuery) (PathRecord, error) {
	delta, err := q.Unit.Duration(q.Count)
	if err != nil {
		return PathRecord{}, err
	}
	if delta <= 0 {
		return PathRecord{}, ErrNonPositiveStep
	}

	n := SampleCount(q.Start, q.Till, delta)
	if s.MaxSamples > 0 && n > int64(s.MaxSamples) {
		return PathRecord{}, &SampleBudgetError{Samples: n, Max: s.MaxSamples}
	}

	head, err := s.ComputePosition(ctx, q.Method, q.Body, q.Place, q.Date)
	if err != nil {
		return PathRecord{}, err
	}

	loc, err := s.Places.Resolve(q.Place)
	if err != nil {
		return PathRecord{}, err
	}
	obj, err := s.Objects(q.Method, q.Body)
	if err != nil {
		return PathRecord{}, err
	}

	path := make([]Payload, 0, min(n, maxPathPrealloc))
	for dt := q.Start; dt.Before(q.Till); dt = dt.Add(delta) {
		if err := ctx.Err(); err != nil {
			return PathRecord{}, err
		}

		coords, err := obj.EquatorSpeed(dt, loc)
		if err != nil {
			return PathRecord{}, err
		}

		sample := Payload(coords.Fields())
		sample["ts"] = dt
		path = append(path, sample)
	}

	return PathRecord{PositionRecord: head, Path: path}, nil
}

// SampleCount returns how many strides of delta fit in [start, till).
// The span is measured in big integers since it may exceed what a
// time.Duration holds (about 292 years); counts beyond int64 saturate.
func SampleCount(start, till time.Time, delta time.Duration) int64 {
	if delta <= 0 || !start.Before(till) {
		return 0
	}

	span := big.NewInt(till.Unix() - start.Unix())
	span.Mul(span, big.NewInt(int64(time.Second)))
	span.Add(span, big.NewInt(int64(till.Nanosecond()-start.Nanosecond())))

	n, rem := new(big.Int).QuoRem(span, big.NewInt(int64(delta)), new(big.Int))
	if rem.Sign() != 0 {
		n.Add(n, big.NewInt(1))
	}
	if !n.IsInt64() {
		return math.MaxInt64
	}
	return n.Int64()
}
