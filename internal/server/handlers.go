// Package server handles HTTP requests and middleware.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/woozymasta/astrotopo/internal/astro"
	"github.com/woozymasta/astrotopo/internal/geo"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error      string `json:"error"`
	MaxSamples int    `json:"max_samples,omitempty"`
}

// HandlePosition serves the position of one object at one instant.
func (s *ServerContext) HandlePosition(m astro.Method) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		date, err := timeParam(vars, "date")
		if err != nil {
			writeError(w, r, err)
			return
		}

		rec, err := s.Service.ComputePosition(r.Context(), m, vars["body"], vars["place"], date)
		if err != nil {
			writeError(w, r, err)
			return
		}

		positionsTotal.WithLabelValues(string(m)).Inc()
		writeJSON(w, http.StatusOK, rec)
	}
}

// HandlePath serves a head position plus positions sampled over a range.
func (s *ServerContext) HandlePath(m astro.Method) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		q, err := pathQuery(m, vars)
		if err != nil {
			writeError(w, r, err)
			return
		}

		rec, err := s.Service.ComputePath(r.Context(), q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		positionsTotal.WithLabelValues(string(m)).Add(float64(1 + len(rec.Path)))
		pathSamples.Observe(float64(len(rec.Path)))
		writeJSON(w, http.StatusOK, rec)
	}
}

func pathQuery(m astro.Method, vars map[string]string) (astro.PathQuery, error) {
	q := astro.PathQuery{
		Method: m,
		Body:   vars["body"],
		Place:  vars["place"],
	}

	var err error
	if q.Unit, err = astro.ParseStepUnit(vars["unit"]); err != nil {
		return q, err
	}
	if q.Count, err = intParam(vars, "count"); err != nil {
		return q, err
	}
	if q.Start, err = timeParam(vars, "start"); err != nil {
		return q, err
	}
	if q.Till, err = timeParam(vars, "till"); err != nil {
		return q, err
	}
	if q.Date, err = timeParam(vars, "date"); err != nil {
		return q, err
	}

	return q, nil
}

// HandlePlaces serves the location registry as GeoJSON.
func (s *ServerContext) HandlePlaces(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/geo+json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Features)
}

// HandleBodies serves the names of the supported bodies.
func (s *ServerContext) HandleBodies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"bodies":  s.Bodies,
		"methods": astro.Methods(),
	})
}

// HandleHealth reports liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleNotFound answers unknown routes with a JSON error.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP statuses. Server-side failures are
// logged with the request logger.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusFor(err)
	resp := errorResponse{Error: err.Error()}

	var be *astro.SampleBudgetError
	if errors.As(err, &be) {
		resp.MaxSamples = be.Max
	}

	if code >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("Request failed")
	}

	writeJSON(w, code, resp)
}

// StatusFor returns the HTTP status for an error raised while serving a request.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, geo.ErrUnknownLocation):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParameter),
		errors.Is(err, astro.ErrUnrecognizedUnit),
		errors.Is(err, astro.ErrNonPositiveStep),
		errors.Is(err, astro.ErrStepOverflow),
		errors.Is(err, astro.ErrSampleBudget):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		// unknown methods and engine failures alike
		return http.StatusInternalServerError
	}
}
