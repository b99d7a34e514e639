package server

import (
	"net/http"

	"github.com/woozymasta/astrotopo/internal/astro"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// methodSegments maps the URL literal of each computation to its method.
// "peroapsis" is the historical spelling; "periapsis" is accepted alongside it.
var methodSegments = []struct {
	segment string
	method  astro.Method
}{
	{"pos", astro.MethodPlanet},
	{"second-focus", astro.MethodSecondFocus},
	{"apoapsis", astro.MethodApoApsis},
	{"peroapsis", astro.MethodPeriApsis},
	{"periapsis", astro.MethodPeriApsis},
	{"asc-node", astro.MethodAscNode},
	{"dsc-node", astro.MethodDscNode},
}

// Router builds the HTTP handler with every route and middleware attached.
func (s *ServerContext) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)

	r.HandleFunc("/healthz", s.HandleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/api/places", s.HandlePlaces).Methods(http.MethodGet)
	r.HandleFunc("/api/bodies", s.HandleBodies).Methods(http.MethodGet)

	for _, ms := range methodSegments {
		r.HandleFunc("/{body}/topo/{place}/"+ms.segment+"/{date}", s.HandlePosition(ms.method)).
			Methods(http.MethodGet)
		r.HandleFunc("/{body}/topo/{place}/{unit}/{count}/{start}/{till}/"+ms.segment+"/{date}", s.HandlePath(ms.method)).
			Methods(http.MethodGet)
	}

	r.NotFoundHandler = MetricsMiddleware(http.HandlerFunc(HandleNotFound))

	return RequestLogger(cors.AllowAll().Handler(r))
}
