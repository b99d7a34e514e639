package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/woozymasta/astrotopo/internal/astro"
	"github.com/woozymasta/astrotopo/internal/config"
	"github.com/woozymasta/astrotopo/internal/ephemeris"
)

func newTestExporter(t *testing.T, format string) *exporter {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}

	places, err := cfg.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	return &exporter{
		Service: astro.NewService(places, 1000),
		OutDir:  t.TempDir(),
		Format:  format,
		RunID:   "test",
	}
}

func testQuery() astro.PathQuery {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return astro.PathQuery{
		Start:  start,
		Till:   start.Add(72 * time.Hour),
		Date:   start,
		Method: astro.MethodPlanet,
		Place:  "Kyiv",
		Unit:   astro.StepDays,
		Count:  1,
	}
}

func TestExporterRun(t *testing.T) {
	exp := newTestExporter(t, "json")
	bodies := []string{"Mars", "Venus", "Pluto"}

	results := exp.Run(context.Background(), bodies, testQuery(), 2)
	if len(results) != len(bodies) {
		t.Fatalf("got %d results, want %d", len(results), len(bodies))
	}

	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("%s: %v", bodies[i], res.Err)
		}
		if res.Body != bodies[i] {
			t.Errorf("result %d body = %q, want %q", i, res.Body, bodies[i])
		}

		data, err := os.ReadFile(res.Path)
		if err != nil {
			t.Fatalf("read %s: %v", res.Path, err)
		}

		var rec struct {
			Celestial string           `json:"celestial"`
			Type      string           `json:"type"`
			Path      []map[string]any `json:"path"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			t.Fatalf("decode %s: %v", res.Path, err)
		}
		if rec.Celestial != bodies[i] || rec.Type != "PLANET" {
			t.Errorf("%s: celestial=%q type=%q", res.Path, rec.Celestial, rec.Type)
		}
		if len(rec.Path) != 3 {
			t.Errorf("%s: %d samples, want 3", res.Path, len(rec.Path))
		}
	}

	want := filepath.Join(exp.OutDir, "mars.planet.json")
	if results[0].Path != want {
		t.Errorf("path = %q, want %q", results[0].Path, want)
	}
}

func TestExporterRunYAML(t *testing.T) {
	exp := newTestExporter(t, "yaml")

	q := testQuery()
	q.Method = astro.MethodAscNode
	results := exp.Run(context.Background(), []string{"Jupiter"}, q, 0)
	if results[0].Err != nil {
		t.Fatalf("export: %v", results[0].Err)
	}

	if filepath.Base(results[0].Path) != "jupiter.asc_node.yaml" {
		t.Errorf("unexpected file %s", results[0].Path)
	}
	if info, err := os.Stat(results[0].Path); err != nil || info.Size() == 0 {
		t.Errorf("missing output: %v", err)
	}
}

func TestExporterUnknownBody(t *testing.T) {
	exp := newTestExporter(t, "json")

	results := exp.Run(context.Background(), []string{"Vulcan", "Mars"}, testQuery(), 2)
	if !errors.Is(results[0].Err, ephemeris.ErrUnknownBody) {
		t.Errorf("Vulcan err = %v, want ErrUnknownBody", results[0].Err)
	}
	if results[0].Path != "" {
		t.Errorf("Vulcan wrote %s", results[0].Path)
	}
	if results[1].Err != nil {
		t.Errorf("Mars err = %v", results[1].Err)
	}
}

func TestBuildQuery(t *testing.T) {
	opts := Options{
		Method: "asc-node",
		Place:  "Zug",
		Start:  "2024-03-01",
		Till:   "2024-03-08T00:00:00Z",
		Unit:   "days",
		Count:  2,
	}

	q, err := buildQuery(opts)
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if q.Method != astro.MethodAscNode {
		t.Errorf("method = %s", q.Method)
	}
	if !q.Date.Equal(q.Start) {
		t.Errorf("date = %s, want start %s", q.Date, q.Start)
	}

	opts.Method = "ORBIT"
	if _, err := buildQuery(opts); !errors.Is(err, astro.ErrUnknownMethod) {
		t.Errorf("err = %v, want ErrUnknownMethod", err)
	}

	opts.Method = "PLANET"
	opts.Till = "tomorrow"
	if _, err := buildQuery(opts); err == nil {
		t.Error("expected error for bad till")
	}
}
