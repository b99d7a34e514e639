package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/woozymasta/astrotopo/internal/astro"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type job struct {
	Body  string
	Query astro.PathQuery
}

type result struct {
	Body string
	Path string
	Err  error
}

// exporter writes one PathRecord file per body.
type exporter struct {
	Service *astro.Service
	OutDir  string
	Format  string
	RunID   string
}

func fileName(body string, m astro.Method, format string) string {
	return fmt.Sprintf("%s.%s.%s",
		strings.ToLower(body),
		strings.ToLower(string(m)),
		format)
}

// Run computes the paths with a bounded number of workers. It returns one
// result per body in input order.
func (e *exporter) Run(ctx context.Context, bodies []string, q astro.PathQuery, concurrency int) []result {
	if concurrency <= 0 {
		concurrency = 1
	}

	jobs := make(chan int, len(bodies))
	results := make([]result, len(bodies))

	for i := range bodies {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				bq := q
				bq.Body = bodies[idx]
				results[idx] = e.export(ctx, job{Body: bodies[idx], Query: bq})
			}
		}()
	}
	wg.Wait()

	return results
}

func (e *exporter) export(ctx context.Context, j job) result {
	res := result{Body: j.Body}

	rec, err := e.Service.ComputePath(ctx, j.Query)
	if err != nil {
		res.Err = err
		return res
	}

	var data []byte
	if e.Format == "yaml" {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		res.Err = fmt.Errorf("marshal %s: %w", j.Body, err)
		return res
	}

	res.Path = filepath.Join(e.OutDir, fileName(j.Body, j.Query.Method, e.Format))
	if err := os.WriteFile(res.Path, data, 0644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.Path, err)
		return res
	}

	log.Debug().
		Str("run_id", e.RunID).
		Str("body", j.Body).
		Int("samples", len(rec.Path)).
		Str("file", res.Path).
		Msg("Path exported")

	return res
}
