package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/woozymasta/astrotopo/internal/astro"
	"github.com/woozymasta/astrotopo/internal/config"
	"github.com/woozymasta/astrotopo/internal/logger"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file (built-in places if empty)"`
	Bodies      []string `short:"b" long:"body"        description:"Body to export, repeatable" required:"true"`
	Method      string   `short:"m" long:"method"      description:"Orbit point to compute" default:"PLANET"`
	Place       string   `short:"l" long:"place"       description:"Observation point name" required:"true"`
	Start       string   `short:"s" long:"start"       description:"First sample time" required:"true"`
	Till        string   `short:"t" long:"till"        description:"End of range, exclusive" required:"true"`
	Date        string   `short:"d" long:"date"        description:"Head position time (defaults to start)"`
	Unit        string   `short:"u" long:"unit"        description:"Step unit" choice:"hours" choice:"days" choice:"weeks" choice:"years" default:"days"`
	Count       int      `short:"n" long:"count"       description:"Step size in units" default:"1"`
	OutDir      string   `short:"o" long:"out"         description:"Output directory" default:"."`
	Format      string   `short:"f" long:"format"      description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Concurrency int      `short:"p" long:"concurrency" env:"CONCURRENCY" description:"Concurrency" default:"4"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	places, err := cfg.Registry()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build place registry")
	}

	q, err := buildQuery(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid query")
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", opts.OutDir).Msg("Failed to create output directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exp := &exporter{
		Service: astro.NewService(places, cfg.MaxSamples),
		OutDir:  opts.OutDir,
		Format:  opts.Format,
		RunID:   uuid.NewString(),
	}

	log.Info().
		Str("run_id", exp.RunID).
		Int("bodies", len(opts.Bodies)).
		Str("method", string(q.Method)).
		Str("place", q.Place).
		Msg("Starting export")

	failed := 0
	for _, res := range exp.Run(ctx, opts.Bodies, q, opts.Concurrency) {
		if res.Err != nil {
			failed++
			log.Error().Err(res.Err).Str("body", res.Body).Msg("Failed to export path")
		}
	}

	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("Export finished with errors")
	}

	log.Info().Str("run_id", exp.RunID).Msg("Export finished successfully")
}

func buildQuery(opts Options) (astro.PathQuery, error) {
	m, err := astro.ParseMethod(opts.Method)
	if err != nil {
		return astro.PathQuery{}, err
	}

	u, err := astro.ParseStepUnit(opts.Unit)
	if err != nil {
		return astro.PathQuery{}, err
	}

	start, err := astro.ParseTime(opts.Start)
	if err != nil {
		return astro.PathQuery{}, err
	}

	till, err := astro.ParseTime(opts.Till)
	if err != nil {
		return astro.PathQuery{}, err
	}

	date := start
	if opts.Date != "" {
		if date, err = astro.ParseTime(opts.Date); err != nil {
			return astro.PathQuery{}, err
		}
	}

	return astro.PathQuery{
		Start:  start,
		Till:   till,
		Date:   date,
		Method: m,
		Place:  opts.Place,
		Unit:   u,
		Count:  opts.Count,
	}, nil
}
