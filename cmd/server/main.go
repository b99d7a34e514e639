package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozymasta/astrotopo/internal/config"
	"github.com/woozymasta/astrotopo/internal/logger"
	"github.com/woozymasta/astrotopo/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string        `short:"c" long:"config"        env:"CONFIG_FILE"    description:"Path to configuration file (built-in places if empty)"`
	Addr         string        `short:"a" long:"addr"          env:"LISTEN_ADDRESS" description:"Address to listen on"                 default:"0.0.0.0"`
	Port         int           `short:"p" long:"port"          env:"LISTEN_PORT"    description:"Port to listen on"                    default:"8080"`
	MaxSamples   int           `short:"m" long:"max-samples"   env:"MAX_SAMPLES"    description:"Samples limit per path request, values below 1 keep the configured limit"`
	WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" description:"Response write timeout" default:"60s"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.MaxSamples > 0 {
		cfg.MaxSamples = opts.MaxSamples
	}

	srvCtx, err := server.NewServerContext(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", listenAddr).
			Int("places_loaded", srvCtx.Places.Len()).
			Int("max_samples", cfg.MaxSamples).
			Msg("Web server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return
	}

	log.Info().Msg("Server stopped")
}
