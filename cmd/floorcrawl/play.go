package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/floorcrawl/internal/game"
	"github.com/samdwyer/floorcrawl/internal/gamedata"
	"github.com/samdwyer/floorcrawl/internal/logger"
	"github.com/samdwyer/floorcrawl/internal/persistence"
	"github.com/samdwyer/floorcrawl/internal/spectate"
	"github.com/samdwyer/floorcrawl/internal/telemetry"
	"github.com/samdwyer/floorcrawl/internal/ui"
)

type mode int

const (
	modeMenu mode = iota
	modeNew
	modeContinue
)

// run wires logging, telemetry, storage, the spectator feed and the
// terminal around one game.
func run(ctx context.Context, m mode) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logCloser, err := logger.Init(cfg.Logger())
	if err != nil {
		return err
	}
	defer logCloser.Close()
	log := logger.Component("main")

	tracing := cfg.Tracing()
	tracing.Enabled = setupOTelEnv() || tracing.Enabled
	shutdown, err := telemetry.Start(ctx, tracing)
	if err != nil {
		// The game still works without traces.
		log.WithError(err).Warn("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	catalog, err := gamedata.LoadDefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load object catalog: %w", err)
	}

	store, err := persistence.Open(ctx, cfg.Store())
	if err != nil {
		return fmt.Errorf("failed to open save store: %w", err)
	}
	defer store.Close()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	term := ui.NewTerminal(screen, "FLOORCRAWL")
	defer term.Close()

	g := game.New(cfg.Game(), catalog, store, term)

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		g.AddObserver(hub)
		go func() {
			if err := hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				log.WithError(err).Error("spectator feed stopped")
			}
		}()
	}

	log.WithFields(logrus.Fields{
		"seed":    cfg.SeedValue(),
		"backend": cfg.SaveBackend,
	}).Info("starting")

	switch m {
	case modeNew:
		g.NewGame(ctx)
	case modeContinue:
		if err := g.Continue(ctx); err != nil {
			return err
		}
	default:
		err = g.MainMenu(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	err = g.Play(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupOTelEnv builds the OTLP headers from a Honeycomb key when one is
// set and no endpoint was configured explicitly. It reports whether it did.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "floorcrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
