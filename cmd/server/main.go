package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	calling "github.com/Wyydra/callstate/internal/adapter/driven/calling/memory"
	"github.com/Wyydra/callstate/internal/adapter/driven/gateway/ws"
	repo "github.com/Wyydra/callstate/internal/adapter/driven/persistence/memory"
	handler "github.com/Wyydra/callstate/internal/adapter/driving/http"
	"github.com/Wyydra/callstate/internal/config"
	"github.com/Wyydra/callstate/internal/core/service"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/Wyydra/callstate/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Caller().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	l := log.Logger

	journal, err := repo.NewJournalRepository(cfg.Store.JournalCapacity)
	if err != nil {
		l.Fatal().Err(err).Msg("Failed to create journal")
	}
	registry := metrics.NewRegistry()
	hub := ws.NewHub()
	engine := calling.NewCallEngine()

	composite := service.NewComposite(
		service.Config{
			ThrottleWindow:      cfg.Store.ThrottleWindow,
			ParticipantCoalesce: cfg.Store.ParticipantCoalesce,
		},
		service.Deps{
			Calling: engine,
			Audio:   engine,
			Events:  hub,
			Journal: journal,
			Metrics: registry,
		},
		state.Options{
			DisplayName:     cfg.Launch.DisplayName,
			Title:           cfg.Launch.Title,
			Subtitle:        cfg.Launch.Subtitle,
			HiddenButtons:   cfg.Launch.Hidden(),
			DisabledButtons: cfg.Launch.Disabled(),
		},
	)
	states := composite.Subscribe(hub.PublishState)

	go hub.Run()

	h := handler.NewHandler(composite, hub, journal, registry.Handler())
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h.NewRouter(),
	}

	if err := composite.Launch(service.LaunchOptions{
		SkipSetup:               cfg.Launch.SkipSetup,
		MicrophoneOn:            cfg.Launch.MicrophoneOn,
		CameraPermissionGranted: cfg.Launch.CameraPermissionGranted,
		AudioPermissionGranted:  cfg.Launch.AudioPermissionGranted,
	}); err != nil {
		l.Fatal().Err(err).Msg("Failed to launch composite")
	}

	go func() {
		l.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	l.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("Server forced to shutdown")
	}

	states.Cancel()
	composite.Close()
	engine.Stop()
	hub.Stop()
	l.Info().Msg("Server exited")
}
