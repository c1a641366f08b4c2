package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"festival-campaign-engine/internal/api"
	"festival-campaign-engine/internal/config"
	"festival-campaign-engine/internal/engine"
	"festival-campaign-engine/internal/featherlight"
	"festival-campaign-engine/internal/listener"
	"festival-campaign-engine/internal/prefs"
	"festival-campaign-engine/internal/serviceability"
	"festival-campaign-engine/internal/storage"
)

func Run(cfg config.Config) {
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Campaign + catalog source
	var (
		src engine.Source
		pg  *storage.PGStore
	)
	switch cfg.Storage.Driver {
	case "postgres":
		var err error
		pg, err = storage.NewPGStore(rootCtx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("init postgres store")
		}
		defer pg.Close()
		src = pg
	default:
		src = storage.NewFileStore(cfg.Storage.DataDir)
	}

	// Engine: a malformed campaign table is a configuration error and
	// must stop the process here, not corrupt comparisons later.
	eng := engine.New()
	if err := eng.BuildSnapshot(rootCtx, src); err != nil {
		log.Fatal().Err(err).Msg("initial snapshot build")
	}

	// Featherlight preference store
	store, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open preference store")
	}
	// The server has no local connectivity source; clients report their
	// signal with each evaluation request.
	fl := featherlight.NewController(store, nil)
	defer fl.Close()

	svc := serviceability.NewResolver()

	h := api.NewHandler(eng, svc, cfg.ServiceabilityTimeout(), fl)
	r := api.Router(h)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Listener (LISTEN/NOTIFY) keeps the snapshot fresh under the
	// Postgres-backed store.
	if pg != nil {
		go listener.ListenAndRefresh(rootCtx, pg, eng, cfg.Listener.Channel, cfg.Backoff())
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("storage", cfg.Storage.Driver).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server crashed")
		}
	}()

	waitForSignal()
	log.Info().Msg("shutdown...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	cancel() // stop background goroutines
	_ = srv.Shutdown(shCtx)
}

func waitForSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
