// Package main is the entry point for the cinegraph server.
//
// The server loads the TSV dataset from DATA_DIR into memory, links titles
// to people, and then serves read-only queries over HTTP. Startup order:
//
//  1. Configuration: environment variables with validated defaults
//  2. Dataset: load and link all five TSV sources
//  3. HTTP server: REST API with Prometheus metrics and Swagger docs
//
// Shutdown on SIGINT or SIGTERM is graceful: the listener stops accepting
// connections and in-flight requests get ten seconds to complete.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/service"
	"github.com/cinegraph/cinegraph/internal/store"
)

// @title           Cinegraph API
// @version         1.0
// @description     Read-only queries over an in-memory film/TV title dataset.
// @BasePath        /api/imdb

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	logger := log.StandardLogger()
	logger.WithFields(log.Fields{
		"version":  config.Version,
		"data_dir": cfg.DataDir,
		"addr":     cfg.Addr(),
	}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataset := store.NewDataset(cfg.Caps, logger)
	if err := dataset.LoadAndLink(ctx, store.FileSources(cfg.DataDir)); err != nil {
		return err
	}

	queries := service.NewQuery(dataset, logger)
	counter := service.NewRequestCounter()

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         logger,
		Queries:     queries,
		Counter:     counter,
		Dataset:     dataset,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("forced shutdown")
		return err
	}
	logger.Info("stopped")
	return nil
}
