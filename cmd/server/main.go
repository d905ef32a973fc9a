// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/handler"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/server"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/moonburnt/the-tempest/internal/workers"
	"github.com/moonburnt/the-tempest/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("tempest-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("invalid log level")
		}
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upload_dir", cfg.Storage.Files.UploadDir).
		Strs("allowed_extensions", cfg.Storage.Files.AllowedExtensions).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}

	cancel()
	wg.Wait()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
