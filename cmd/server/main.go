package main

import (
	"context"
	"fmt"

	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/generator"
	"github.com/mlevkin/launchcopy/internal/handler"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/server"
	"github.com/mlevkin/launchcopy/internal/service"
	"github.com/mlevkin/launchcopy/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("launchcopy-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	var gen generator.Generator
	if cfg.Generator.DemoMode {
		log.Info().Msg("demo mode enabled: using canned copy generator")
		gen = generator.NewDemoService(log)
	} else {
		gen = generator.NewService(generator.ConfigFromApp(cfg.Generator), log)
	}

	services := service.NewServices(storages, gen, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
