package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/handler"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/server"
	"github.com/MKhiriev/go-pass-envelope/internal/service"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("passenv-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Warn().Err(err).Msg("ignoring log level")
		}
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	ctx := context.Background()
	storages, err := store.NewServerStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
