package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/handler/http"
	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/server"
	"github.com/MKhiriev/acquasitions/internal/service"
	"github.com/MKhiriev/acquasitions/internal/store"
	"github.com/MKhiriev/acquasitions/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("acquasitions-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Int("port", cfg.Server.Port).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("metrics_path", cfg.Server.MetricsPath).
		Bool("database", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)
	handler, err := http.NewHandler(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
