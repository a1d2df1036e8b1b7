package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/handler"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/internal/server"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/workers"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	build.Print(os.Stdout)

	log := logger.NewLogger("contacts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("avatar_provider", cfg.Adapter.Avatar.Provider).
		Str("mail_provider", cfg.Adapter.Mail.Provider).
		Str("mail_queue", cfg.Workers.MailQueue).
		Msg("received configs")

	if err := run(cfg, build, log); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	adapters, err := adapter.NewAdapters(ctx, cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating adapters: %w", err)
	}

	m := metrics.New()

	mailQueue, err := workers.NewMailQueue(cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("error creating mail queue: %w", err)
	}
	defer mailQueue.Close()

	renderer, err := workers.NewMailRenderer()
	if err != nil {
		return fmt.Errorf("error creating mail renderer: %w", err)
	}

	background := workers.NewWorkers(workers.NewMailWorker(mailQueue, adapters.MailSender, renderer, m, log))
	background.Run(ctx)
	defer background.Wait()
	defer cancel()

	services, err := service.NewServices(storages, adapters, mailQueue, m, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
