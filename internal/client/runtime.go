package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/adapter"
	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/service"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/workers"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// runtime is everything a command needs once the config is loaded.
type runtime struct {
	vault  Vault
	logger *logger.Logger
	close  func(context.Context) error
}

type runtimeOpener func(ctx context.Context, configPath string) (*runtime, error)

func openRuntime(ctx context.Context, configPath string) (*runtime, error) {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("passenv", cfg.App.LogFile)
	if cfg.App.LogLevel != "" {
		if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Warn().Err(err).Msg("ignoring log level")
		}
	}

	return buildRuntime(ctx, *cfg, log)
}

// buildRuntime opens the stores named by cfg, wires the services and starts
// the background workers.
func buildRuntime(ctx context.Context, cfg config.ClientConfig, log *logger.Logger) (*runtime, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error opening local vault: %w", err)
	}

	envelopes := storages.Envelopes
	if cfg.Storage.EnvelopeBackend == config.BackendHTTP {
		envelopes, err = adapter.NewHTTPEnvelopeStore(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, fmt.Errorf("error creating envelope server adapter: %w", err)
		}
	}

	services, err := service.NewClientServices(envelopes, storages, cfg, log)
	if err != nil {
		_ = storages.Close(ctx)
		return nil, err
	}

	account := models.Account{UID: cfg.Account.UID, Email: cfg.Account.Email}
	vault := service.NewVault(account, services, log)

	// The workers outlive the command context; close stops them.
	bg := workers.NewWorkers(cfg, services)
	bg.Start(context.WithoutCancel(ctx))

	return &runtime{
		vault:  vault,
		logger: log,
		close: func(ctx context.Context) error {
			bg.Stop()
			services.Sessions.LockAll()
			return storages.Close(ctx)
		},
	}, nil
}
