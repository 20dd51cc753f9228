package main

import (
	"context"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/handler"
	"github.com/MKhiriev/go-legacy-vault/internal/identity"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/protocol"
	"github.com/MKhiriev/go-legacy-vault/internal/server"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
	"github.com/MKhiriev/go-legacy-vault/internal/store"
	"github.com/MKhiriev/go-legacy-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("legacy-vault")

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	recordStore, closeStore, err := newRecordStore(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating record store")
	}
	defer closeStore()

	m := metrics.New()
	services := service.NewServices(recordStore, identity.NewService(), *cfg, m, log)

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		closeStore()
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newRecordStore picks the vault's own store: the remote relay when
// configured as such, the local database otherwise. A local store forwards
// sends through the relay when its address is set. The protocol definition
// is installed in either case.
func newRecordStore(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (adapter.RecordStore, func(), error) {
	var remote adapter.HTTPRecordStore
	if cfg.Adapter.HTTPAddress != "" {
		var err error
		if remote, err = adapter.NewHTTPRecordStore(cfg.Adapter, log); err != nil {
			return nil, nil, err
		}
	}

	if cfg.Adapter.Remote {
		if remote == nil {
			return nil, nil, adapter.ErrEmptyAddress
		}
		if err := configureProtocol(ctx, remote, log); err != nil {
			return nil, nil, err
		}
		return remote, func() {}, nil
	}

	var sender store.Sender
	if remote != nil {
		sender = remote
	}

	local, err := store.NewRecordStore(ctx, cfg.Storage.DB, cfg.Vault.OwnerDID, sender, log)
	if err != nil {
		return nil, nil, err
	}
	if err = configureProtocol(ctx, local, log); err != nil {
		local.Close()
		return nil, nil, err
	}

	return local, func() {
		if err := local.Close(); err != nil {
			log.Err(err).Msg("error closing record store")
		}
	}, nil
}

func configureProtocol(ctx context.Context, configurer adapter.ProtocolConfigurer, log *logger.Logger) error {
	status, err := configurer.ConfigureProtocol(ctx, protocol.Definition())
	if err == nil {
		err = adapter.CheckStatus("configure protocol", status, models.StatusOK, models.StatusAccepted)
	}
	if err != nil {
		log.Err(err).Str("func", "configureProtocol").Msg("failed to install protocol definition")
	}
	return err
}
