package handler

import (
	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/handler/http"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, http.Options{
			HashKey:         cfg.Adapter.HashKey,
			AttachmentLimit: cfg.Vault.AttachmentLimit,
		}, logger),
	}, nil
}
