package http

import (
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
)

// Options tune request checks done before the service layer.
type Options struct {
	// HashKey enables HMAC verification of request bodies.
	HashKey string
	// AttachmentLimit bounds decoded credential attachments, in bytes.
	AttachmentLimit int
}

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	opts     Options

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, opts Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		opts:     opts,
		logger:   logger,
	}
}
