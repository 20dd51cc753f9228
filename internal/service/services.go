package service

import (
	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/identity"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
)

type Services struct {
	CredentialIssuer CredentialIssuer
	VaultService     VaultService
}

func NewServices(store adapter.RecordStore, ids identity.Service, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Services {
	issuer := NewCredentialIssuer(store, ids, m, logger)
	vault := NewVaultService(store, issuer, ids, m, VaultOptions{
		OwnerDID:            cfg.Vault.OwnerDID,
		CredentialSource:    cfg.Vault.CredentialSource,
		TransferConcurrency: cfg.Workers.TransferConcurrency,
	}, logger)

	return &Services{
		CredentialIssuer: issuer,
		VaultService:     NewVaultValidationService().Wrap(vault),
	}
}
