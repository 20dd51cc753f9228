// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

const (
	defaultHTTPAddress         = "localhost:8080"
	defaultDSN                 = "vault.db"
	defaultRequestTimeout      = 30 * time.Second
	defaultAdapterTimeout      = 10 * time.Second
	defaultTransferConcurrency = 4
	defaultAttachmentLimit     = 1 << 20
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Vault.AttachmentLimit == 0 {
		cfg.Vault.AttachmentLimit = defaultAttachmentLimit
	}
	if cfg.Workers.TransferConcurrency == 0 {
		cfg.Workers.TransferConcurrency = defaultTransferConcurrency
	}
}

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.Remote && cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TransferConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Vault.AttachmentLimit < 0 {
		return ErrInvalidVaultConfigs
	}

	for _, did := range []string{cfg.Vault.OwnerDID, cfg.Vault.CredentialSource} {
		if did != "" && !strings.HasPrefix(did, "did:") {
			return ErrInvalidVaultConfigs
		}
	}

	return nil
}
