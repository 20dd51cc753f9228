// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the HTTP API listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the local record store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote record store relay settings. Records are
	// forwarded to beneficiaries through it.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Vault holds the identity of the vault owner and credential sources.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds bulk transfer concurrency settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file, set via
	// the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP API.
type Server struct {
	// HTTPAddress is the host:port the API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the local record store connection string. A postgres:// or
// postgresql:// DSN selects PostgreSQL, ":memory:" an in-process store and
// anything else is treated as an SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the remote relay settings.
type Adapter struct {
	// HTTPAddress is the relay base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound relay request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey signs outbound request bodies (HashSHA256 header). Optional.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Remote makes the relay the primary record store instead of the local
	// database.
	// Env: ADAPTER_REMOTE
	Remote bool `env:"REMOTE"`
}

// Vault holds identity settings of the vault owner.
type Vault struct {
	// OwnerDID receives a copy of every newly created secret. Optional.
	// Env: VAULT_OWNER_DID
	OwnerDID string `env:"OWNER_DID"`

	// CredentialSource scopes credential queries to another DID's store.
	// Optional.
	// Env: VAULT_CREDENTIAL_SOURCE
	CredentialSource string `env:"CREDENTIAL_SOURCE"`

	// AttachmentLimit caps decoded attachment size in bytes at the API.
	// Env: VAULT_ATTACHMENT_LIMIT
	AttachmentLimit int `env:"ATTACHMENT_LIMIT"`
}

// Workers holds background work settings.
type Workers struct {
	// TransferConcurrency bounds the number of concurrent sends of a bulk
	// transfer.
	// Env: WORKERS_TRANSFER_CONCURRENCY
	TransferConcurrency int `env:"TRANSFER_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
