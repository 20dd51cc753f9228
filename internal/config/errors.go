package config

import "errors"

// Validation errors returned when the merged configuration is invalid.
var (
	// ErrInvalidServerConfigs indicates a negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates remote mode without a relay address.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a negative transfer concurrency.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidVaultConfigs indicates an owner or source that is not a DID.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
