// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter defines the contract between the vault and the record
// store it writes to, and ships a remote implementation that talks to a
// record store relay over HTTP ([NewHTTPRecordStore]).
//
// Every operation returns the store-native [models.Status]. A non-nil error
// means the call itself failed (transport fault, undecodable reply); a
// status outside the expected range is not an error at this layer and is
// turned into a [*StatusError] by [CheckStatus] in the caller.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-legacy-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the narrow capability set the vault needs from the
// decentralized record store.
type RecordStore interface {
	// Create writes a new record and returns the handle with the
	// store-assigned id. A 202 status means the write was accepted.
	Create(ctx context.Context, req models.CreateRequest) (models.Status, models.RecordHandle, error)

	// Query returns the records matching filter in store order. A 200 status
	// means success, including the empty result.
	Query(ctx context.Context, filter models.QueryFilter) (models.Status, []models.RecordHandle, error)

	// Read fetches a single record by id. Unknown ids yield 404.
	Read(ctx context.Context, recordID string) (models.Status, models.RecordHandle, error)

	// Update replaces the content of record, keeping its id.
	Update(ctx context.Context, record models.RecordHandle, data []byte) (models.Status, error)

	// Delete removes the record. Deleting an unknown id yields 404.
	Delete(ctx context.Context, recordID string) (models.Status, error)

	// Sender forwards records to other DIDs' stores.
	Sender
}

// Sender forwards a record to the store of targetDID. A 202 status means
// the remote store accepted it.
type Sender interface {
	Send(ctx context.Context, record models.RecordHandle, targetDID string) (models.Status, error)
}

// ProtocolConfigurer is implemented by stores that must install the
// protocol definition before accepting records.
type ProtocolConfigurer interface {
	ConfigureProtocol(ctx context.Context, def models.ProtocolDefinition) (models.Status, error)
}
