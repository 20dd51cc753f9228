// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-legacy-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialIssuer writes self-issued, signed credentials.
type CredentialIssuer interface {
	// Issue mints a DID, signs a credential built from req with it and
	// writes the token as a new credential record. Returns the store status
	// of the write.
	Issue(ctx context.Context, req models.CredentialRequest) (int, error)

	// Reissue replaces the token of an existing credential record with one
	// signed by a freshly minted DID.
	Reissue(ctx context.Context, recordID string, req models.CredentialRequest) (int, error)
}

// VaultService orchestrates typed record operations, aggregation and
// transfers to beneficiaries. Write operations return the store status code.
type VaultService interface {
	Create(ctx context.Context, kind models.RecordKind, payload models.RecordPayload) (int, error)
	Get(ctx context.Context, kind models.RecordKind) ([]models.VaultRecord, error)
	GetAggregated(ctx context.Context) (models.GroupedAssets, error)
	GetByGroup(ctx context.Context, group string) ([]models.VaultRecord, error)
	Update(ctx context.Context, recordID string, kind models.RecordKind, payload models.RecordPayload) (int, error)
	Delete(ctx context.Context, recordID string) (int, error)

	ListBeneficiaries(ctx context.Context) ([]models.VaultRecord, error)
	// ResolveBeneficiary returns the beneficiary registered under did, or
	// [models.PersonalBeneficiary] when there is none.
	ResolveBeneficiary(ctx context.Context, did string) (models.BeneficiaryPayload, error)

	TransferOne(ctx context.Context, recordID, beneficiaryDID string) (int, error)
	// TransferGroup sends every record of group to beneficiaryDID. The
	// result status is always 202: per-record failures are logged and
	// reported in the result items, never returned as an error.
	TransferGroup(ctx context.Context, group, beneficiaryDID string) (models.BatchResult, error)
	// Notify sends message to beneficiaryDID as a notification record that
	// is not kept in the store.
	Notify(ctx context.Context, message, beneficiaryDID string) (int, error)
}
