// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-legacy-vault/models"
)

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, &models.SecretPayload{Platform: "mail", AccountName: "x@y", SecretPhrase: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SecretPayload{}, "nonsense"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Payloads
// ---------------------------------------------------------------------------

func TestValidate_Secret(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		secret  models.SecretPayload
		wantErr error
	}{
		{name: "valid", secret: models.SecretPayload{Platform: "mail", AccountName: "x@y", SecretPhrase: "p"}},
		{name: "no platform", secret: models.SecretPayload{AccountName: "x@y", SecretPhrase: "p"}, wantErr: ErrEmptyPlatform},
		{name: "blank account", secret: models.SecretPayload{Platform: "mail", AccountName: "  ", SecretPhrase: "p"}, wantErr: ErrEmptyAccountName},
		{name: "no phrase", secret: models.SecretPayload{Platform: "mail", AccountName: "x@y"}, wantErr: ErrEmptySecretPhrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.secret)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Beneficiary(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BeneficiaryPayload{Name: "Ann", DID: "did:key:z6MkAnn"}))
	assert.ErrorIs(t, v.Validate(ctx, models.BeneficiaryPayload{DID: "did:key:z6MkAnn"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.BeneficiaryPayload{Name: "Ann", DID: "ann"}), ErrInvalidDID)
	// name-only check ignores the DID
	assert.NoError(t, v.Validate(ctx, models.BeneficiaryPayload{Name: "Ann"}, FieldName))
}

func TestValidate_CredentialRequest(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CredentialRequest{Type: "Will", Title: "My will"}))
	assert.NoError(t, v.Validate(ctx, models.CredentialRequest{Type: "Will", Title: "t", SubjectTarget: "did:key:z6MkBen"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CredentialRequest{Title: "t"}), ErrEmptyCredentialType)
	assert.ErrorIs(t, v.Validate(ctx, models.CredentialRequest{Type: "Will"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.CredentialRequest{Type: "Will", Title: "t", SubjectTarget: "bob"}), ErrInvalidDID)
	assert.NoError(t, v.Validate(ctx, models.CredentialPayload{CredentialType: "Will", Title: "t"}))
}

func TestValidate_Notification(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NotificationPayload{Message: "hi", RecipientDID: "did:key:z6MkBen"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NotificationPayload{RecipientDID: "did:key:z6MkBen"}), ErrEmptyMessage)
	assert.ErrorIs(t, v.Validate(ctx, &models.NotificationPayload{Message: "hi"}), ErrInvalidDID)
}

func TestIsDID(t *testing.T) {
	assert.True(t, IsDID("did:key:z6Mk"))
	assert.True(t, IsDID("did:web:example.com:user"))
	assert.False(t, IsDID("did:key:"))
	assert.False(t, IsDID("key:z6Mk"))
	assert.False(t, IsDID(""))
}
