package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-legacy-vault/internal/mock"
	"github.com/MKhiriev/go-legacy-vault/internal/validators"
	"github.com/MKhiriev/go-legacy-vault/models"
)

func newTestValidation(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockVaultService) {
	t.Helper()
	inner := mock.NewMockVaultService(ctrl)
	return NewVaultValidationService().Wrap(inner), inner
}

func TestVaultValidation_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidation(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Secret, models.SecretPayload{Platform: "mail"})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, validators.ErrEmptyAccountName)

	_, err = svc.Create(ctx, models.Secret, nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	valid := secretPayload("mail")
	inner.EXPECT().Create(ctx, models.Secret, valid).Return(http.StatusAccepted, nil)
	code, err := svc.Create(ctx, models.Secret, valid)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, code)
}

func TestVaultValidation_TransferTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidation(t, ctrl)
	ctx := context.Background()

	_, err := svc.TransferOne(ctx, "rec-1", "bob")
	assert.ErrorIs(t, err, validators.ErrInvalidDID)

	_, err = svc.TransferGroup(ctx, "Secret", "")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	inner.EXPECT().TransferGroup(ctx, "Secret", "did:key:z6MkBen").
		Return(models.BatchResult{Status: http.StatusAccepted}, nil)
	result, err := svc.TransferGroup(ctx, "Secret", "did:key:z6MkBen")
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, result.Status)
}

func TestVaultValidation_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidation(t, ctrl)
	ctx := context.Background()

	_, err := svc.Notify(ctx, "", "did:key:z6MkBen")
	assert.ErrorIs(t, err, validators.ErrEmptyMessage)

	inner.EXPECT().Notify(ctx, "hi", "did:key:z6MkBen").Return(http.StatusAccepted, nil)
	_, err = svc.Notify(ctx, "hi", "did:key:z6MkBen")
	assert.NoError(t, err)
}

func TestVaultValidation_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidation(t, ctrl)
	ctx := context.Background()

	inner.EXPECT().GetByGroup(ctx, "Will").Return(nil, models.ErrNotFound)
	_, err := svc.GetByGroup(ctx, "Will")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Delete(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
