package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-vault/internal/validators"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// VaultServiceWrapper decorates a VaultService with additional behaviour
// such as validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultValidationService checks payloads and target DIDs before delegating
// to the wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) Create(ctx context.Context, kind models.RecordKind, payload models.RecordPayload) (int, error) {
	if err := v.validatePayload(ctx, payload); err != nil {
		return 0, err
	}
	return v.inner.Create(ctx, kind, payload)
}

func (v *VaultValidationService) Get(ctx context.Context, kind models.RecordKind) ([]models.VaultRecord, error) {
	return v.inner.Get(ctx, kind)
}

func (v *VaultValidationService) GetAggregated(ctx context.Context) (models.GroupedAssets, error) {
	return v.inner.GetAggregated(ctx)
}

func (v *VaultValidationService) GetByGroup(ctx context.Context, group string) ([]models.VaultRecord, error) {
	return v.inner.GetByGroup(ctx, group)
}

func (v *VaultValidationService) Update(ctx context.Context, recordID string, kind models.RecordKind, payload models.RecordPayload) (int, error) {
	if recordID == "" {
		return 0, fmt.Errorf("%w: empty record id", ErrInvalidPayload)
	}
	if err := v.validatePayload(ctx, payload); err != nil {
		return 0, err
	}
	return v.inner.Update(ctx, recordID, kind, payload)
}

func (v *VaultValidationService) Delete(ctx context.Context, recordID string) (int, error) {
	if recordID == "" {
		return 0, fmt.Errorf("%w: empty record id", ErrInvalidPayload)
	}
	return v.inner.Delete(ctx, recordID)
}

func (v *VaultValidationService) ListBeneficiaries(ctx context.Context) ([]models.VaultRecord, error) {
	return v.inner.ListBeneficiaries(ctx)
}

func (v *VaultValidationService) ResolveBeneficiary(ctx context.Context, did string) (models.BeneficiaryPayload, error) {
	return v.inner.ResolveBeneficiary(ctx, did)
}

func (v *VaultValidationService) TransferOne(ctx context.Context, recordID, beneficiaryDID string) (int, error) {
	if err := v.validateTarget(beneficiaryDID); err != nil {
		return 0, err
	}
	return v.inner.TransferOne(ctx, recordID, beneficiaryDID)
}

func (v *VaultValidationService) TransferGroup(ctx context.Context, group, beneficiaryDID string) (models.BatchResult, error) {
	if err := v.validateTarget(beneficiaryDID); err != nil {
		return models.BatchResult{}, err
	}
	return v.inner.TransferGroup(ctx, group, beneficiaryDID)
}

func (v *VaultValidationService) Notify(ctx context.Context, message, beneficiaryDID string) (int, error) {
	if err := v.validator.Validate(ctx, models.NotificationPayload{Message: message, RecipientDID: beneficiaryDID}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return v.inner.Notify(ctx, message, beneficiaryDID)
}

func (v *VaultValidationService) validatePayload(ctx context.Context, payload models.RecordPayload) error {
	if payload == nil {
		return fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if err := v.validator.Validate(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPayload, payload.Kind(), err)
	}
	return nil
}

func (v *VaultValidationService) validateTarget(did string) error {
	if !validators.IsDID(did) {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, validators.ErrInvalidDID)
	}
	return nil
}
