package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-legacy-vault/models"
)

const (
	FieldPlatform      = "platform"
	FieldAccountName   = "account_name"
	FieldSecretPhrase  = "phrase"
	FieldName          = "name"
	FieldDID           = "did"
	FieldType          = "type"
	FieldTitle         = "title"
	FieldSubjectTarget = "subject"
	FieldMessage       = "message"
	FieldRecipientDID  = "recipient_did"
)

// RecordValidator validates record payloads and credential requests.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretPayload:
		return v.validateSecret(value, fields...)
	case *models.SecretPayload:
		return v.validateSecret(*value, fields...)

	case models.BeneficiaryPayload:
		return v.validateBeneficiary(value, fields...)
	case *models.BeneficiaryPayload:
		return v.validateBeneficiary(*value, fields...)

	case models.CredentialRequest:
		return v.validateCredentialRequest(value, fields...)
	case *models.CredentialRequest:
		return v.validateCredentialRequest(*value, fields...)

	case models.CredentialPayload:
		return v.validateCredentialRequest(models.CredentialRequestFrom(value), fields...)

	case models.NotificationPayload:
		return v.validateNotification(value, fields...)
	case *models.NotificationPayload:
		return v.validateNotification(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsDID reports whether s looks like a decentralized identifier
// (did:<method>:<id>).
func IsDID(s string) bool {
	parts := strings.SplitN(s, ":", 3)
	return len(parts) == 3 && parts[0] == "did" && parts[1] != "" && parts[2] != ""
}

func (v *RecordValidator) validateSecret(secret models.SecretPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlatform, FieldAccountName, FieldSecretPhrase}
	}

	for _, f := range fields {
		switch f {
		case FieldPlatform:
			if strings.TrimSpace(secret.Platform) == "" {
				return ErrEmptyPlatform
			}
		case FieldAccountName:
			if strings.TrimSpace(secret.AccountName) == "" {
				return ErrEmptyAccountName
			}
		case FieldSecretPhrase:
			if secret.SecretPhrase == "" {
				return ErrEmptySecretPhrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateBeneficiary(ben models.BeneficiaryPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(ben.Name) == "" {
				return ErrEmptyName
			}
		case FieldDID:
			if !IsDID(ben.DID) {
				return ErrInvalidDID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCredentialRequest(req models.CredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldTitle, FieldSubjectTarget}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if strings.TrimSpace(req.Type) == "" {
				return ErrEmptyCredentialType
			}
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldSubjectTarget:
			// the target is optional; when given it must be a DID
			if req.SubjectTarget != "" && !IsDID(req.SubjectTarget) {
				return ErrInvalidDID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateNotification(n models.NotificationPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldRecipientDID}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(n.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldRecipientDID:
			if !IsDID(n.RecipientDID) {
				return ErrInvalidDID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
