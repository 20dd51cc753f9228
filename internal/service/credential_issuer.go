package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/identity"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/protocol"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// Credential subject field names.
const (
	fieldTitle         = "title"
	fieldDescription   = "description"
	fieldAttachment    = "attachment"
	fieldSubjectTarget = "subjectTarget"
)

type credentialIssuer struct {
	store    adapter.RecordStore
	identity identity.Service
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewCredentialIssuer(store adapter.RecordStore, ids identity.Service, m *metrics.Metrics, logger *logger.Logger) CredentialIssuer {
	return &credentialIssuer{
		store:    store,
		identity: ids,
		metrics:  m,
		logger:   logger,
	}
}

func (c *credentialIssuer) Issue(ctx context.Context, req models.CredentialRequest) (int, error) {
	log := logger.FromContext(ctx)

	token, issuer, err := c.sign(req)
	if err != nil {
		log.Err(err).Str("func", "credentialIssuer.Issue").
			Str("type", req.Type).
			Msg("failed to sign credential")
		return 0, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}

	status, _, err := c.store.Create(ctx, models.CreateRequest{
		Data:    []byte(token),
		Address: protocol.AddressFor(models.Credential),
		Persist: true,
	})
	if err == nil {
		err = adapter.CheckStatus("create credential", status, models.StatusAccepted)
	}
	if err != nil {
		c.metrics.StoreFailures.WithLabelValues("create").Inc()
		log.Err(err).Str("func", "credentialIssuer.Issue").
			Str("issuer", issuer).
			Msg("failed to write credential")
		return status.Code, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}

	c.metrics.CredentialsIssued.Inc()
	log.Info().Str("func", "credentialIssuer.Issue").
		Str("issuer", issuer).
		Str("type", req.Type).
		Msg("credential issued")

	return status.Code, nil
}

func (c *credentialIssuer) Reissue(ctx context.Context, recordID string, req models.CredentialRequest) (int, error) {
	log := logger.FromContext(ctx).WithRecord(recordID)

	status, record, err := c.store.Read(ctx, recordID)
	if err == nil {
		err = adapter.CheckStatus("read credential", status, models.StatusOK)
	}
	if err != nil {
		log.Err(err).Str("func", "credentialIssuer.Reissue").Msg("failed to read credential record")
		return status.Code, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}

	if kind, _ := protocol.KindForPath(record.Address.ProtocolPath); kind != models.Credential {
		return 0, fmt.Errorf("%w: %w: record %s is not a credential", ErrCredentialIssuance, ErrInvalidPayload, recordID)
	}

	token, issuer, err := c.sign(req)
	if err != nil {
		log.Err(err).Str("func", "credentialIssuer.Reissue").Msg("failed to sign credential")
		return 0, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}

	status, err = c.store.Update(ctx, record, []byte(token))
	if err == nil {
		err = adapter.CheckStatus("update credential", status, models.StatusAccepted)
	}
	if err != nil {
		c.metrics.StoreFailures.WithLabelValues("update").Inc()
		log.Err(err).Str("func", "credentialIssuer.Reissue").Msg("failed to replace credential")
		return status.Code, fmt.Errorf("%w: %w", ErrCredentialIssuance, err)
	}

	c.metrics.CredentialsIssued.Inc()
	log.Info().Str("func", "credentialIssuer.Reissue").
		Str("issuer", issuer).
		Msg("credential re-issued")

	return status.Code, nil
}

// sign mints a fresh DID and returns the credential token signed by it
// together with the DID.
func (c *credentialIssuer) sign(req models.CredentialRequest) (string, string, error) {
	did, err := c.identity.MintDID()
	if err != nil {
		return "", "", fmt.Errorf("%w: mint did: %w", models.ErrSigning, err)
	}

	cred, err := c.identity.BuildCredential(identity.CredentialSpec{
		Type:    req.Type,
		Issuer:  did.DID,
		Subject: did.DID,
		Data: map[string]any{
			fieldTitle:         req.Title,
			fieldDescription:   req.Body,
			fieldAttachment:    req.Attachment,
			fieldSubjectTarget: req.SubjectTarget,
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: build credential: %w", models.ErrSigning, err)
	}

	token, err := c.identity.SignCredential(cred, did)
	if err != nil {
		return "", "", fmt.Errorf("%w: sign credential: %w", models.ErrSigning, err)
	}

	return token, did.DID, nil
}
