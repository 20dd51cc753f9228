package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/identity"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/protocol"
	"github.com/MKhiriev/go-legacy-vault/internal/workers"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// VaultOptions are the deployment-specific settings of the vault service.
type VaultOptions struct {
	// OwnerDID receives a copy of every new secret when set.
	OwnerDID string
	// CredentialSource scopes credential queries to another DID's store.
	CredentialSource string
	// TransferConcurrency bounds the sends of a group transfer.
	TransferConcurrency int
}

type vaultService struct {
	store    adapter.RecordStore
	issuer   CredentialIssuer
	identity identity.Service
	pool     *workers.Pool
	metrics  *metrics.Metrics
	opts     VaultOptions
	logger   *logger.Logger
}

func NewVaultService(store adapter.RecordStore, issuer CredentialIssuer, ids identity.Service, m *metrics.Metrics, opts VaultOptions, logger *logger.Logger) VaultService {
	return &vaultService{
		store:    store,
		issuer:   issuer,
		identity: ids,
		pool:     workers.NewPool(opts.TransferConcurrency),
		metrics:  m,
		opts:     opts,
		logger:   logger,
	}
}

// Create writes payload as a new record of kind. Credentials go through the
// issuer; notifications are held only until they are forwarded (see Notify).
func (v *vaultService) Create(ctx context.Context, kind models.RecordKind, payload models.RecordPayload) (int, error) {
	log := logger.FromContext(ctx)

	if payload == nil || payload.Kind() != kind {
		return 0, fmt.Errorf("%w: payload does not match kind %s", ErrInvalidPayload, kind)
	}

	switch p := payload.(type) {
	case models.CredentialPayload:
		code, err := v.issuer.Issue(ctx, models.CredentialRequestFrom(p))
		if err == nil {
			v.metrics.RecordsCreated.WithLabelValues(kind.String()).Inc()
		}
		return code, err
	case models.NotificationPayload:
		return v.Notify(ctx, p.Message, p.RecipientDID)
	}

	data, err := encodePayload(payload)
	if err != nil {
		return 0, err
	}

	status, record, err := v.store.Create(ctx, models.CreateRequest{
		Data:    data,
		Address: protocol.AddressFor(kind),
		Persist: true,
	})
	if err = v.check("create", status, err, models.StatusAccepted); err != nil {
		log.Err(err).Str("func", "vaultService.Create").
			Str("kind", kind.String()).
			Msg("failed to create record")
		return status.Code, err
	}
	v.metrics.RecordsCreated.WithLabelValues(kind.String()).Inc()

	if kind == models.Secret && v.opts.OwnerDID != "" {
		// the write already succeeded; a failed copy to the owner is only logged
		sendStatus, sendErr := v.store.Send(ctx, record, v.opts.OwnerDID)
		if sendErr = v.check("send", sendStatus, sendErr, models.StatusAccepted); sendErr != nil {
			log.Err(sendErr).Str("func", "vaultService.Create").
				Str("record_id", record.ID).
				Msg("failed to send secret to owner store")
		}
	}

	return status.Code, nil
}

// Get queries every record of kind and decodes it.
func (v *vaultService) Get(ctx context.Context, kind models.RecordKind) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, kind)
	}

	filter := protocol.Filter(kind)
	if kind == models.Credential {
		filter.From = v.opts.CredentialSource
	}

	status, handles, err := v.store.Query(ctx, filter)
	if err = v.check("query", status, err, models.StatusOK); err != nil {
		log.Err(err).Str("func", "vaultService.Get").
			Str("kind", kind.String()).
			Msg("failed to query records")
		return nil, err
	}

	result := make([]models.VaultRecord, 0, len(handles))
	for _, handle := range handles {
		record, decodeErr := v.decode(kind, handle)
		if decodeErr != nil {
			log.Err(decodeErr).Str("func", "vaultService.Get").
				Str("record_id", handle.ID).
				Msg("failed to decode record")
			return nil, decodeErr
		}
		result = append(result, record)
	}

	return result, nil
}

// GetAggregated folds credentials and secrets into groups. Both queries run
// concurrently; credentials are merged first, each in store order, and
// groups keep first-seen order.
func (v *vaultService) GetAggregated(ctx context.Context) (models.GroupedAssets, error) {
	var credentials, secrets []models.VaultRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		credentials, err = v.Get(gctx, models.Credential)
		return err
	})
	g.Go(func() error {
		var err error
		secrets, err = v.Get(gctx, models.Secret)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return groupRecords(slices.Concat(credentials, secrets)), nil
}

func groupRecords(records []models.VaultRecord) models.GroupedAssets {
	assets := models.GroupedAssets{}
	index := make(map[string]int)

	for _, record := range records {
		i, ok := index[record.Group]
		if !ok {
			i = len(assets)
			index[record.Group] = i
			assets = append(assets, models.AssetGroup{Group: record.Group})
		}
		assets[i].Records = append(assets[i].Records, record)
	}

	return assets
}

// GetByGroup returns the records of one aggregated group.
func (v *vaultService) GetByGroup(ctx context.Context, group string) ([]models.VaultRecord, error) {
	assets, err := v.GetAggregated(ctx)
	if err != nil {
		return nil, err
	}

	asset, ok := assets.Find(group)
	if !ok {
		return nil, fmt.Errorf("%w: group %q", models.ErrNotFound, group)
	}

	return asset.Records, nil
}

// Update replaces the content of a record in place. Credentials are
// re-issued under a new DID.
func (v *vaultService) Update(ctx context.Context, recordID string, kind models.RecordKind, payload models.RecordPayload) (int, error) {
	log := logger.FromContext(ctx).WithRecord(recordID)

	if payload == nil || payload.Kind() != kind {
		return 0, fmt.Errorf("%w: payload does not match kind %s", ErrInvalidPayload, kind)
	}

	switch p := payload.(type) {
	case models.CredentialPayload:
		return v.issuer.Reissue(ctx, recordID, models.CredentialRequestFrom(p))
	case models.NotificationPayload:
		return 0, fmt.Errorf("%w: notifications cannot be updated", ErrUnsupportedKind)
	}

	status, record, err := v.store.Read(ctx, recordID)
	if err = v.check("read", status, err, models.StatusOK); err != nil {
		log.Err(err).Str("func", "vaultService.Update").Msg("failed to read record")
		return status.Code, err
	}

	if stored, _ := protocol.KindForPath(record.Address.ProtocolPath); stored != kind {
		return 0, fmt.Errorf("%w: record %s is a %s, not a %s", ErrInvalidPayload, recordID, stored, kind)
	}

	data, err := encodePayload(payload)
	if err != nil {
		return 0, err
	}

	status, err = v.store.Update(ctx, record, data)
	if err = v.check("update", status, err, models.StatusAccepted); err != nil {
		log.Err(err).Str("func", "vaultService.Update").Msg("failed to update record")
		return status.Code, err
	}

	return status.Code, nil
}

// Delete removes a record. An unknown id is reported as a store error.
func (v *vaultService) Delete(ctx context.Context, recordID string) (int, error) {
	status, err := v.store.Delete(ctx, recordID)
	if err = v.check("delete", status, err, models.StatusAccepted); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.Delete").
			Str("record_id", recordID).
			Msg("failed to delete record")
		return status.Code, err
	}

	return status.Code, nil
}

func (v *vaultService) ListBeneficiaries(ctx context.Context) ([]models.VaultRecord, error) {
	return v.Get(ctx, models.Beneficiary)
}

func (v *vaultService) ResolveBeneficiary(ctx context.Context, did string) (models.BeneficiaryPayload, error) {
	beneficiaries, err := v.ListBeneficiaries(ctx)
	if err != nil {
		return models.BeneficiaryPayload{}, err
	}

	for _, record := range beneficiaries {
		if ben, ok := record.Payload.(models.BeneficiaryPayload); ok && ben.DID == did {
			return ben, nil
		}
	}

	return models.PersonalBeneficiary, nil
}

// TransferOne reads a record and forwards it to the beneficiary's store.
func (v *vaultService) TransferOne(ctx context.Context, recordID, beneficiaryDID string) (int, error) {
	log := logger.FromContext(ctx).WithRecord(recordID)

	status, record, err := v.store.Read(ctx, recordID)
	if err = v.check("read", status, err, models.StatusOK); err != nil {
		v.metrics.Transfers.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Err(err).Str("func", "vaultService.TransferOne").Msg("failed to read record for transfer")
		return status.Code, err
	}

	status, err = v.store.Send(ctx, record, beneficiaryDID)
	if err = v.check("send", status, err, models.StatusAccepted); err != nil {
		v.metrics.Transfers.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Err(err).Str("func", "vaultService.TransferOne").
			Str("beneficiary", beneficiaryDID).
			Msg("failed to send record")
		return status.Code, err
	}

	v.metrics.Transfers.WithLabelValues(metrics.OutcomeAccepted).Inc()
	return status.Code, nil
}

// TransferGroup forwards every record of group independently. The batch is
// best effort and not atomic: failed records are logged and listed in the
// result, and the result status stays 202.
func (v *vaultService) TransferGroup(ctx context.Context, group, beneficiaryDID string) (models.BatchResult, error) {
	log := logger.FromContext(ctx)

	records, err := v.GetByGroup(ctx, group)
	if err != nil {
		return models.BatchResult{}, err
	}

	jobs := make([]workers.Worker, len(records))
	items := make([]models.TransferOutcome, len(records))
	for i, record := range records {
		items[i].RecordID = record.RecordID
		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			code, err := v.TransferOne(ctx, record.RecordID, beneficiaryDID)
			items[i].Status = code
			return err
		})
	}

	for i, err := range v.pool.Run(ctx, jobs...) {
		if err != nil {
			items[i].Error = err.Error()
			log.Err(err).Str("func", "vaultService.TransferGroup").
				Str("group", group).
				Str("record_id", items[i].RecordID).
				Msg("record transfer failed")
		}
	}

	return models.BatchResult{Status: models.StatusAccepted, Items: items}, nil
}

// Notify creates a non-persisted notification and forwards it at once. A
// notification that could not be delivered is discarded.
func (v *vaultService) Notify(ctx context.Context, message, beneficiaryDID string) (int, error) {
	log := logger.FromContext(ctx)

	status, record, err := v.store.Create(ctx, models.CreateRequest{
		Data:    []byte(message),
		Address: protocol.AddressFor(models.Notification),
		Persist: false,
	})
	if err = v.check("create", status, err, models.StatusAccepted); err != nil {
		log.Err(err).Str("func", "vaultService.Notify").Msg("failed to create notification")
		return status.Code, err
	}

	status, err = v.store.Send(ctx, record, beneficiaryDID)
	if err = v.check("send", status, err, models.StatusAccepted); err != nil {
		log.Err(err).Str("func", "vaultService.Notify").
			Str("beneficiary", beneficiaryDID).
			Msg("failed to send notification")
		if _, delErr := v.store.Delete(ctx, record.ID); delErr != nil {
			log.Err(delErr).Str("func", "vaultService.Notify").Msg("failed to discard notification")
		}
		return status.Code, err
	}

	v.metrics.RecordsCreated.WithLabelValues(models.Notification.String()).Inc()
	return status.Code, nil
}

// check turns a store reply into an error: faults are returned as is and an
// unexpected status becomes an [*adapter.StatusError]. Failures are counted
// per operation.
func (v *vaultService) check(op string, status models.Status, err error, expected ...int) error {
	if err == nil {
		err = adapter.CheckStatus(op, status, expected...)
	}
	if err != nil {
		v.metrics.StoreFailures.WithLabelValues(op).Inc()
	}
	return err
}

func encodePayload(payload models.RecordPayload) ([]byte, error) {
	var v any = payload
	if secret, ok := payload.(models.SecretPayload); ok {
		v = models.SecretEnvelope{Group: models.Secret.String(), Payload: secret}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrInvalidPayload, payload.Kind(), err)
	}
	return data, nil
}

// decode turns a stored record into a VaultRecord of kind.
func (v *vaultService) decode(kind models.RecordKind, handle models.RecordHandle) (models.VaultRecord, error) {
	record := models.VaultRecord{
		RecordID:  handle.ID,
		Kind:      kind,
		Group:     kind.String(),
		CreatedAt: handle.DateCreated,
	}

	switch kind {
	case models.Credential:
		parsed, err := v.identity.ParseCredential(handle.Text())
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: credential %s: %w", models.ErrDecode, handle.ID, err)
		}
		record.Group = parsed.Type
		record.CreatedAt = parsed.IssuanceDate
		record.Payload = models.CredentialPayload{
			IssuerDID:         parsed.Issuer,
			SubjectDID:        parsed.Subject,
			CredentialType:    parsed.Type,
			Title:             parsed.StringField(fieldTitle),
			Body:              parsed.StringField(fieldDescription),
			AttachmentEncoded: parsed.StringField(fieldAttachment),
			SubjectTarget:     parsed.StringField(fieldSubjectTarget),
		}

	case models.Secret:
		var envelope models.SecretEnvelope
		if err := handle.JSON(&envelope); err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: secret %s: %w", models.ErrDecode, handle.ID, err)
		}
		if envelope.Group != "" {
			record.Group = envelope.Group
		}
		if !envelope.Payload.CreatedAt.IsZero() {
			record.CreatedAt = envelope.Payload.CreatedAt
		}
		record.Payload = envelope.Payload

	case models.Beneficiary:
		var ben models.BeneficiaryPayload
		if err := handle.JSON(&ben); err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: beneficiary %s: %w", models.ErrDecode, handle.ID, err)
		}
		record.Payload = ben

	case models.Notification:
		record.Payload = models.NotificationPayload{Message: handle.Text()}
	}

	return record, nil
}
