// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/utils"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// records holds the behaviour shared by the local stores: id minting, the
// outbox of records created with Persist=false, the installed protocol and
// forwarding through the injected sender.
type records struct {
	author string
	sender adapter.Sender
	ids    *utils.UUIDGenerator
	now    func() time.Time

	mu       sync.RWMutex
	outbox   map[string]models.RecordHandle
	protocol *models.ProtocolDefinition
}

func newRecords(author string, sender adapter.Sender) *records {
	return &records{
		author: author,
		sender: sender,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		outbox: make(map[string]models.RecordHandle),
	}
}

// newHandle validates req against the installed protocol and mints the
// handle of the record to be written. A zero status means the request is
// acceptable.
func (r *records) newHandle(req models.CreateRequest) (models.Status, models.RecordHandle, error) {
	if req.Address.ProtocolID == "" || req.Address.ProtocolPath == "" {
		return models.Status{Code: http.StatusBadRequest, Detail: "record descriptor is incomplete"}, models.RecordHandle{}, nil
	}

	r.mu.RLock()
	def := r.protocol
	r.mu.RUnlock()
	if def != nil {
		if def.Protocol != req.Address.ProtocolID {
			return models.Status{Code: http.StatusBadRequest, Detail: "protocol is not installed"}, models.RecordHandle{}, nil
		}
		if _, ok := def.Structure[req.Address.ProtocolPath]; !ok {
			return models.Status{Code: http.StatusBadRequest, Detail: "protocol path is not defined"}, models.RecordHandle{}, nil
		}
	}

	id, err := newRecordID(r.ids.Generate(), req.Data)
	if err != nil {
		return models.Status{}, models.RecordHandle{}, adapter.Fault("mint record id", err)
	}

	data := make([]byte, len(req.Data))
	copy(data, req.Data)

	return models.Status{}, models.RecordHandle{
		ID:          id,
		Address:     req.Address,
		Data:        data,
		DateCreated: r.now().UTC(),
		Persisted:   req.Persist,
	}, nil
}

// hold keeps a non-persisted record until it is sent or deleted.
func (r *records) hold(record models.RecordHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outbox[record.ID] = record
}

func (r *records) held(recordID string) (models.RecordHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.outbox[recordID]
	return record, ok
}

func (r *records) release(recordID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.outbox[recordID]
	delete(r.outbox, recordID)
	return ok
}

func (r *records) replaceHeld(recordID string, data []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.outbox[recordID]
	if !ok {
		return false
	}
	record.Data = append([]byte(nil), data...)
	r.outbox[recordID] = record
	return true
}

// send forwards record through the injected sender. Once the remote store
// accepts a held record it leaves the outbox.
func (r *records) send(ctx context.Context, record models.RecordHandle, targetDID string) (models.Status, error) {
	log := logger.FromContext(ctx)

	if r.sender == nil {
		return models.Status{}, adapter.Fault("send record", ErrNoForwarder)
	}
	if targetDID == "" {
		return models.Status{Code: http.StatusBadRequest, Detail: "target DID is empty"}, nil
	}

	status, err := r.sender.Send(ctx, record, targetDID)
	if err != nil {
		if errors.Is(err, models.ErrAdapter) {
			return models.Status{}, err
		}
		return models.Status{}, adapter.Fault("send record", err)
	}

	if status.Code == models.StatusAccepted && !record.Persisted {
		if r.release(record.ID) {
			log.Debug().Str("func", "records.send").
				Str("record_id", record.ID).
				Msg("held record delivered and released")
		}
	}

	return status, nil
}

func (r *records) configure(def models.ProtocolDefinition) models.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.protocol = &def
	return models.NewStatus(models.StatusAccepted)
}

func matches(filter models.QueryFilter, author string, address models.AddressDescriptor) bool {
	if filter.ProtocolID != "" && filter.ProtocolID != address.ProtocolID {
		return false
	}
	if filter.SchemaURI != "" && filter.SchemaURI != address.SchemaURI {
		return false
	}
	if filter.DataFormat != "" && filter.DataFormat != address.DataFormat {
		return false
	}
	if filter.From != "" && filter.From != author {
		return false
	}
	return true
}
