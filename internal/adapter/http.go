// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/utils"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// reply is the envelope every relay endpoint answers with.
type reply struct {
	Status  models.Status         `json:"status"`
	Record  *models.RecordHandle  `json:"record,omitempty"`
	Entries []models.RecordHandle `json:"entries,omitempty"`
}

type httpRecordStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// HTTPRecordStore is the remote [RecordStore]. It also implements
// [ProtocolConfigurer].
type HTTPRecordStore interface {
	RecordStore
	ProtocolConfigurer
}

// NewHTTPRecordStore constructs a [RecordStore] backed by a record store
// relay reachable at cfg.HTTPAddress. The address is normalised to
// scheme://host[:port], every request is bounded by cfg.RequestTimeout and,
// when cfg.HashKey is set, request bodies are signed with an HMAC header.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPRecordStore(cfg config.Adapter, logger *logger.Logger) (HTTPRecordStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithBodyHash(cfg.HashKey)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpRecordStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [RecordStore]. It POSTs req to /records.
func (h *httpRecordStore) Create(ctx context.Context, req models.CreateRequest) (models.Status, models.RecordHandle, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/records")
	if err != nil {
		return models.Status{}, models.RecordHandle{}, Fault("create record request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, models.RecordHandle{}, Fault("create record reply", err)
	}
	return r.Status, r.record(), nil
}

// Query implements [RecordStore]. It POSTs filter to /records/query.
func (h *httpRecordStore) Query(ctx context.Context, filter models.QueryFilter) (models.Status, []models.RecordHandle, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(filter).
		Post("/records/query")
	if err != nil {
		return models.Status{}, nil, Fault("query records request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, nil, Fault("query records reply", err)
	}
	return r.Status, r.Entries, nil
}

// Read implements [RecordStore]. It GETs /records/{id}.
func (h *httpRecordStore) Read(ctx context.Context, recordID string) (models.Status, models.RecordHandle, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", recordID).
		Get("/records/{id}")
	if err != nil {
		return models.Status{}, models.RecordHandle{}, Fault("read record request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, models.RecordHandle{}, Fault("read record reply", err)
	}
	return r.Status, r.record(), nil
}

// Update implements [RecordStore]. It PUTs the new content to /records/{id}.
func (h *httpRecordStore) Update(ctx context.Context, record models.RecordHandle, data []byte) (models.Status, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", record.ID).
		SetBody(map[string][]byte{"data": data}).
		Put("/records/{id}")
	if err != nil {
		return models.Status{}, Fault("update record request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, Fault("update record reply", err)
	}
	return r.Status, nil
}

// Delete implements [RecordStore]. It DELETEs /records/{id}.
func (h *httpRecordStore) Delete(ctx context.Context, recordID string) (models.Status, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", recordID).
		Delete("/records/{id}")
	if err != nil {
		return models.Status{}, Fault("delete record request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, Fault("delete record reply", err)
	}
	return r.Status, nil
}

// Send implements [Sender]. The whole record travels in the body so that
// records the relay never stored (notifications) can be delivered too.
func (h *httpRecordStore) Send(ctx context.Context, record models.RecordHandle, targetDID string) (models.Status, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", record.ID).
		SetBody(models.SendRequest{Target: targetDID, Record: record}).
		Post("/records/{id}/send")
	if err != nil {
		return models.Status{}, Fault("send record request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, Fault("send record reply", err)
	}

	h.logger.Debug().
		Str("func", "httpRecordStore.Send").
		Str("record_id", record.ID).
		Str("target", targetDID).
		Int("status", r.Status.Code).
		Msg("record forwarded")
	return r.Status, nil
}

// ConfigureProtocol implements [ProtocolConfigurer]. It POSTs def to
// /protocols.
func (h *httpRecordStore) ConfigureProtocol(ctx context.Context, def models.ProtocolDefinition) (models.Status, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(def).
		Post("/protocols")
	if err != nil {
		return models.Status{}, Fault("configure protocol request", err)
	}

	r, err := decodeReply(resp)
	if err != nil {
		return models.Status{}, Fault("configure protocol reply", err)
	}
	return r.Status, nil
}

// decodeReply reads the relay envelope. Replies without an envelope (a
// proxy error page, an empty 5xx) take their status from the HTTP response.
func decodeReply(resp *resty.Response) (reply, error) {
	var r reply
	body := resp.Body()

	if len(strings.TrimSpace(string(body))) > 0 && json.Unmarshal(body, &r) == nil && r.Status.Code != 0 {
		return r, nil
	}

	if resp.IsSuccess() {
		return reply{}, fmt.Errorf("reply %d carries no status", resp.StatusCode())
	}

	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = resp.Status()
	}
	return reply{Status: models.Status{Code: resp.StatusCode(), Detail: detail}}, nil
}

func (r reply) record() models.RecordHandle {
	if r.Record == nil {
		return models.RecordHandle{}
	}
	return *r.Record
}
