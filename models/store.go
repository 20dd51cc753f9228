// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"net/http"
	"time"
)

// Store-native status codes the vault relies on.
const (
	StatusOK       = http.StatusOK
	StatusAccepted = http.StatusAccepted
)

// Status is the store-native reply of a record store operation.
type Status struct {
	Code   int    `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// NewStatus returns a status with the canonical text for code as detail.
func NewStatus(code int) Status {
	return Status{Code: code, Detail: http.StatusText(code)}
}

// RecordHandle is a record as returned by the store.
type RecordHandle struct {
	ID          string            `json:"record_id"`
	Address     AddressDescriptor `json:"descriptor"`
	Data        []byte            `json:"data"`
	DateCreated time.Time         `json:"date_created"`
	Persisted   bool              `json:"persisted"`
}

// Text returns the raw record content.
func (r RecordHandle) Text() string {
	return string(r.Data)
}

// JSON decodes the record content into v.
func (r RecordHandle) JSON(v any) error {
	return json.Unmarshal(r.Data, v)
}

// CreateRequest describes a record to be written.
// Persist=false asks the store to hold the record only until it is sent.
type CreateRequest struct {
	Data    []byte            `json:"data"`
	Address AddressDescriptor `json:"descriptor"`
	Persist bool              `json:"persist"`
}

// QueryFilter selects records by protocol and schema. From, when set, scopes
// the query to the store of another DID.
type QueryFilter struct {
	ProtocolID string `json:"protocol"`
	SchemaURI  string `json:"schema"`
	DataFormat string `json:"data_format,omitempty"`
	From       string `json:"from,omitempty"`
}

// SendRequest is the body forwarded to a remote store.
type SendRequest struct {
	Target string       `json:"target"`
	Record RecordHandle `json:"record"`
}
