// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// RecordKind defines the semantic type of a vault record.
// The value determines how the record is addressed in the store and how its
// content must be decoded.
type RecordKind int

const (
	// Credential is a self-issued verifiable credential stored as a signed token.
	Credential RecordKind = iota + 1

	// Secret is a platform/account/phrase triple stored as a tagged group object.
	Secret

	// Beneficiary is a named decentralized identifier that records can be
	// transferred to.
	Beneficiary

	// Notification is a transient text message forwarded to a beneficiary and
	// never retained by the local store.
	Notification
)

var kindNames = map[RecordKind]string{
	Credential:   "Credential",
	Secret:       "Secret",
	Beneficiary:  "Beneficiary",
	Notification: "Notification",
}

// String returns the label of the kind. For Secret this label is also the
// group name used by the aggregated view.
func (k RecordKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RecordKind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k RecordKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseRecordKind converts a case-insensitive label into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	for kind, name := range kindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k RecordKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *RecordKind) UnmarshalText(text []byte) error {
	kind, err := ParseRecordKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
