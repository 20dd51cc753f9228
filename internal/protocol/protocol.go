// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol maps every record kind to the protocol path, schema and
// data format that the record store expects for it.
//
// Writers and readers of the same kind must agree on the triad, so the
// mapping lives in one fixed table ([AddressFor]) instead of being assembled
// at each call site.
package protocol

import "github.com/MKhiriev/go-legacy-vault/models"

// URI identifies the vault protocol in the record store.
const URI = "https://legacy-vault/protocol"

const (
	formatJSON = "application/json"
	formatText = "text/plain"
)

var addresses = map[models.RecordKind]models.AddressDescriptor{
	models.Credential: {
		ProtocolID:   URI,
		ProtocolPath: "credential",
		SchemaURI:    "https://legacy-vault/credential",
		DataFormat:   formatText,
	},
	models.Secret: {
		ProtocolID:   URI,
		ProtocolPath: "pass",
		SchemaURI:    "https://legacy-vault/pass",
		DataFormat:   formatJSON,
	},
	models.Beneficiary: {
		ProtocolID:   URI,
		ProtocolPath: "beneficiary",
		SchemaURI:    "https://legacy-vault/beneficiary",
		DataFormat:   formatJSON,
	},
	models.Notification: {
		ProtocolID:   URI,
		ProtocolPath: "notification",
		SchemaURI:    "https://legacy-vault/notification",
		DataFormat:   formatText,
	},
}

// AddressFor returns the address descriptor of kind. The table covers every
// declared kind; for a value outside the enumeration (see
// [models.RecordKind.Valid]) the zero descriptor is returned.
func AddressFor(kind models.RecordKind) models.AddressDescriptor {
	return addresses[kind]
}

// Kinds lists the record kinds in declaration order.
func Kinds() []models.RecordKind {
	return []models.RecordKind{
		models.Credential,
		models.Secret,
		models.Beneficiary,
		models.Notification,
	}
}

// KindForPath resolves a protocol path back to its record kind.
func KindForPath(path string) (models.RecordKind, bool) {
	for kind, address := range addresses {
		if address.ProtocolPath == path {
			return kind, true
		}
	}
	return 0, false
}

// Filter returns the query filter selecting every record of kind.
func Filter(kind models.RecordKind) models.QueryFilter {
	address := AddressFor(kind)
	return models.QueryFilter{
		ProtocolID: address.ProtocolID,
		SchemaURI:  address.SchemaURI,
	}
}

// Definition returns the protocol document stores install before accepting
// vault records. Notifications can be written by anyone so that beneficiaries
// receive them; everything else is readable only by its recipient.
func Definition() models.ProtocolDefinition {
	def := models.ProtocolDefinition{
		Protocol:  URI,
		Published: true,
		Types:     make(map[string]models.ProtocolType, len(addresses)),
		Structure: make(map[string]models.ProtocolRule, len(addresses)),
	}

	for _, kind := range Kinds() {
		address := addresses[kind]
		def.Types[address.ProtocolPath] = models.ProtocolType{
			Schema:      address.SchemaURI,
			DataFormats: []string{address.DataFormat},
		}

		rule := models.ProtocolRule{Actions: []models.ProtocolAction{{Who: "recipient", Can: "read"}}}
		if kind == models.Notification {
			rule.Actions = append(rule.Actions, models.ProtocolAction{Who: "anyone", Can: "write"})
		}
		def.Structure[address.ProtocolPath] = rule
	}

	return def
}
