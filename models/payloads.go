// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordPayload is the kind-specific content of a [VaultRecord]. The set of
// implementations is closed: [CredentialPayload], [SecretPayload],
// [BeneficiaryPayload] and [NotificationPayload].
type RecordPayload interface {
	Kind() RecordKind
}

// CredentialPayload is the decoded content of a credential record.
// IssuerDID and SubjectDID are always equal: credentials are self-issued by a
// freshly minted identifier. SubjectTarget is the logical recipient chosen by
// the caller and travels inside the signed claims.
type CredentialPayload struct {
	IssuerDID         string `json:"issuer_did,omitempty"`
	SubjectDID        string `json:"subject_did,omitempty"`
	CredentialType    string `json:"type"`
	Title             string `json:"title"`
	Body              string `json:"description"`
	AttachmentEncoded string `json:"attachment,omitempty"`
	SubjectTarget     string `json:"subject,omitempty"`
}

func (CredentialPayload) Kind() RecordKind { return Credential }

// SecretPayload holds a secret phrase for an account on some platform.
type SecretPayload struct {
	Platform     string    `json:"platform"`
	AccountName  string    `json:"account_name"`
	SecretPhrase string    `json:"phrase"`
	CreatedAt    time.Time `json:"created"`
}

func (SecretPayload) Kind() RecordKind { return Secret }

// SecretEnvelope is the stored form of a secret: a group tag plus payload.
type SecretEnvelope struct {
	Group   string        `json:"group"`
	Payload SecretPayload `json:"payload"`
}

// BeneficiaryPayload is a named DID. Records can be transferred to it and
// credentials can name it as their subject target.
type BeneficiaryPayload struct {
	Name         string `json:"benName"`
	DID          string `json:"benDid,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

func (BeneficiaryPayload) Kind() RecordKind { return Beneficiary }

// BeneficiaryRef is the answer to a DID lookup.
type BeneficiaryRef struct {
	Name string `json:"name"`
	DID  string `json:"did,omitempty"`
}

// NewBeneficiaryRef drops the stored-only fields of b.
func NewBeneficiaryRef(b BeneficiaryPayload) BeneficiaryRef {
	return BeneficiaryRef{Name: b.Name, DID: b.DID}
}

// PersonalBeneficiary is returned when a DID does not belong to any stored
// beneficiary: the record is owned by the vault holder.
var PersonalBeneficiary = BeneficiaryPayload{Name: "Personal"}

// NotificationPayload is a plain-text message addressed to a recipient DID.
type NotificationPayload struct {
	Message      string `json:"message"`
	RecipientDID string `json:"recipient_did"`
}

func (NotificationPayload) Kind() RecordKind { return Notification }

// CredentialRequest carries the caller-supplied fields of a credential to be
// issued or re-issued.
type CredentialRequest struct {
	Type          string `json:"type"`
	SubjectTarget string `json:"subject"`
	Title         string `json:"title"`
	Body          string `json:"description"`
	Attachment    string `json:"attachment,omitempty"`
}

// CredentialRequestFrom builds a request from a credential payload.
func CredentialRequestFrom(p CredentialPayload) CredentialRequest {
	return CredentialRequest{
		Type:          p.CredentialType,
		SubjectTarget: p.SubjectTarget,
		Title:         p.Title,
		Body:          p.Body,
		Attachment:    p.AttachmentEncoded,
	}
}
