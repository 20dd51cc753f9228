// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity provides the decentralized-identifier and verifiable
// credential primitives used by the vault: minting self-certifying did:key
// identifiers, building credentials, signing them as EdDSA JWTs and parsing
// signed tokens back with signature verification.
//
// The vault only depends on the [Service] interface, so a different DID
// method or credential format can be plugged in without touching the
// service layer.
package identity

import (
	"crypto/ed25519"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_service_mock.go -package=mock

// Service groups the DID and credential primitives.
type Service interface {
	// MintDID creates a fresh identifier together with its key material.
	MintDID() (PortableDID, error)

	// BuildCredential assembles an unsigned credential. Issuer and Subject
	// must be non-empty.
	BuildCredential(req CredentialSpec) (Credential, error)

	// SignCredential signs cred with the private key of did and returns the
	// compact JWT. did.DID must equal cred.Issuer.
	SignCredential(cred Credential, did PortableDID) (string, error)

	// ParseCredential verifies token against the key embedded in its issuer
	// DID and returns the credential fields.
	ParseCredential(token string) (ParsedCredential, error)
}

// PortableDID is an identifier with the key material needed to sign as it.
type PortableDID struct {
	DID        string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// KeyID returns the verification method id used in JWT headers.
func (p PortableDID) KeyID() string {
	if len(p.DID) <= len(didKeyPrefix) {
		return p.DID
	}
	return p.DID + "#" + p.DID[len(didKeyPrefix):]
}

// CredentialSpec is the input of [Service.BuildCredential].
type CredentialSpec struct {
	Type    string
	Issuer  string
	Subject string
	Data    map[string]any
}

// Credential is an unsigned verifiable credential.
type Credential struct {
	ID           string
	Types        []string
	Issuer       string
	Subject      string
	IssuanceDate time.Time
	Data         map[string]any
}

// ParsedCredential is the content of a verified credential token.
type ParsedCredential struct {
	ID           string
	Type         string
	Issuer       string
	Subject      string
	IssuanceDate time.Time
	Fields       map[string]any
}

// StringField returns the subject field name as a string, or "" when it is
// missing or not a string.
func (p ParsedCredential) StringField(name string) string {
	v, _ := p.Fields[name].(string)
	return v
}
