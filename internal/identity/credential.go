// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	credentialContext = "https://www.w3.org/2018/credentials/v1"
	baseType          = "VerifiableCredential"
)

// vcDataModel is the "vc" claim of a credential JWT.
type vcDataModel struct {
	Context           []string       `json:"@context"`
	ID                string         `json:"id"`
	Type              []string       `json:"type"`
	Issuer            string         `json:"issuer"`
	IssuanceDate      string         `json:"issuanceDate"`
	CredentialSubject map[string]any `json:"credentialSubject"`
}

type vcClaims struct {
	VC vcDataModel `json:"vc"`
	jwt.RegisteredClaims
}

type service struct {
	random io.Reader
	now    func() time.Time
}

// NewService returns the did:key / EdDSA-JWT implementation of [Service].
func NewService() Service {
	return &service{random: rand.Reader, now: time.Now}
}

// MintDID implements [Service].
func (s *service) MintDID() (PortableDID, error) {
	return mintDID(s.random)
}

// BuildCredential implements [Service]. The credential gets a fresh
// urn:uuid id and the current time as issuance date.
func (s *service) BuildCredential(req CredentialSpec) (Credential, error) {
	if req.Issuer == "" || req.Subject == "" {
		return Credential{}, fmt.Errorf("%w: issuer and subject are required", ErrInvalidCredential)
	}

	types := []string{baseType}
	if req.Type != "" && req.Type != baseType {
		types = append(types, req.Type)
	}

	data := make(map[string]any, len(req.Data))
	for k, v := range req.Data {
		data[k] = v
	}

	return Credential{
		ID:           "urn:uuid:" + uuid.NewString(),
		Types:        types,
		Issuer:       req.Issuer,
		Subject:      req.Subject,
		IssuanceDate: s.now().UTC().Truncate(time.Second),
		Data:         data,
	}, nil
}

// SignCredential implements [Service].
func (s *service) SignCredential(cred Credential, did PortableDID) (string, error) {
	if did.DID != cred.Issuer {
		return "", ErrIssuerMismatch
	}
	if len(did.PrivateKey) == 0 {
		return "", errors.New("identifier carries no private key")
	}

	subject := make(map[string]any, len(cred.Data)+1)
	for k, v := range cred.Data {
		subject[k] = v
	}
	subject["id"] = cred.Subject

	issued := jwt.NewNumericDate(cred.IssuanceDate)
	claims := vcClaims{
		VC: vcDataModel{
			Context:           []string{credentialContext},
			ID:                cred.ID,
			Type:              cred.Types,
			Issuer:            cred.Issuer,
			IssuanceDate:      cred.IssuanceDate.Format(time.RFC3339),
			CredentialSubject: subject,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cred.Issuer,
			Subject:   cred.Subject,
			ID:        cred.ID,
			IssuedAt:  issued,
			NotBefore: issued,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = did.KeyID()

	signed, err := token.SignedString(did.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("sign credential jwt: %w", err)
	}
	return signed, nil
}

// ParseCredential implements [Service]. The verification key is resolved
// from the token's iss claim, so a token is only accepted when it was
// signed by the identifier it names as issuer.
func (s *service) ParseCredential(token string) (ParsedCredential, error) {
	claims := &vcClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		c, ok := t.Claims.(*vcClaims)
		if !ok {
			return nil, ErrInvalidToken
		}
		return PublicKeyFromDID(c.Issuer)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ParsedCredential{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.VC.Issuer != claims.Issuer {
		return ParsedCredential{}, fmt.Errorf("%w: vc issuer differs from iss", ErrInvalidToken)
	}

	fields := make(map[string]any, len(claims.VC.CredentialSubject))
	for k, v := range claims.VC.CredentialSubject {
		if k == "id" {
			continue
		}
		fields[k] = v
	}

	subject, _ := claims.VC.CredentialSubject["id"].(string)
	if subject == "" {
		subject = claims.Subject
	}

	issuance, err := time.Parse(time.RFC3339, claims.VC.IssuanceDate)
	if err != nil && claims.IssuedAt != nil {
		issuance = claims.IssuedAt.Time
	}

	return ParsedCredential{
		ID:           claims.VC.ID,
		Type:         declaredType(claims.VC.Type),
		Issuer:       claims.VC.Issuer,
		Subject:      subject,
		IssuanceDate: issuance.UTC(),
		Fields:       fields,
	}, nil
}

// declaredType returns the most specific credential type: the last entry
// that is not the base "VerifiableCredential".
func declaredType(types []string) string {
	for i := len(types) - 1; i >= 0; i-- {
		if types[i] != baseType {
			return types[i]
		}
	}
	return baseType
}
