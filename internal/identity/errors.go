package identity

import "errors"

var (
	ErrInvalidDID        = errors.New("invalid did:key identifier")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidToken      = errors.New("invalid credential token")
	ErrIssuerMismatch    = errors.New("signing identifier does not match credential issuer")
)
