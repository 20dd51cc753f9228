package service

import "errors"

var (
	// ErrCredentialIssuance wraps every failure of issuing or re-issuing a
	// credential. The cause stays reachable with errors.Is.
	ErrCredentialIssuance = errors.New("credential issuance failed")

	// ErrUnsupportedKind is returned for a record kind an operation does not
	// handle.
	ErrUnsupportedKind = errors.New("unsupported record kind")

	// ErrInvalidPayload is returned when a payload does not match its kind or
	// fails validation.
	ErrInvalidPayload = errors.New("invalid payload")
)
