package models

import "errors"

// Error taxonomy shared by every layer. Concrete errors wrap one of these so
// callers can classify failures with [errors.Is].
var (
	// ErrAdapter marks a non-success status or a fault returned by the record store.
	ErrAdapter = errors.New("record store error")

	// ErrSigning marks a failure to mint an identifier or sign a credential.
	ErrSigning = errors.New("signing error")

	// ErrNotFound marks a lookup that matched nothing where a match was expected.
	ErrNotFound = errors.New("not found")

	// ErrDecode marks attachment or credential-token content that does not
	// match format expectations.
	ErrDecode = errors.New("decode error")

	ErrUnknownKind = errors.New("unknown record kind")
)
