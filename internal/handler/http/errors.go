// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request integrity check. Callers can match against
// them with [errors.Is].
var (
	// ErrMissingHash is returned when a hash key is configured and a request
	// with a body arrives without the HashSHA256 header.
	ErrMissingHash = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the HMAC of the request body.
	ErrHashMismatch = errors.New("request body hash mismatch")
)

// errInvalidJSON marks a request body that could not be decoded.
var errInvalidJSON = errors.New("invalid JSON was passed")
