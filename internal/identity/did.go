// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"io"
	"strings"

	"github.com/multiformats/go-multibase"
)

const didKeyPrefix = "did:key:"

// multicodec prefix of an ed25519 public key (varint 0xed)
var ed25519Codec = []byte{0xed, 0x01}

// mintDID derives a did:key identifier from a new ed25519 key pair read
// from random.
func mintDID(random io.Reader) (PortableDID, error) {
	pub, priv, err := ed25519.GenerateKey(random)
	if err != nil {
		return PortableDID{}, fmt.Errorf("generate ed25519 key: %w", err)
	}

	encoded, err := multibase.Encode(multibase.Base58BTC, append(append([]byte{}, ed25519Codec...), pub...))
	if err != nil {
		return PortableDID{}, fmt.Errorf("encode public key: %w", err)
	}

	return PortableDID{
		DID:        didKeyPrefix + encoded,
		PublicKey:  pub,
		PrivateKey: priv,
	}, nil
}

// PublicKeyFromDID extracts the ed25519 public key embedded in a did:key
// identifier. A fragment (…#key-id) is ignored.
func PublicKeyFromDID(did string) (ed25519.PublicKey, error) {
	did, _, _ = strings.Cut(did, "#")
	if !strings.HasPrefix(did, didKeyPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDID, did)
	}

	encoding, raw, err := multibase.Decode(did[len(didKeyPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDID, err)
	}
	if encoding != multibase.Base58BTC {
		return nil, fmt.Errorf("%w: unexpected multibase encoding", ErrInvalidDID)
	}
	if !bytes.HasPrefix(raw, ed25519Codec) || len(raw) != len(ed25519Codec)+ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: not an ed25519 key", ErrInvalidDID)
	}

	return ed25519.PublicKey(raw[len(ed25519Codec):]), nil
}
