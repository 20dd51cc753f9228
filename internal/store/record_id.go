package store

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// newRecordID derives a CIDv1 (raw codec, sha2-256) over nonce and data.
// The nonce keeps ids unique when the same content is written twice.
func newRecordID(nonce string, data []byte) (string, error) {
	buf := make([]byte, 0, len(nonce)+len(data))
	buf = append(buf, nonce...)
	buf = append(buf, data...)

	hash, err := multihash.Sum(buf, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash record content: %w", err)
	}

	return cid.NewCidV1(cid.Raw, hash).String(), nil
}
