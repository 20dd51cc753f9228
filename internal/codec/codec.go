// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts attachments between binary content and the base64
// text carried inside credential claims, and guesses an attachment's format
// from its leading bytes.
//
// Format sniffing is best-effort: only PNG, JPEG and PDF signatures are
// recognised and everything else is reported as plain text, so a genuine
// binary of another type is tagged "text/plain".
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-legacy-vault/models"
)

// AttachmentLimit is the advisory maximum size of a source attachment.
// The codec never enforces it; see [CheckSize].
const AttachmentLimit = 1 << 20

// ErrAttachmentTooLarge is returned by [CheckSize].
var ErrAttachmentTooLarge = errors.New("attachment exceeds the 1MiB limit")

const (
	mimePlainText = "text/plain"
	extPlainText  = "text"

	// enough base64 characters to decode the longest signature below
	sniffChars = 12
)

var signatures = []struct {
	prefix []byte
	mime   string
}{
	{prefix: []byte{0x89, 'P', 'N', 'G'}, mime: "image/png"},
	{prefix: []byte{0xFF, 0xD8, 0xFF}, mime: "image/jpeg"},
	{prefix: []byte("%PDF-"), mime: "application/pdf"},
}

// EncodeToText returns the standard base64 encoding of blob.
func EncodeToText(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

// DecodeToBinary reverses [EncodeToText]. The file name is logicalName plus
// the extension sniffed from text. Malformed text yields an error wrapping
// [models.ErrDecode].
func DecodeToBinary(text, logicalName string) (models.Attachment, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: attachment is not base64: %w", models.ErrDecode, err)
	}

	info := SniffFormat(text)
	return models.Attachment{
		Data:     data,
		FileName: logicalName + "." + info.Extension,
		Info:     info,
	}, nil
}

// SniffFormat inspects the first decoded bytes of text. It never fails:
// undecodable or unrecognised input is reported as plain text.
func SniffFormat(text string) models.FileInfo {
	head := strings.TrimSpace(text)
	if len(head) > sniffChars {
		head = head[:sniffChars]
	}
	head = head[:len(head)&^3]

	prefix, err := base64.StdEncoding.DecodeString(head)
	if err != nil {
		return models.FileInfo{MimeType: mimePlainText, Extension: extPlainText}
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(prefix, sig.prefix) {
			return fileInfo(sig.mime)
		}
	}
	return fileInfo(mimePlainText)
}

// CheckSize reports whether blob is within [AttachmentLimit]. Callers decide
// whether to reject or skip an oversized attachment and must tell the user
// when they skip one.
func CheckSize(blob []byte) error {
	return CheckSizeLimit(blob, AttachmentLimit)
}

// CheckSizeLimit is [CheckSize] with a caller-chosen limit. A limit of zero
// or less falls back to [AttachmentLimit].
func CheckSizeLimit(blob []byte, limit int) error {
	if limit <= 0 {
		limit = AttachmentLimit
	}
	if len(blob) > limit {
		return fmt.Errorf("%w: %d bytes", ErrAttachmentTooLarge, len(blob))
	}
	return nil
}

func fileInfo(mime string) models.FileInfo {
	if strings.HasPrefix(mime, "text") {
		return models.FileInfo{MimeType: mime, Extension: extPlainText}
	}
	_, ext, _ := strings.Cut(mime, "/")
	return models.FileInfo{MimeType: mime, Extension: ext}
}
