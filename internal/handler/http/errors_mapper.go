package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-legacy-vault/internal/codec"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// errorStatuses is checked in order: a store reply of 404 also matches
// models.ErrAdapter, so ErrNotFound has to come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{errInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidPayload, http.StatusBadRequest},
	{service.ErrUnsupportedKind, http.StatusBadRequest},
	{models.ErrUnknownKind, http.StatusBadRequest},
	{codec.ErrAttachmentTooLarge, http.StatusRequestEntityTooLarge},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrSigning, http.StatusInternalServerError},
	{models.ErrDecode, http.StatusInternalServerError},
	{models.ErrAdapter, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
