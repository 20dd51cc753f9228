package http

import (
	"net/http"

	"github.com/MKhiriev/go-legacy-vault/internal/codec"
)

// bodyHeadroom covers the JSON fields around a base64 attachment.
const bodyHeadroom = 64 << 10

// withBodyLimit caps the request body at the base64 size of the largest
// accepted attachment plus headroom. Reads past the cap fail with
// *http.MaxBytesError.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.opts.AttachmentLimit
	if limit <= 0 {
		limit = codec.AttachmentLimit
	}
	maxBody := int64(limit)*4/3 + bodyHeadroom

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		}
		next.ServeHTTP(w, r)
	})
}
