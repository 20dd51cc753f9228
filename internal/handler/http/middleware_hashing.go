package http

import (
	"bytes"
	"crypto/hmac"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/utils"
)

// withBodyHash checks the HMAC-SHA256 of the request body against the
// HashSHA256 header. It is a no-op when no hash key is configured and for
// requests without a body.
func (h *Handler) withBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.HashKey == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to read request body")
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		received := r.Header.Get(utils.HashHeader)
		if received == "" {
			log.Error().Str("func", "*Handler.withBodyHash").Msg(ErrMissingHash.Error())
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		expected := utils.HashString(string(body), h.opts.HashKey)
		if !hmac.Equal([]byte(received), []byte(expected)) {
			log.Error().Str("func", "*Handler.withBodyHash").
				Str("hash from request", received).
				Msg(ErrHashMismatch.Error())
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
