package utils

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HashHeader carries the HMAC-SHA256 of the request body when the client is
// configured with a hash key.
const HashHeader = "HashSHA256"

// HTTPClient is a wrapper around resty.Client. Embedding exposes the whole
// resty API while leaving room for vault-specific behaviour.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithBodyHash makes the client attach [HashHeader] to every request that
// has a body. An empty key disables hashing.
func (c *HTTPClient) WithBodyHash(hashKey string) *HTTPClient {
	if hashKey == "" {
		return c
	}

	c.SetPreRequestHook(func(_ *resty.Client, r *http.Request) error {
		if r.GetBody == nil || r.ContentLength == 0 {
			return nil
		}

		body, err := r.GetBody()
		if err != nil {
			return fmt.Errorf("read request body for hashing: %w", err)
		}
		defer body.Close()

		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("read request body for hashing: %w", err)
		}

		r.Header.Set(HashHeader, HashString(string(data), hashKey))
		return nil
	})

	return c
}
