package utils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDContext(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithTraceID(context.Background(), "trace-1")
	got, ok := GetTraceIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "trace-1", got)

	_, ok = GetTraceIDFromContext(WithTraceID(context.Background(), ""))
	assert.False(t, ok)
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]int{"status": 202}

	n, err := WriteJSON(w, data, http.StatusAccepted)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":202}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_WithBodyHash(t *testing.T) {
	const key = "relay-key"

	var gotHash, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHash = r.Header.Get(HashHeader)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithBodyHash(key)
	_, err := client.R().SetBody(map[string]string{"target": "did:key:z"}).Post(srv.URL)
	require.NoError(t, err)

	require.NotEmpty(t, gotBody)
	assert.Equal(t, HashString(gotBody, key), gotHash)

	_, err = client.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, gotHash)
}

func TestHTTPClient_WithBodyHash_EmptyKey(t *testing.T) {
	var gotHash string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHash = r.Header.Get(HashHeader)
	}))
	defer srv.Close()

	_, err := NewHTTPClient().WithBodyHash("").R().SetBody(`{}`).Post(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, gotHash)
}

func TestHashString(t *testing.T) {
	h := hmac.New(sha256.New, []byte("k"))
	h.Write([]byte("payload"))

	assert.Equal(t, hex.EncodeToString(h.Sum(nil)), HashString("payload", "k"))
	assert.NotEqual(t, HashString("payload", "k"), HashString("payload", "other"))
}

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, gen.Generate())

	_, err = json.Marshal(id)
	require.NoError(t, err)
}
