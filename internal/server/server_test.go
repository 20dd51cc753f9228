package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/handler"
	vaulthttp "github.com/MKhiriev/go-legacy-vault/internal/handler/http"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/metrics"
	"github.com/MKhiriev/go-legacy-vault/internal/service"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: vaulthttp.NewHandler(&service.Services{}, metrics.New(), vaulthttp.Options{}, logger.Nop()),
	}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: vaulthttp.NewHandler(&service.Services{}, metrics.New(), vaulthttp.Options{}, logger.Nop()),
	}
	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		assert.NoError(t, s.(*server).run(ctx))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	handlers := &handler.Handlers{
		HTTP: vaulthttp.NewHandler(&service.Services{}, metrics.New(), vaulthttp.Options{}, logger.Nop()),
	}
	s, err := NewServer(handlers, config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(context.Background())
	}()

	select {
	case err = <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server kept waiting after the listener failed")
	}
}

func TestNewHTTPServer_Settings(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":9999", RequestTimeout: 3 * time.Second}, logger.Nop())

	assert.Equal(t, ":9999", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadHeaderTimeout)
}
