package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.CredentialsIssued.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CredentialsIssued))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CredentialsIssued))
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.Transfers.WithLabelValues(OutcomeFailed).Add(2)
	m.StoreFailures.WithLabelValues("query").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `legacy_vault_transfers_total{outcome="failed"} 2`)
	assert.Contains(t, body, `legacy_vault_store_failures_total{op="query"} 1`)
}
