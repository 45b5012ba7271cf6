package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homenest-backend/internal/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per collector so every family is exported
	observability.ObserveHTTP("/ratings", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("ratings", "find", nil)
	observability.ObserveStore("ratings", "insert", errors.New("boom"))
	observability.ObserveVerification("rejected")

	rr := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	assert.Contains(t, out, "homenest_http_requests_total")
	assert.Contains(t, out, `homenest_store_operations_total{collection="ratings",op="insert",status="error"}`)
	assert.Contains(t, out, `homenest_token_verifications_total{outcome="rejected"}`)
}
